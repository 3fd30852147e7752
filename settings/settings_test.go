package settings

import (
	"bytes"
	"errors"
	"go-ml.dev/pkg/disrnn/model"
	"gotest.tools/assert"
	"math"
	"os"
	"strings"
	"testing"
)

func Test_Defaults(t *testing.T) {
	s, err := ParseInput(nil)
	assert.NilError(t, err)
	assert.DeepEqual(t, s, DefaultInputSettings())
	assert.Equal(t, s.NSteps, 3000)
	assert.Equal(t, s.NWarmupSteps, 1000)
	assert.Equal(t, s.Beta, 1e-2)
	assert.Equal(t, s.LearningRate, 1e-3)
	assert.Equal(t, s.IgnorePolicy, model.Exclude)
	assert.Equal(t, s.Activation, "leaky_relu")
	assert.Equal(t, s.Features["rewarded"], "prev reward")
	assert.Equal(t, len(s.SubjectIDs), 0)
}

func Test_ParseInput(t *testing.T) {
	os.Setenv("DISRNN_BETA", "0.05")
	defer os.Unsetenv("DISRNN_BETA")
	s, err := ParseInput([]string{"--n-steps", "500", "--ignore-policy", "include", "--subject-ids", "3", "4", "--multisubject"})
	assert.NilError(t, err)
	assert.Equal(t, s.NSteps, 500)
	assert.Equal(t, s.IgnorePolicy, model.Include)
	assert.DeepEqual(t, s.SubjectIDs, []int{3, 4})
	assert.Equal(t, s.Multisubject, true)
	assert.Equal(t, s.Beta, 0.05)
	assert.Equal(t, s.NumLatents, 5)
}

func Test_ParseInputInvalid(t *testing.T) {
	_, err := ParseInput([]string{"--ignore-policy", "bogus"})
	assert.ErrorContains(t, err, "ignore policy must be")
	_, err = ParseInput([]string{"--activation", "softsign"})
	assert.ErrorContains(t, err, "unknown activation")
	_, err = ParseInput([]string{"--n-steps", "many"})
	assert.Assert(t, err != nil)
}

func Test_Validate(t *testing.T) {
	s := DefaultInputSettings()
	s.IgnorePolicy = "bogus"
	var ip *model.InvalidPolicyError
	assert.Assert(t, errors.As(s.Validate(), &ip))

	s = DefaultInputSettings()
	s.UpdateNetNLayers = 0
	assert.ErrorContains(t, s.Validate(), "update_net_n_layers must be positive")

	s = DefaultInputSettings()
	s.LearningRate = 0
	assert.ErrorContains(t, s.Validate(), "learning_rate")

	s = DefaultInputSettings()
	s.Features = nil
	assert.ErrorContains(t, s.Validate(), "features")
}

func Test_Params(t *testing.T) {
	s := DefaultInputSettings()
	p := Params{"beta": 0.1, "num_latents": 7, "multisubject": 1}
	p.LuckyApply(&s)
	assert.Equal(t, s.Beta, 0.1)
	assert.Equal(t, s.NumLatents, 7)
	assert.Equal(t, s.Multisubject, true)

	assert.ErrorContains(t, Params{"gamma": 1}.Apply(&s), "do not have field `gamma`")
	assert.ErrorContains(t, Params{"n_steps": 1.5}.Apply(&s), "requires integer")
	assert.ErrorContains(t, Params{"activation": 1}.Apply(&s), "not numeric")
}

func Test_Output(t *testing.T) {
	o := OutputSettings{TrainingTime: 12.5, Likelihood: 0.71, NumSessions: 2, NumTrials: 5}
	bf := bytes.Buffer{}
	assert.NilError(t, o.Write(&bf))
	assert.Assert(t, strings.Contains(bf.String(), `"num_trials": 5`))
	q, err := ReadOutput(&bf)
	assert.NilError(t, err)
	assert.Equal(t, *q, o)

	_, err = ReadOutput(strings.NewReader(`{"training_time": 1, "likelihood": 0.5, "num_sessions": 1}`))
	assert.ErrorContains(t, err, "`num_trials` is required")

	o.Likelihood = math.NaN()
	assert.ErrorContains(t, o.Write(&bf), "likelihood must be finite")
	o.Likelihood, o.NumTrials = 0.5, 1
	assert.ErrorContains(t, o.Validate(), "can't fill")
}
