/*
Package settings defines the disRNN training hyper-parameters and the reported metrics
*/
package settings

import (
	"github.com/alexflint/go-arg"
	"go-ml.dev/pkg/disrnn/model"
	"go-ml.dev/pkg/zorros/zorros"
)

/*
InputSettings are the hyper-parameters of a disRNN training run
*/
type InputSettings struct {
	SubjectIDs              []int              `json:"subject_ids" arg:"--subject-ids,env:DISRNN_SUBJECT_IDS" help:"subject ids"`
	NSteps                  int                `json:"n_steps" arg:"--n-steps,env:DISRNN_N_STEPS" help:"Number of training steps"`
	NWarmupSteps            int                `json:"n_warmup_steps" arg:"--n-warmup-steps,env:DISRNN_N_WARMUP_STEPS" help:"Number of noiseless training steps"`
	Beta                    float64            `json:"beta" arg:"--beta,env:DISRNN_BETA" help:"Information bottleneck weight"`
	LearningRate            float64            `json:"learning_rate" arg:"--learning-rate,env:DISRNN_LEARNING_RATE" help:"Learning rate for optimization"`
	IgnorePolicy            model.IgnorePolicy `json:"ignore_policy" arg:"--ignore-policy,env:DISRNN_IGNORE_POLICY" help:"Whether to include or exclude ignored trials"`
	NumLatents              int                `json:"num_latents" arg:"--num-latents,env:DISRNN_NUM_LATENTS" help:"Number of latents to use"`
	UpdateNetNUnitsPerLayer int                `json:"update_net_n_units_per_layer" arg:"--update-net-n-units-per-layer,env:DISRNN_UPDATE_NET_N_UNITS_PER_LAYER" help:"Number of units in each layer of update network"`
	UpdateNetNLayers        int                `json:"update_net_n_layers" arg:"--update-net-n-layers,env:DISRNN_UPDATE_NET_N_LAYERS" help:"Number of layers in update network"`
	ChoiceNetNUnitsPerLayer int                `json:"choice_net_n_units_per_layer" arg:"--choice-net-n-units-per-layer,env:DISRNN_CHOICE_NET_N_UNITS_PER_LAYER" help:"Number of units in each layer of choice network"`
	ChoiceNetNLayers        int                `json:"choice_net_n_layers" arg:"--choice-net-n-layers,env:DISRNN_CHOICE_NET_N_LAYERS" help:"Number of layers in choice network"`
	Activation              string             `json:"activation" arg:"--activation,env:DISRNN_ACTIVATION" help:"Activation function"`
	Multisubject            bool               `json:"multisubject" arg:"--multisubject,env:DISRNN_MULTISUBJECT" help:"Whether to fit a multisubject disRNN"`
	Features                map[string]string  `json:"features" arg:"--features" help:"input features, trial table column=label"`
}

// Activations known to the disRNN networks
var Activations = []string{"relu", "leaky_relu", "tanh", "sigmoid", "elu", "gelu", "silu"}

/*
DefaultInputSettings returns settings with every field set to its default
*/
func DefaultInputSettings() InputSettings {
	return InputSettings{
		SubjectIDs:              []int{},
		NSteps:                  3000,
		NWarmupSteps:            1000,
		Beta:                    1e-2,
		LearningRate:            1e-3,
		IgnorePolicy:            model.Exclude,
		NumLatents:              5,
		UpdateNetNUnitsPerLayer: 16,
		UpdateNetNLayers:        8,
		ChoiceNetNUnitsPerLayer: 4,
		ChoiceNetNLayers:        1,
		Activation:              "leaky_relu",
		Multisubject:            false,
		Features: map[string]string{
			"animal_response": "prev choice",
			"rewarded":        "prev reward",
		},
	}
}

/*
Validate checks settings values
*/
func (s *InputSettings) Validate() error {
	if err := s.IgnorePolicy.Validate(); err != nil {
		return err
	}
	for _, q := range []struct {
		name string
		v    int
	}{
		{"n_steps", s.NSteps},
		{"num_latents", s.NumLatents},
		{"update_net_n_units_per_layer", s.UpdateNetNUnitsPerLayer},
		{"update_net_n_layers", s.UpdateNetNLayers},
		{"choice_net_n_units_per_layer", s.ChoiceNetNUnitsPerLayer},
		{"choice_net_n_layers", s.ChoiceNetNLayers},
	} {
		if q.v <= 0 {
			return zorros.Errorf("%v must be positive, got %d", q.name, q.v)
		}
	}
	if s.NWarmupSteps < 0 {
		return zorros.Errorf("n_warmup_steps must not be negative, got %d", s.NWarmupSteps)
	}
	if s.Beta < 0 {
		return zorros.Errorf("beta must not be negative, got %v", s.Beta)
	}
	if s.LearningRate <= 0 {
		return zorros.Errorf("learning_rate must be positive, got %v", s.LearningRate)
	}
	known := false
	for _, a := range Activations {
		known = known || a == s.Activation
	}
	if !known {
		return zorros.Errorf("unknown activation `%v`", s.Activation)
	}
	if len(s.Features) == 0 {
		return zorros.Errorf("features must not be empty")
	}
	return nil
}

/*
ParseInput fills default settings from command line arguments and DISRNN_* environment
*/
func ParseInput(args []string) (InputSettings, error) {
	s := DefaultInputSettings()
	p, err := arg.NewParser(arg.Config{}, &s)
	if err != nil {
		return s, zorros.Trace(err)
	}
	if err = p.Parse(args); err != nil {
		return s, err
	}
	return s, s.Validate()
}
