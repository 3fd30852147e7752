package trials

import (
	"github.com/ulikunitz/xz"
	"gotest.tools/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const trialsCSV = `ses_idx,trial,animal_response,earned_reward,bait_left
0,0,0,True,1
0,1,1,False,0
0,2,0,True,1
1,0,1,False,0
1,1,1.0,True,1
`

func Test_ReadCSV(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader(trialsCSV))
	assert.NilError(t, err)
	assert.DeepEqual(t, tb.Columns, []string{"ses_idx", "trial", "animal_response", "earned_reward", "bait_left"})
	assert.Equal(t, tb.Len(), 5)
	assert.Equal(t, tb.Trials[4], Trial{Session: "1", Number: 1, Response: 1, Reward: true})
	assert.DeepEqual(t, tb.Rewarded(), []int{1, 0, 1, 0, 1})
}

func Test_ReadCSVNoSession(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader("trial,animal_response,earned_reward\n0,1,1\n"))
	assert.NilError(t, err)
	assert.Assert(t, !tb.Has(SessionColumn))
	assert.Equal(t, tb.Len(), 1)
}

func Test_ReadCSVBadValue(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("ses_idx,trial,animal_response,earned_reward\n0,0,x,1\n"))
	assert.Assert(t, err != nil)
}

func Test_LoadCSVxz(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trials.csv.xz")
	f, err := os.Create(path)
	assert.NilError(t, err)
	w, err := xz.NewWriter(f)
	assert.NilError(t, err)
	_, err = w.Write([]byte(trialsCSV))
	assert.NilError(t, err)
	assert.NilError(t, w.Close())
	assert.NilError(t, f.Close())

	tb := LuckyLoadCSV(path)
	assert.Equal(t, tb.Len(), 5)
	assert.Equal(t, len(tb.Sessions()), 2)
	tb, err = Load(path, "ignored")
	assert.NilError(t, err)
	assert.Equal(t, tb.Trials[2].Reward, Flag(true))

	_, err = LoadCSV(filepath.Join(dir, "nothing.csv"))
	assert.Assert(t, err != nil)
}

func Test_ReadCSVEmptyResponse(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader("ses_idx,trial,animal_response,earned_reward\n0,0,,True\n0.0,1,1,False\n"))
	assert.NilError(t, err)
	assert.Equal(t, tb.Trials[0].Response, NoResponse)
	assert.Equal(t, len(tb.Sessions()), 1)
}
