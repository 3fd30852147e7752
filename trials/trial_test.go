package trials

import (
	"gotest.tools/assert"
	"testing"
)

func Test_CodeFlag(t *testing.T) {
	var c Code
	assert.NilError(t, c.UnmarshalCSV("2"))
	assert.Equal(t, c, Code(2))
	assert.NilError(t, c.UnmarshalCSV(" 1.0"))
	assert.Equal(t, c, Code(1))
	assert.ErrorContains(t, c.UnmarshalCSV("1.5"), "not integral")
	assert.ErrorContains(t, c.UnmarshalCSV("left"), "bad categorical code")
	assert.NilError(t, c.Scan(float64(0)))
	assert.Equal(t, c, Code(0))

	var f Flag
	for _, s := range []string{"True", "true", "1", "1.0"} {
		f = false
		assert.NilError(t, f.UnmarshalCSV(s))
		assert.Equal(t, f.Int(), 1, s)
	}
	for _, s := range []string{"False", "0", "0.0"} {
		f = true
		assert.NilError(t, f.UnmarshalCSV(s))
		assert.Equal(t, f.Int(), 0, s)
	}
	assert.ErrorContains(t, f.UnmarshalCSV("2"), "bad boolean flag")
	assert.NilError(t, f.Scan(int64(1)))
	assert.Equal(t, bool(f), true)
}

func Test_Sessions(t *testing.T) {
	tb := NewTable([]Trial{
		{Session: "7", Number: 1, Response: 1},
		{Session: "3", Number: 0, Response: 2},
		{Session: "7", Number: 0, Response: 0},
		{Session: "3", Number: 1, Response: 1, Reward: true},
	})
	ss := tb.Sessions()
	assert.Equal(t, len(ss), 2)
	assert.Equal(t, ss[0].ID, "7")
	assert.Equal(t, ss[1].ID, "3")
	assert.Equal(t, ss[0].Trials[0].Number, 0)
	assert.Equal(t, ss[0].Trials[0].Response, Code(0))
	assert.Equal(t, ss[0].Trials[1].Response, Code(1))
	// source order is kept
	assert.Equal(t, tb.Trials[0].Number, 1)
	assert.DeepEqual(t, tb.Rewarded(), []int{0, 0, 0, 1})
	assert.Assert(t, tb.Has(SessionColumn))
	assert.Assert(t, !tb.Has("rewarded"))
}

func Test_NoResponse(t *testing.T) {
	var c Code
	assert.NilError(t, c.UnmarshalCSV(""))
	assert.Equal(t, c, NoResponse)
	c = 0
	assert.NilError(t, c.UnmarshalCSV("NaN"))
	assert.Equal(t, c, NoResponse)
	c = 0
	assert.NilError(t, c.Scan(nil))
	assert.Equal(t, c, NoResponse)
}

func Test_SessionKey(t *testing.T) {
	assert.Equal(t, SessionKey("0"), "0")
	assert.Equal(t, SessionKey("0.0"), "0")
	assert.Equal(t, SessionKey(" 12.0 "), "12")
	assert.Equal(t, SessionKey("007"), "7")
	assert.Equal(t, SessionKey("1.5"), "1.5")
	assert.Equal(t, SessionKey("mouse-7"), "mouse-7")

	tb := NewTable([]Trial{
		{Session: "0", Number: 0},
		{Session: "0.0", Number: 1, Response: 1},
		{Session: "1", Number: 0},
	})
	ss := tb.Sessions()
	assert.Equal(t, len(ss), 2)
	assert.Equal(t, ss[0].ID, "0")
	assert.Equal(t, len(ss[0].Trials), 2)
}
