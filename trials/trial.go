/*
Package trials implements the typed trial table consumed by the disRNN dataset builder
*/
package trials

import (
	"go-ml.dev/pkg/zorros/zorros"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Column names of the trial table schema
const (
	SessionColumn  = "ses_idx"
	TrialColumn    = "trial"
	ResponseColumn = "animal_response"
	RewardColumn   = "earned_reward"
)

/*
Schema lists the columns every trial table must carry
*/
var Schema = []string{SessionColumn, TrialColumn, ResponseColumn, RewardColumn}

/*
Trial is one row of the trial table
*/
type Trial struct {
	Session  string `csv:"ses_idx"`         // opaque session index
	Number   int    `csv:"trial"`           // position within the session
	Response Code   `csv:"animal_response"` // categorical response code
	Reward   Flag   `csv:"earned_reward"`   // earned reward outcome
}

/*
Code is a non-negative categorical code, it accepts integral floats like "1.0"
*/
type Code int

// NoResponse is the response code of a trial where the subject did not respond.
// Empty and NaN response cells are read as NoResponse.
const NoResponse Code = 2

func (c *Code) UnmarshalCSV(s string) error {
	return c.set(strings.TrimSpace(s))
}

func (c *Code) set(s string) error {
	if s == "" {
		*c = NoResponse
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		*c = Code(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return zorros.Errorf("bad categorical code `%v`", s)
	}
	return c.setFloat(f)
}

func (c *Code) setFloat(f float64) error {
	if math.IsNaN(f) {
		*c = NoResponse
		return nil
	}
	if math.IsInf(f, 0) || math.Trunc(f) != f {
		return zorros.Errorf("categorical code %v is not integral", f)
	}
	*c = Code(f)
	return nil
}

// Scan implements sql.Scanner
func (c *Code) Scan(v interface{}) error {
	switch q := v.(type) {
	case nil:
		*c = NoResponse
	case int64:
		*c = Code(q)
	case float64:
		return c.setFloat(q)
	case bool:
		*c = Code(boolToInt(q))
	case []byte:
		return c.set(strings.TrimSpace(string(q)))
	case string:
		return c.set(strings.TrimSpace(q))
	default:
		return zorros.Errorf("can't convert %T to categorical code", v)
	}
	return nil
}

/*
Flag is a boolean outcome written as true/false or 0/1
*/
type Flag bool

func (f *Flag) UnmarshalCSV(s string) error {
	return f.set(strings.TrimSpace(s))
}

func (f *Flag) set(s string) error {
	if b, err := strconv.ParseBool(s); err == nil {
		*f = Flag(b)
		return nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || (x != 0 && x != 1) {
		return zorros.Errorf("bad boolean flag `%v`", s)
	}
	*f = x != 0
	return nil
}

// Scan implements sql.Scanner
func (f *Flag) Scan(v interface{}) error {
	switch q := v.(type) {
	case bool:
		*f = Flag(q)
	case int64:
		*f = q != 0
	case float64:
		*f = q != 0
	case []byte:
		return f.set(strings.TrimSpace(string(q)))
	case string:
		return f.set(strings.TrimSpace(q))
	default:
		return zorros.Errorf("can't convert %T to boolean flag", v)
	}
	return nil
}

// Int returns the flag coded as 0/1
func (f Flag) Int() int {
	return boolToInt(bool(f))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

/*
Table is a flat trial table with the columns it was read with
*/
type Table struct {
	Columns []string
	Trials  []Trial
}

/*
NewTable creates in-memory table having all the schema columns
*/
func NewTable(trials []Trial) *Table {
	return &Table{Columns: append([]string(nil), Schema...), Trials: trials}
}

func (t *Table) Len() int {
	return len(t.Trials)
}

// Has checks the table was declared with the column
func (t *Table) Has(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

/*
Rewarded returns the 0/1 coded reward column, the table stays untouched
*/
func (t *Table) Rewarded() []int {
	r := make([]int, len(t.Trials))
	for i, x := range t.Trials {
		r[i] = x.Reward.Int()
	}
	return r
}

/*
Session is a run of trials sharing one session index
*/
type Session struct {
	ID     string
	Trials []Trial
}

/*
SessionKey normalizes session index, integral numbers like "3.0" become "3".
Any other index is kept as an opaque string.
*/
func SessionKey(s string) string {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && math.Trunc(f) == f && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

/*
Sessions groups trials by session index in the first-seen order of indices.
Trials of each session are stably ordered by trial number.
*/
func (t *Table) Sessions() []Session {
	index := map[string]int{}
	var ss []Session
	for _, x := range t.Trials {
		key := SessionKey(x.Session)
		j, ok := index[key]
		if !ok {
			j = len(ss)
			index[key] = j
			ss = append(ss, Session{ID: key})
		}
		ss[j].Trials = append(ss[j].Trials, x)
	}
	for _, s := range ss {
		q := s.Trials
		sort.SliceStable(q, func(i, j int) bool { return q[i].Number < q[j].Number })
	}
	return ss
}
