package settings

import (
	"encoding/json"
	"go-ml.dev/pkg/zorros/zorros"
	"io"
	"io/ioutil"
	"math"
)

/*
OutputSettings are the metrics reported by a finished training run
*/
type OutputSettings struct {
	TrainingTime float64 `json:"training_time"` // training time, seconds
	Likelihood   float64 `json:"likelihood"`    // evaluation set likelihood
	NumSessions  int     `json:"num_sessions"`  // number of sessions in full dataset
	NumTrials    int     `json:"num_trials"`    // number of trials
}

func (s *OutputSettings) Validate() error {
	if math.IsNaN(s.TrainingTime) || math.IsInf(s.TrainingTime, 0) || s.TrainingTime < 0 {
		return zorros.Errorf("training_time must be a non-negative number, got %v", s.TrainingTime)
	}
	if math.IsNaN(s.Likelihood) || math.IsInf(s.Likelihood, 0) {
		return zorros.Errorf("likelihood must be finite, got %v", s.Likelihood)
	}
	if s.NumSessions < 0 || s.NumTrials < 0 {
		return zorros.Errorf("num_sessions and num_trials must not be negative")
	}
	if s.NumTrials < s.NumSessions {
		return zorros.Errorf("%d trials can't fill %d sessions", s.NumTrials, s.NumSessions)
	}
	return nil
}

/*
Write validates and writes settings as JSON
*/
func (s *OutputSettings) Write(w io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(s); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

/*
ReadOutput reads settings written by Write, every field is required
*/
func ReadOutput(r io.Reader) (*OutputSettings, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	m := map[string]json.RawMessage{}
	if err = json.Unmarshal(b, &m); err != nil {
		return nil, zorros.Trace(err)
	}
	for _, k := range []string{"training_time", "likelihood", "num_sessions", "num_trials"} {
		if _, ok := m[k]; !ok {
			return nil, zorros.Errorf("field `%v` is required", k)
		}
	}
	s := &OutputSettings{}
	if err = json.Unmarshal(b, s); err != nil {
		return nil, zorros.Trace(err)
	}
	return s, s.Validate()
}
