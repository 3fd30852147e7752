package model

import (
	"fmt"
	"go-ml.dev/pkg/disrnn/fu"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

/*
Summary describes session lengths of the dataset
*/
type Summary struct {
	Sessions   int
	Trials     int
	MeanLength float64
	StdLength  float64
	MaxLength  float64
}

func (ds *Dataset) Summarize() Summary {
	s := Summary{Sessions: len(ds.Lengths), Trials: fu.Sumi(ds.Lengths)}
	if len(ds.Lengths) > 0 {
		l := fu.Floats64(ds.Lengths)
		if len(l) > 1 {
			s.MeanLength, s.StdLength = stat.MeanStdDev(l, nil)
		} else {
			s.MeanLength = stat.Mean(l, nil)
		}
		s.MaxLength = floats.Max(l)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d sessions, %d trials, session length %.1f±%.1f (max %.0f)",
		s.Sessions, s.Trials, s.MeanLength, s.StdLength, s.MaxLength)
}
