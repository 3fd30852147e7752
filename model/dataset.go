package model

import (
	"math/rand"
)

// Declared dataset metadata
const (
	Categorical = "categorical"
	RandomBatch = "random"
)

var (
	InputNames  = []string{"prev choice", "prev reward"}
	TargetNames = []string{"choice"}
)

/*
Dataset is a session batched source of a data to feed the disRNN trainer
*/
type Dataset struct {
	Xs        *Tensor  `json:"xs"`         // [steps, sessions, 2] previous trial features
	Ys        *Tensor  `json:"ys"`         // [steps, sessions, 1] current trial label
	YType     string   `json:"y_type"`     // always categorical
	NClasses  int      `json:"n_classes"`  // 3 including no-response class, 2 otherwise
	XNames    []string `json:"x_names"`    // input feature names
	YNames    []string `json:"y_names"`    // target names
	BatchSize int      `json:"batch_size"` // sessions per batch, 0 means full batch
	BatchMode string   `json:"batch_mode"` // always random
	Sessions  []string `json:"sessions"`   // session index per tensor column
	Lengths   []int    `json:"lengths"`    // trial count per tensor column
}

// Steps is the padded length of every session column
func (ds *Dataset) Steps() int {
	return ds.Xs.Shape[0]
}

func (ds *Dataset) Len() int {
	return ds.Xs.Shape[1]
}

/*
Batch returns one training batch. Without batch size it's the whole dataset,
otherwise BatchSize session columns drawn uniformly with replacement.
Nil rnd uses the math/rand global source.
*/
func (ds *Dataset) Batch(rnd *rand.Rand) (xs, ys *Tensor) {
	if ds.BatchSize <= 0 || ds.Len() == 0 {
		return ds.Xs, ds.Ys
	}
	intn := rand.Intn
	if rnd != nil {
		intn = rnd.Intn
	}
	index := make([]int, ds.BatchSize)
	for i := range index {
		index[i] = intn(ds.Len())
	}
	return ds.Xs.Columns(index), ds.Ys.Columns(index)
}
