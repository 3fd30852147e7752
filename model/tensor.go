package model

import (
	"go-ml.dev/pkg/disrnn/fu"
	"go-ml.dev/pkg/zorros/zorros"
)

// Sentinel marks padded positions excluded from the loss
const Sentinel = -1

/*
Tensor is a dense 3D array indexed by [time-step, session, feature] in row-major order
*/
type Tensor struct {
	Shape [3]int    `json:"shape"`
	Data  []float32 `json:"data"`
}

/*
NewTensor allocates tensor of given shape filled by the value
*/
func NewTensor(steps, sessions, features int, fill float32) *Tensor {
	return &Tensor{
		Shape: [3]int{steps, sessions, features},
		Data:  fu.Fill(make([]float32, steps*sessions*features), fill),
	}
}

func (x *Tensor) offset(t, s, f int) int {
	return (t*x.Shape[1]+s)*x.Shape[2] + f
}

func (x *Tensor) At(t, s, f int) float32 {
	return x.Data[x.offset(t, s, f)]
}

func (x *Tensor) Set(t, s, f int, v float32) {
	x.Data[x.offset(t, s, f)] = v
}

/*
Columns returns new tensor holding selected session columns in the given order
*/
func (x *Tensor) Columns(index []int) *Tensor {
	r := NewTensor(x.Shape[0], len(index), x.Shape[2], 0)
	for t := 0; t < x.Shape[0]; t++ {
		for j, s := range index {
			copy(r.Data[r.offset(t, j, 0):r.offset(t, j+1, 0)], x.Data[x.offset(t, s, 0):x.offset(t, s+1, 0)])
		}
	}
	return r
}

func (x *Tensor) validate() error {
	if x.Shape[0] < 0 || x.Shape[1] < 0 || x.Shape[2] < 0 {
		return zorros.Errorf("bad tensor shape %v", x.Shape)
	}
	if n := x.Shape[0] * x.Shape[1] * x.Shape[2]; n != len(x.Data) {
		return zorros.Errorf("tensor shape %v requires %d values but has %d", x.Shape, n, len(x.Data))
	}
	return nil
}
