package settings

import (
	"go-ml.dev/pkg/zorros/zorros"
	"math"
	"reflect"
	"strings"
)

/*
Params is a set of numeric hyper-parameters overriding InputSettings fields by their json names
*/
type Params map[string]float64

/*
Apply sets settings fields to parameter values
*/
func (p Params) Apply(s *InputSettings) error {
	fields := map[string]reflect.Value{}
	v := reflect.ValueOf(s).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := strings.Split(v.Type().Field(i).Tag.Get("json"), ",")[0]
		fields[name] = v.Field(i)
	}
	for k, x := range p {
		ref, ok := fields[k]
		if !ok {
			return zorros.Errorf("settings do not have field `%v`", k)
		}
		switch ref.Kind() {
		case reflect.Float64:
			ref.SetFloat(x)
		case reflect.Int:
			if math.Trunc(x) != x {
				return zorros.Errorf("field `%v` requires integer value, got %v", k, x)
			}
			ref.SetInt(int64(x))
		case reflect.Bool:
			ref.SetBool(x != 0)
		default:
			return zorros.Errorf("field `%v` is not numeric", k)
		}
	}
	return nil
}

/*
LuckyApply applies params and trows any occurred errors as a panic
*/
func (p Params) LuckyApply(s *InputSettings) {
	if err := p.Apply(s); err != nil {
		panic(zorros.Panic(err))
	}
}
