/*
Package training hands disRNN datasets to an external trainer and reports the run
*/
package training

import (
	"fmt"
	"go-ml.dev/pkg/disrnn/model"
	"go-ml.dev/pkg/disrnn/settings"
	"go-ml.dev/pkg/zorros/zorros"
	"reflect"
	"time"
)

/*
Trainer is a disRNN fitting backend, it returns the evaluation set likelihood
*/
type Trainer interface {
	Fit(ds *model.Dataset, s settings.InputSettings) (float64, error)
}

/*
TrainerFunc adapts function to the Trainer interface
*/
type TrainerFunc func(ds *model.Dataset, s settings.InputSettings) (float64, error)

func (f TrainerFunc) Fit(ds *model.Dataset, s settings.InputSettings) (float64, error) {
	return f(ds, s)
}

/*
Training is a single training run of the dataset
*/
type Training struct {
	Trainer  Trainer
	Settings settings.InputSettings
	Verbose  interface{} // print function func(string)
}

/*
Fit trains the dataset and reports the metrics of the run
*/
func (t Training) Fit(ds *model.Dataset) (*settings.OutputSettings, error) {
	if err := t.Settings.Validate(); err != nil {
		return nil, err
	}
	if ds.NClasses != t.Settings.IgnorePolicy.Classes() {
		return nil, zorros.Errorf("dataset has %d classes but ignore policy `%v` requires %d",
			ds.NClasses, t.Settings.IgnorePolicy, t.Settings.IgnorePolicy.Classes())
	}
	sum := ds.Summarize()
	t.verbose("dataset: " + sum.String())
	start := time.Now()
	likelihood, err := t.Trainer.Fit(ds, t.Settings)
	if err != nil {
		return nil, zorros.Wrapf(err, "training failed: %v", err.Error())
	}
	report := &settings.OutputSettings{
		TrainingTime: time.Since(start).Seconds(),
		Likelihood:   likelihood,
		NumSessions:  sum.Sessions,
		NumTrials:    sum.Trials,
	}
	if err = report.Validate(); err != nil {
		return nil, err
	}
	t.verbose(fmt.Sprintf("trained in %.1fs, likelihood: %.5f", report.TrainingTime, report.Likelihood))
	return report, nil
}

/*
LuckyFit trains the dataset and trows any occurred errors as a panic
*/
func (t Training) LuckyFit(ds *model.Dataset) *settings.OutputSettings {
	r, err := t.Fit(ds)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

func (t Training) verbose(s string) {
	if t.Verbose != nil {
		vf := reflect.ValueOf(t.Verbose)
		vf.Call([]reflect.Value{reflect.ValueOf(s)})
	}
}
