package main

import (
	"github.com/alexflint/go-arg"
	"go-ml.dev/pkg/disrnn/model"
	"go-ml.dev/pkg/disrnn/settings"
	"go-ml.dev/pkg/disrnn/training"
	"go-ml.dev/pkg/disrnn/trials"
	"go-ml.dev/pkg/zorros/zlog"
	"os"
)

type args struct {
	settings.InputSettings
	Trials    string          `arg:"--trials,required" help:"trial table: .csv, .csv.xz or SQLite database"`
	Table     string          `arg:"--table" help:"SQLite table name"`
	BatchSize int             `arg:"--batch-size" help:"sessions per batch, 0 for the full batch"`
	Params    settings.Params `arg:"--set" help:"numeric settings overrides, name=value"`
	Trainer   string          `arg:"--trainer,required,env:DISRNN_TRAINER" help:"external training program"`
	Workdir   string          `arg:"--workdir" help:"directory to keep trainer inputs"`
	Out       string          `arg:"-o,--out" help:"output settings JSON, stdout if empty"`
}

func (args) Description() string {
	return "fits disRNN on a trial table with an external trainer and reports the run"
}

func fail(err error) {
	if err != nil {
		zlog.Fatal(err)
	}
}

func main() {
	a := args{InputSettings: settings.DefaultInputSettings()}
	p := arg.MustParse(&a)
	defer zlog.Config{Name: "disrnn-fit", LogWriter: os.Stderr}.Init().Close()
	if err := a.Params.Apply(&a.InputSettings); err != nil {
		p.Fail(err.Error())
	}
	if err := a.InputSettings.Validate(); err != nil {
		p.Fail(err.Error())
	}

	tb, err := trials.Load(a.Trials, a.Table)
	fail(err)
	ds, err := model.Build(tb, a.IgnorePolicy, a.BatchSize)
	fail(err)

	t := training.Training{
		Trainer:  training.CommandTrainer{Path: a.Trainer, Dir: a.Workdir},
		Settings: a.InputSettings,
		Verbose:  func(s string) { zlog.Info(s) },
	}
	report, err := t.Fit(ds)
	fail(err)

	out := os.Stdout
	if a.Out != "" {
		out, err = os.Create(a.Out)
		fail(err)
		defer out.Close()
	}
	fail(report.Write(out))
}
