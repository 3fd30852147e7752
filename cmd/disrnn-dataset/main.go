package main

import (
	"github.com/alexflint/go-arg"
	"go-ml.dev/pkg/disrnn/model"
	"go-ml.dev/pkg/disrnn/trials"
	"go-ml.dev/pkg/zorros/zlog"
	"os"
)

type args struct {
	Trials       string             `arg:"positional,required" help:"trial table: .csv, .csv.xz or SQLite database"`
	Table        string             `arg:"--table" help:"SQLite table name"`
	Out          string             `arg:"-o,--out" help:"dataset file, relative names go to the go-ml cache"`
	IgnorePolicy model.IgnorePolicy `arg:"--ignore-policy,env:DISRNN_IGNORE_POLICY" help:"include or exclude ignored trials"`
	BatchSize    int                `arg:"--batch-size" help:"sessions per batch, 0 for the full batch"`
}

func (args) Description() string {
	return "builds session padded disRNN dataset from a trial table"
}

func fail(err error) {
	if err != nil {
		zlog.Fatal(err)
	}
}

func main() {
	a := args{Out: "dataset.json.xz", IgnorePolicy: model.Exclude}
	arg.MustParse(&a)
	defer zlog.Config{Name: "disrnn-dataset", LogWriter: os.Stderr}.Init().Close()

	tb, err := trials.Load(a.Trials, a.Table)
	fail(err)
	zlog.Infof("loaded %d trials from %s", tb.Len(), a.Trials)

	ds, err := model.Build(tb, a.IgnorePolicy, a.BatchSize)
	fail(err)
	zlog.Infof("dataset: %v, shape %v", ds.Summarize(), ds.Xs.Shape)

	fail(ds.Save(a.Out))
	zlog.Infof("stored to %s", a.Out)
}
