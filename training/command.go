package training

import (
	"bytes"
	"encoding/json"
	"go-ml.dev/pkg/disrnn/model"
	"go-ml.dev/pkg/disrnn/settings"
	"go-ml.dev/pkg/zorros/zorros"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
)

/*
CommandTrainer runs an external training program as

	Path Args... DATASET SETTINGS

where DATASET is the encoded dataset file and SETTINGS is the JSON of input settings.
The program prints {"likelihood": x} to stdout.
*/
type CommandTrainer struct {
	Path string
	Args []string
	Dir  string // directory to keep dataset and settings files, temporary if empty
}

func (c CommandTrainer) Fit(ds *model.Dataset, s settings.InputSettings) (likelihood float64, err error) {
	dir := c.Dir
	if dir == "" {
		if dir, err = ioutil.TempDir("", "disrnn-fit-*"); err != nil {
			return 0, zorros.Trace(err)
		}
		defer os.RemoveAll(dir)
	}
	dsPath := filepath.Join(dir, "dataset.json.xz")
	if err = ds.Save(dsPath); err != nil {
		return
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return 0, zorros.Trace(err)
	}
	stPath := filepath.Join(dir, "settings.json")
	if err = ioutil.WriteFile(stPath, b, 0644); err != nil {
		return 0, zorros.Trace(err)
	}

	stdout, stderr := bytes.Buffer{}, bytes.Buffer{}
	cmd := exec.Command(c.Path, append(append([]string(nil), c.Args...), dsPath, stPath)...)
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err = cmd.Run(); err != nil {
		return 0, zorros.Wrapf(err, "%v failed: %v: %s", c.Path, err.Error(), bytes.TrimSpace(stderr.Bytes()))
	}
	r := struct {
		Likelihood *float64 `json:"likelihood"`
	}{}
	if err = json.Unmarshal(stdout.Bytes(), &r); err != nil {
		return 0, zorros.Wrapf(err, "bad trainer output: %v", err.Error())
	}
	if r.Likelihood == nil {
		return 0, zorros.Errorf("trainer output has no likelihood")
	}
	return *r.Likelihood, nil
}
