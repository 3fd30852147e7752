package model

import (
	"encoding/json"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/disrnn/fu"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros/zorros"
	"io"
	"os"
)

/*
Encode writes dataset as xz compressed JSON
*/
func (ds *Dataset) Encode(w io.Writer) error {
	xw, err := xz.NewWriter(w)
	if err != nil {
		return zorros.Trace(err)
	}
	if err = json.NewEncoder(xw).Encode(ds); err != nil {
		return zorros.Wrapf(err, "failed to encode dataset: %v", err.Error())
	}
	if err = xw.Close(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

/*
Decode reads dataset written by Encode
*/
func Decode(r io.Reader) (*Dataset, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	ds := &Dataset{}
	if err = json.NewDecoder(xr).Decode(ds); err != nil {
		return nil, zorros.Wrapf(err, "failed to decode dataset: %v", err.Error())
	}
	if ds.Xs == nil || ds.Ys == nil {
		return nil, zorros.Errorf("dataset has no tensors")
	}
	for _, x := range []*Tensor{ds.Xs, ds.Ys} {
		if err = x.validate(); err != nil {
			return nil, err
		}
	}
	if ds.Xs.Shape[0] != ds.Ys.Shape[0] || ds.Xs.Shape[1] != ds.Ys.Shape[1] {
		return nil, zorros.Errorf("inputs %v and targets %v shapes mismatch", ds.Xs.Shape, ds.Ys.Shape)
	}
	return ds, nil
}

/*
Store writes encoded dataset to the output
*/
func (ds *Dataset) Store(output iokit.Output) (err error) {
	wh, err := output.Create()
	if err != nil {
		return zorros.Trace(err)
	}
	defer wh.End()
	if err = ds.Encode(wh); err != nil {
		return
	}
	if err = wh.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return
}

/*
Save stores dataset into the file, relative paths are resolved in the go-ml cache
*/
func (ds *Dataset) Save(path string) error {
	return ds.Store(iokit.File(fu.DatasetPath(path)))
}

/*
Load reads dataset stored by Save
*/
func Load(path string) (*Dataset, error) {
	f, err := os.Open(fu.DatasetPath(path))
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer f.Close()
	return Decode(f)
}
