package trials

import (
	"bytes"
	"encoding/csv"
	"github.com/gocarina/gocsv"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

/*
ReadCSV reads trial table from CSV stream with header
*/
func ReadCSV(r io.Reader) (*Table, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	header, err := csv.NewReader(bytes.NewReader(b)).Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, xerrors.Errorf("failed to read csv header: %w", err)
	}
	for i, c := range header {
		header[i] = strings.TrimSpace(c)
	}
	rows := []*Trial{}
	if err = gocsv.UnmarshalBytes(b, &rows); err != nil {
		return nil, xerrors.Errorf("failed to read trials: %w", err)
	}
	t := &Table{Columns: header, Trials: make([]Trial, len(rows))}
	for i, x := range rows {
		t.Trials[i] = *x
	}
	return t, nil
}

/*
LoadCSV reads trial table from CSV file, files with .xz suffix are decompressed
*/
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer f.Close()
	var rd io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		if rd, err = xz.NewReader(f); err != nil {
			return nil, zorros.Wrapf(err, "failed to decompress %v: %v", path, err.Error())
		}
	}
	return ReadCSV(rd)
}

/*
LuckyLoadCSV loads trial table and trows any occurred errors as a panic
*/
func LuckyLoadCSV(path string) *Table {
	t, err := LoadCSV(path)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return t
}
