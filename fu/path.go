package fu

import (
	"go-ml.dev/pkg/iokit"
	"path/filepath"
)

/*
DatasetPath resolves relative dataset names into the go-ml cache directory
*/
func DatasetPath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "Datasets", s))
}
