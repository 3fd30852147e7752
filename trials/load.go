package trials

import (
	"strings"
)

/*
Load reads trial table from .csv, .csv.xz or SQLite (.db, .sqlite, .sqlite3) file.
The table argument names SQLite table and is ignored for CSV files.
*/
func Load(path, table string) (*Table, error) {
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(path, ext) {
			return LoadSQLite(path, table)
		}
	}
	return LoadCSV(path)
}
