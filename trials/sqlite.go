package trials

import (
	"database/sql"
	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"strings"
)

// DefaultSQLiteTable is the table name LoadSQLite uses when none is given
const DefaultSQLiteTable = "trials"

/*
LoadSQLite reads trial table from the SQLite database in rowid order
*/
func LoadSQLite(path, table string) (*Table, error) {
	if table == "" {
		table = DefaultSQLiteTable
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer db.Close()
	rows, err := db.Query("SELECT * FROM " + quoteIdent(table) + " ORDER BY rowid")
	if err != nil {
		return nil, xerrors.Errorf("failed to query %v: %w", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, zorros.Trace(err)
	}
	t := &Table{Columns: columns}
	for rows.Next() {
		var x Trial
		dest := make([]interface{}, len(columns))
		for i, c := range columns {
			switch c {
			case SessionColumn:
				dest[i] = &x.Session
			case TrialColumn:
				dest[i] = &x.Number
			case ResponseColumn:
				dest[i] = &x.Response
			case RewardColumn:
				dest[i] = &x.Reward
			default:
				dest[i] = new(interface{})
			}
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, xerrors.Errorf("failed to scan trial %d: %w", len(t.Trials), err)
		}
		t.Trials = append(t.Trials, x)
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return t, nil
}

func quoteIdent(s string) string {
	return `"` + strings.Replace(s, `"`, `""`, -1) + `"`
}
