/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over a SQLite3 database.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	"github.com/minhnghia2208/dtree/dataset/sqlset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	sqlset.DBAdapter
}

/*
New takes a path to a SQLite3 database file and returns
an Adapter that works on the database or an error if it fails to open it.
*/
func New(path string) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("opening sqlite3 database %s: %w", path, err)
	}
	return &adapter{sqlset.DBAdapter{DB: db}}, nil
}

// ColumnName rejects the names sqlite3 reserves for row ids.
func (a *adapter) ColumnName(name string) (string, error) {
	switch name {
	case "rowid", "oid", "_rowid_":
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as a column name`, name)
	}
	return a.DBAdapter.ColumnName(name)
}
