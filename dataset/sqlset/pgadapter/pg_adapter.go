/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/minhnghia2208/dtree/dataset/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

// maxIdentifierLength is the length after which PostgreSQL truncates names
const maxIdentifierLength = 63

type adapter struct {
	sqlset.DBAdapter
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{sqlset.DBAdapter{DB: db}}, nil
}

func (a *adapter) ColumnName(name string) (string, error) {
	if len(name) > maxIdentifierLength {
		return "", fmt.Errorf(`name '%s' is longer than %d bytes`, name, maxIdentifierLength)
	}
	return a.DBAdapter.ColumnName(name)
}
