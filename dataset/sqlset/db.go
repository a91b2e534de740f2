package sqlset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

/*
DBAdapter is an Adapter over a database/sql connection pool.
Driver specific adapters embed it and may override its methods.
*/
type DBAdapter struct {
	DB *sql.DB
}

/*
ColumnName accepts any name without double quotes, which are used to
quote identifiers in queries.
*/
func (a *DBAdapter) ColumnName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty names cannot be used as column names")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}

func (a *DBAdapter) ListColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := a.DB.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s" LIMIT 0`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return rows.Columns()
}

func (a *DBAdapter) IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, map[string]interface{}) (bool, error)) error {
	var queryBuffer bytes.Buffer
	queryBuffer.WriteString(`SELECT "`)
	queryBuffer.WriteString(strings.Join(columns, `", "`))
	queryBuffer.WriteString(`" FROM "`)
	queryBuffer.WriteString(table)
	queryBuffer.WriteString(`"`)
	rows, err := a.DB.QueryContext(ctx, queryBuffer.String())
	if err != nil {
		return err
	}
	defer rows.Close()
	for j := 0; rows.Next(); j++ {
		rowValues := make([]interface{}, len(columns))
		values := make([]interface{}, len(columns))
		for i := range rowValues {
			values[i] = &rowValues[i]
		}
		err = rows.Scan(values...)
		if err != nil {
			return err
		}
		row := make(map[string]interface{}, len(columns))
		for i, c := range columns {
			row[c] = rowValues[i]
		}
		ok, err := lambda(j, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	err = rows.Err()
	if err != nil {
		return err
	}
	return rows.Close()
}

// Close closes the underlying connection pool.
func (a *DBAdapter) Close() error {
	return a.DB.Close()
}
