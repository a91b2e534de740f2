package sqlite3adapter

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/minhnghia2208/dtree/dataset/sqlset"
	"github.com/minhnghia2208/dtree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	if err = db.Ping(); err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE flowers (id INTEGER, petal REAL, color TEXT, class TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO flowers VALUES (1, 1.5, 'red', 'a'), (2, NULL, 'blue', 'b'), (3, 3, NULL, 'a')`)
	require.NoError(t, err)

	a, err := New(path)
	require.NoError(t, err)
	defer a.Close()
	class := feature.NewDiscreteFeature("class", []string{"a", "b"})
	columns, samples, err := sqlset.Read(context.Background(), a, "flowers", []feature.Feature{class})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "petal", "color", "class"}, columns)
	require.Len(t, samples, 3)

	expected := []map[string]interface{}{
		{"id": 1.0, "petal": 1.5, "color": "red", "class": "a"},
		{"id": 2.0, "petal": nil, "color": "blue", "class": "b"},
		{"id": 3.0, "petal": 3.0, "color": nil, "class": "a"},
	}
	for i, s := range samples {
		for name, ev := range expected[i] {
			v, err := s.ValueFor(name)
			require.NoError(t, err)
			assert.Equal(t, ev, v, "sample %d feature %s", i, name)
		}
	}
}

func TestColumnName(t *testing.T) {
	a := &adapter{}
	_, err := a.ColumnName("rowid")
	assert.Error(t, err)
	_, err = a.ColumnName(`a"b`)
	assert.Error(t, err)
	name, err := a.ColumnName("petal length")
	require.NoError(t, err)
	assert.Equal(t, "petal length", name)
}
