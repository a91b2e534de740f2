package pgadapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnName(t *testing.T) {
	// opening does not connect, so no server is needed
	a, err := New("postgres://dtree@localhost/dtree?sslmode=disable")
	require.NoError(t, err)
	defer a.Close()

	testCases := []struct {
		name  string
		valid bool
	}{
		{"petal_length", true},
		{strings.Repeat("a", maxIdentifierLength), true},
		{strings.Repeat("a", maxIdentifierLength+1), false},
		{"", false},
		{`petal"length`, false},
	}
	for _, tc := range testCases {
		name, err := a.ColumnName(tc.name)
		if tc.valid {
			assert.NoError(t, err, tc.name)
			assert.Equal(t, tc.name, name)
		} else {
			assert.Error(t, err, tc.name)
		}
	}
}
