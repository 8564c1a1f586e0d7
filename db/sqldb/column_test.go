package sqldb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeptools/gw-ordering/db/sqldb"
)

func TestNewColumn(t *testing.T) {
	for _, name := range []string{"id", "users.last_name", "_private", "a1.b2.c3"} {
		c, err := sqldb.NewColumn(name)
		require.NoError(t, err, name)
		require.Equal(t, name, c.Name())
	}
	for _, name := range []string{"", "1abc", "users..id", "users.id;", "a b", "users.id desc"} {
		_, err := sqldb.NewColumn(name)
		require.Error(t, err, name)
	}
}

func TestNewColumnOrPanic(t *testing.T) {
	require.NotPanics(t, func() { sqldb.NewColumnOrPanic("users.id") })
	require.Panics(t, func() { sqldb.NewColumnOrPanic("users.id; DROP TABLE users") })
}
