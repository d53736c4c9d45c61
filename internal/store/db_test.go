package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Both connection handles must satisfy DBTX so stores can run standalone or
// inside a caller-managed transaction.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

func TestDBTXAcceptsConnectionAndTransaction(t *testing.T) {
	var dbtx DBTX

	dbtx = (*sql.DB)(nil)
	assert.NotNil(t, dbtx, "a typed *sql.DB must satisfy DBTX")

	dbtx = (*sql.Tx)(nil)
	assert.NotNil(t, dbtx, "a typed *sql.Tx must satisfy DBTX")
}
