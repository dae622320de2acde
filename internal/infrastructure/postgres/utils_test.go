package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder_PlaceholdersYPaginacion(t *testing.T) {
	var w whereBuilder
	w.add("status = ?", "ACTIVE")
	w.add("(name ILIKE ? OR supplier ILIKE ?)", "%pasir%", "%pasir%")

	assert.Equal(t, " WHERE status = $1 AND (name ILIKE $2 OR supplier ILIKE $3)", w.sql())
	assert.Equal(t, " LIMIT $4 OFFSET $5", w.page(20, 40))
	assert.Equal(t, []any{"ACTIVE", "%pasir%", "%pasir%", 20, 40}, w.args)
}

func TestWhereBuilder_Vacio(t *testing.T) {
	var w whereBuilder
	assert.Empty(t, w.sql())
	assert.Empty(t, w.page(0, 0))
	assert.Empty(t, w.args)
}

func TestPgErrorCodes(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(errors.New("otro")))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
