package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	p := PageRequest{}
	p.DefaultPage()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset())

	p = PageRequest{Page: 3, Limit: 500}
	p.DefaultPage()
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())
}

func TestNewPagination_RedondeaPaginas(t *testing.T) {
	assert.Equal(t, 3, NewPagination(PageRequest{Page: 1, Limit: 10}, 21).Pages)
	assert.Equal(t, 0, NewPagination(PageRequest{Page: 1, Limit: 10}, 0).Pages)
}

func TestISOTime_UTCConMilisegundos(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2024, 1, 15, 17, 30, 0, 0, loc)
	assert.Equal(t, "2024-01-15T10:30:00.000Z", ISOTime(ts))
	assert.Nil(t, ISOTimePtr(nil))
}

func TestDecimal_SeSerializaComoNumero(t *testing.T) {
	out, err := json.Marshal(WeighingAcceptedDTO{ID: "r1", NetWeight: decimal.RequireFromString("15.5")})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"netWeight":15.5`)
}
