package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain"
)

func init() {
	// Pesos, stock y precios salen como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// isoLayout ISO-8601 en UTC con milisegundos, p. ej. 2024-01-15T10:30:00.000Z.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// ISOTime formatea t en UTC con milisegundos.
func ISOTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ISOTimePtr como ISOTime; nil devuelve nil.
func ISOTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := ISOTime(*t)
	return &s
}

// PageRequest paginación por página para listados (?page=1&limit=10).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto y acota Limit.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
}

// Offset desplazamiento SQL equivalente a la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination calcula el número de páginas.
func NewPagination(p PageRequest, total int) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}

// APIResponse envoltorio de éxito.
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Code    string              `json:"code,omitempty"`
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}
