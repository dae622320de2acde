// Package report genera documentos del libro de pesajes: exportación XLSX y ticket PDF.
package report

import (
	"context"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// SpreadsheetWriter serializa registros de pesaje en una hoja de cálculo.
type SpreadsheetWriter interface {
	WriteWeightRecords(ctx context.Context, records []*entity.WeightRecord) ([]byte, error)
}

// TicketGenerator genera el ticket PDF de un pesaje completado.
type TicketGenerator interface {
	GenerateTicket(ctx context.Context, record *entity.WeightRecord) ([]byte, error)
}
