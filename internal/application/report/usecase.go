package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// ExportFilter filtros de la exportación. To es exclusivo.
type ExportFilter struct {
	From       *time.Time
	To         *time.Time
	Status     string
	MaterialID string
}

// UseCase documentos sobre el libro de pesajes.
type UseCase struct {
	records repository.WeightRecordRepository
	sheets  SpreadsheetWriter
	tickets TicketGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(records repository.WeightRecordRepository, sheets SpreadsheetWriter, tickets TicketGenerator) *UseCase {
	return &UseCase{records: records, sheets: sheets, tickets: tickets}
}

// ExportWeightRecords devuelve el XLSX con todos los registros que cumplen el filtro
// y el nombre de archivo sugerido.
func (uc *UseCase) ExportWeightRecords(ctx context.Context, in ExportFilter) ([]byte, string, error) {
	f := repository.WeightRecordFilter{MaterialID: in.MaterialID, From: in.From, To: in.To}
	if in.Status != "" {
		st, err := entity.ParseWeightStatus(in.Status)
		if err != nil {
			return nil, "", domain.ErrInvalidInput
		}
		f.Status = st
	}
	if in.From != nil && in.To != nil && !in.From.Before(*in.To) {
		return nil, "", fmt.Errorf("%w: from debe ser anterior a to", domain.ErrInvalidInput)
	}

	list, _, err := uc.records.List(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar registros: %w", err)
	}
	data, err := uc.sheets.WriteWeightRecords(ctx, list)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar xlsx: %w", err)
	}
	return data, "weight-records-" + time.Now().UTC().Format("20060102-150405") + ".xlsx", nil
}

// Ticket genera el ticket PDF de un registro COMPLETED.
//
// Retorna:
//   - NotFoundError      si el registro no existe.
//   - domain.ErrForbidden si un OPERATOR pide un registro ajeno.
//   - domain.ErrConflict  si el registro aún no está COMPLETED.
func (uc *UseCase) Ticket(ctx context.Context, id, userID string, role entity.Role) ([]byte, string, error) {
	rec, err := uc.records.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener registro: %w", err)
	}
	if rec == nil {
		return nil, "", &domain.NotFoundError{Entity: domain.EntityWeightRecord, ID: id}
	}
	if role == entity.RoleOperator && rec.OperatorID != userID {
		return nil, "", domain.ErrForbidden
	}
	if rec.Status != entity.WeightCompleted {
		return nil, "", fmt.Errorf("%w: el registro está en estado %s", domain.ErrConflict, rec.Status)
	}
	data, err := uc.tickets.GenerateTicket(ctx, rec)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar ticket: %w", err)
	}
	return data, "ticket-" + rec.ID + ".pdf", nil
}
