package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// WeightRecordFilterRequest query de GET /api/weight-records.
type WeightRecordFilterRequest struct {
	PageRequest
	Status     string `query:"status"`
	MaterialID string `query:"materialId"`
}

// CreateWeightRecordRequest alta manual desde el dashboard.
type CreateWeightRecordRequest struct {
	MaterialID    string          `json:"materialId"`
	VehicleNumber string          `json:"vehicleNumber"`
	GrossWeight   decimal.Decimal `json:"grossWeight"`
	TareWeight    decimal.Decimal `json:"tareWeight"`
}

// UpdateWeightStatusRequest cuerpo de PATCH /api/weight-records/:id/status.
type UpdateWeightStatusRequest struct {
	Status string `json:"status"`
}

// WeightRecordResponse salida de un registro de pesaje.
type WeightRecordResponse struct {
	ID            string          `json:"id"`
	MaterialID    string          `json:"materialId"`
	Material      string          `json:"material"`
	Unit          string          `json:"unit"`
	GrossWeight   decimal.Decimal `json:"grossWeight"`
	TareWeight    decimal.Decimal `json:"tareWeight"`
	NetWeight     decimal.Decimal `json:"netWeight"`
	VehicleNumber string          `json:"vehicleNumber"`
	OperatorID    string          `json:"operatorId"`
	Operator      string          `json:"operator"`
	Status        string          `json:"status"`
	EntryDate     string          `json:"entryDate"`
	WeighingDate  *string         `json:"weighingDate"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// WeightRecordFromEntity mapea entidad → respuesta.
func WeightRecordFromEntity(r *entity.WeightRecord) WeightRecordResponse {
	return WeightRecordResponse{
		ID:            r.ID,
		MaterialID:    r.MaterialID,
		Material:      r.MaterialName,
		Unit:          r.MaterialUnit,
		GrossWeight:   r.GrossWeight,
		TareWeight:    r.TareWeight,
		NetWeight:     r.NetWeight,
		VehicleNumber: r.VehicleNumber,
		OperatorID:    r.OperatorID,
		Operator:      r.OperatorName,
		Status:        string(r.Status),
		EntryDate:     ISOTime(r.EntryDate),
		WeighingDate:  ISOTimePtr(r.WeighingDate),
		CreatedAt:     ISOTime(r.CreatedAt),
		UpdatedAt:     ISOTime(r.UpdatedAt),
	}
}
