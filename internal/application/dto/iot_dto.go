package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// WeighingAcceptedDTO data de la respuesta 200 de POST /api/iot/weighing.
type WeighingAcceptedDTO struct {
	ID        string          `json:"id"`
	NetWeight decimal.Decimal `json:"netWeight"`
	Material  string          `json:"material"`
	Operator  string          `json:"operator"`
	Timestamp string          `json:"timestamp"`
}

// RecentWeighingDTO elemento de GET /api/iot/weighing.
type RecentWeighingDTO struct {
	ID            string          `json:"id"`
	NetWeight     decimal.Decimal `json:"netWeight"`
	Material      string          `json:"material"`
	Operator      string          `json:"operator"`
	VehicleNumber string          `json:"vehicleNumber"`
	Timestamp     string          `json:"timestamp"`
	Status        string          `json:"status"`
}

// RecentWeighingFromEntity proyecta un registro del libro para el listado IoT.
func RecentWeighingFromEntity(r *entity.WeightRecord) RecentWeighingDTO {
	return RecentWeighingDTO{
		ID:            r.ID,
		NetWeight:     r.NetWeight,
		Material:      r.MaterialName,
		Operator:      r.OperatorName,
		VehicleNumber: r.VehicleNumber,
		Timestamp:     ISOTime(r.Timestamp()),
		Status:        string(r.Status),
	}
}
