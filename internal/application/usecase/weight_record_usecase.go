package usecase

import (
	"context"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

// WeightRecordUseCase consultas del libro de pesajes para el dashboard.
// Altas manuales y cambios de estado viven en application/weighing.
type WeightRecordUseCase struct {
	repo repository.WeightRecordRepository
}

// NewWeightRecordUseCase construye el caso de uso.
func NewWeightRecordUseCase(repo repository.WeightRecordRepository) *WeightRecordUseCase {
	return &WeightRecordUseCase{repo: repo}
}

// List lista registros; un OPERATOR sólo ve los suyos.
func (uc *WeightRecordUseCase) List(ctx context.Context, userID string, role entity.Role, in dto.WeightRecordFilterRequest) ([]dto.WeightRecordResponse, dto.Pagination, error) {
	in.DefaultPage()
	f := repository.WeightRecordFilter{MaterialID: in.MaterialID, Limit: in.Limit, Offset: in.Offset()}
	if in.Status != "" {
		st, err := entity.ParseWeightStatus(in.Status)
		if err != nil {
			return nil, dto.Pagination{}, domain.ErrInvalidInput
		}
		f.Status = st
	}
	if role == entity.RoleOperator {
		f.OperatorID = userID
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.WeightRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.WeightRecordFromEntity(r))
	}
	return out, dto.NewPagination(in.PageRequest, total), nil
}

// GetByID obtiene un registro; OPERATOR ajeno recibe ErrForbidden.
func (uc *WeightRecordUseCase) GetByID(ctx context.Context, id, userID string, role entity.Role) (*entity.WeightRecord, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityWeightRecord, ID: id}
	}
	if role == entity.RoleOperator && rec.OperatorID != userID {
		return nil, domain.ErrForbidden
	}
	return rec, nil
}
