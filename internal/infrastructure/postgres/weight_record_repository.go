package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var _ repository.WeightRecordRepository = (*WeightRecordRepo)(nil)

// weightRecordSelect lectura con join a material y operador.
const weightRecordSelect = `
	SELECT wr.id, wr.material_id, wr.gross_weight, wr.tare_weight, wr.net_weight, wr.vehicle_number,
		wr.operator_id, wr.status, wr.entry_date, wr.weighing_date, wr.created_at, wr.updated_at,
		m.name, m.unit, u.name
	FROM weight_records wr
	JOIN materials m ON m.id = wr.material_id
	JOIN users u ON u.id = wr.operator_id`

// WeightRecordRepo libro de pesajes sobre PostgreSQL (usable con pool o tx).
type WeightRecordRepo struct {
	q Querier
}

// NewWeightRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWeightRecordRepository(q Querier) *WeightRecordRepo {
	return &WeightRecordRepo{q: q}
}

func scanWeightRecord(row pgx.Row) (*entity.WeightRecord, error) {
	var r entity.WeightRecord
	err := row.Scan(&r.ID, &r.MaterialID, &r.GrossWeight, &r.TareWeight, &r.NetWeight, &r.VehicleNumber,
		&r.OperatorID, &r.Status, &r.EntryDate, &r.WeighingDate, &r.CreatedAt, &r.UpdatedAt,
		&r.MaterialName, &r.MaterialUnit, &r.OperatorName)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserta un registro de pesaje.
func (r *WeightRecordRepo) Create(ctx context.Context, rec *entity.WeightRecord) error {
	query := `
		INSERT INTO weight_records (id, material_id, gross_weight, tare_weight, net_weight, vehicle_number,
			operator_id, status, entry_date, weighing_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.MaterialID, rec.GrossWeight, rec.TareWeight, rec.NetWeight, rec.VehicleNumber,
		rec.OperatorID, rec.Status, rec.EntryDate, rec.WeighingDate, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert weight record: %w", err)
	}
	return nil
}

func (r *WeightRecordRepo) getOne(ctx context.Context, query, id string) (*entity.WeightRecord, error) {
	rec, err := scanWeightRecord(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get weight record: %w", err)
	}
	return rec, nil
}

// GetByID obtiene un registro; (nil, nil) si no existe.
func (r *WeightRecordRepo) GetByID(ctx context.Context, id string) (*entity.WeightRecord, error) {
	return r.getOne(ctx, weightRecordSelect+` WHERE wr.id = $1`, id)
}

// GetForUpdate bloquea la fila del registro hasta el fin de la transacción.
func (r *WeightRecordRepo) GetForUpdate(ctx context.Context, id string) (*entity.WeightRecord, error) {
	return r.getOne(ctx, weightRecordSelect+` WHERE wr.id = $1 FOR UPDATE OF wr`, id)
}

// UpdateStatus persiste estado, fecha de pesaje y updated_at.
func (r *WeightRecordRepo) UpdateStatus(ctx context.Context, rec *entity.WeightRecord) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE weight_records SET status = $2, weighing_date = $3, updated_at = $4 WHERE id = $1`,
		rec.ID, rec.Status, rec.WeighingDate, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update weight record status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista registros con filtros. Limit 0 devuelve todos (exportación).
func (r *WeightRecordRepo) List(ctx context.Context, f repository.WeightRecordFilter) ([]*entity.WeightRecord, int, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("wr.status = ?", f.Status)
	}
	if f.MaterialID != "" {
		w.add("wr.material_id = ?", f.MaterialID)
	}
	if f.OperatorID != "" {
		w.add("wr.operator_id = ?", f.OperatorID)
	}
	if f.From != nil {
		w.add("wr.created_at >= ?", *f.From)
	}
	if f.To != nil {
		w.add("wr.created_at < ?", *f.To)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM weight_records wr`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count weight records: %w", err)
	}

	query := weightRecordSelect + w.sql() + ` ORDER BY wr.created_at DESC, wr.id` + w.page(f.Limit, f.Offset)
	list, err := r.query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListRecent últimos registros por fecha de creación.
func (r *WeightRecordRepo) ListRecent(ctx context.Context, limit int) ([]*entity.WeightRecord, error) {
	return r.query(ctx, weightRecordSelect+` ORDER BY wr.created_at DESC, wr.id LIMIT $1`, limit)
}

func (r *WeightRecordRepo) query(ctx context.Context, query string, args ...any) ([]*entity.WeightRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weight records: %w", err)
	}
	defer rows.Close()
	var list []*entity.WeightRecord
	for rows.Next() {
		rec, err := scanWeightRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weight record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
