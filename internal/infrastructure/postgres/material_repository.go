package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ninjasaskeh/vr46/internal/domain"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, name, category, supplier, unit_price, unit, stock, status, COALESCE(created_by, ''), created_at, updated_at`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.Supplier, &m.UnitPrice, &m.Unit, &m.Stock,
		&m.Status, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un nuevo material.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (id, name, category, supplier, unit_price, unit, stock, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Category, m.Supplier, m.UnitPrice, m.Unit, m.Stock, m.Status,
		m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID; (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// Update actualiza los datos de catálogo y el stock del material.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, category = $3, supplier = $4, unit_price = $5, unit = $6,
			stock = $7, status = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Category, m.Supplier, m.UnitPrice, m.Unit, m.Stock, m.Status, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un material. Falla con ErrConflict si tiene pesajes asociados.
func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista materiales con filtros y paginación; devuelve también el total sin paginar.
func (r *MaterialRepo) List(ctx context.Context, f repository.MaterialFilter) ([]*entity.Material, int, error) {
	var w whereBuilder
	if f.Search != "" {
		like := "%" + f.Search + "%"
		w.add("(name ILIKE ? OR supplier ILIKE ?)", like, like)
	}
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM materials`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count materials: %w", err)
	}

	query := `SELECT ` + materialColumns + ` FROM materials` + w.sql() + ` ORDER BY created_at DESC, id`
	query += w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// DecrementStock descuenta qty con un UPDATE relativo atómico y devuelve el stock resultante.
func (r *MaterialRepo) DecrementStock(ctx context.Context, id string, qty decimal.Decimal) (decimal.Decimal, error) {
	var remaining decimal.Decimal
	err := r.q.QueryRow(ctx,
		`UPDATE materials SET stock = stock - $2, updated_at = now() WHERE id = $1 RETURNING stock`,
		id, qty,
	).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("decrement stock: %w", err)
	}
	return remaining, nil
}

// UpdateStatus cambia solo el estado del material.
func (r *MaterialRepo) UpdateStatus(ctx context.Context, id string, status entity.MaterialStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE materials SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update material status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
