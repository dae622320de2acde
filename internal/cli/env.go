package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ninjasaskeh/vr46/internal/infrastructure/postgres"
	"github.com/ninjasaskeh/vr46/pkg/config"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	skipMark = color.New(color.FgYellow).Sprint("-")
)

// openDB carga la configuración y abre el pool. El llamador cierra el pool.
func openDB(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return cfg, pool, nil
}
