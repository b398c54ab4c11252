package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"plan-visualizer/internal/visualizer/models"
	"plan-visualizer/internal/visualizer/theme"

	"go.uber.org/zap"
)

// ============================================================
// SQLite theme registry
// ============================================================

// Themes stores palettes in sqlite and satisfies theme.Registry.
type Themes struct {
	db     *sql.DB
	logger *zap.Logger
}

func New(db *sql.DB, logger *zap.Logger) *Themes {
	return &Themes{db: db, logger: logger}
}

// Init runs the migration and inserts any seed palette that is not stored yet.
func (r *Themes) Init(ctx context.Context, migrationsPath string, seed []models.ThemeDescriptor) error {
	if err := r.runMigrations(ctx, migrationsPath); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return r.ensureSeed(ctx, seed)
}

func (r *Themes) Lookup(ctx context.Context, name string) (models.ThemeDescriptor, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT name, wall_color, floor_color, furniture_color, ceiling_style
        FROM themes
        WHERE name = ?
    `, name)

	var t models.ThemeDescriptor
	if err := row.Scan(&t.Name, &t.WallColor, &t.FloorColor, &t.FurnitureColor, &t.CeilingStyle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ThemeDescriptor{}, fmt.Errorf("theme %q: %w", name, theme.ErrUnknownTheme)
		}
		return models.ThemeDescriptor{}, err
	}
	return t, nil
}

func (r *Themes) List(ctx context.Context) ([]models.ThemeDescriptor, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT name, wall_color, floor_color, furniture_color, ceiling_style
        FROM themes
        ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ThemeDescriptor{}
	for rows.Next() {
		var t models.ThemeDescriptor
		if err := rows.Scan(&t.Name, &t.WallColor, &t.FloorColor, &t.FurnitureColor, &t.CeilingStyle); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Save inserts or replaces a palette.
func (r *Themes) Save(ctx context.Context, t models.ThemeDescriptor) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO themes (name, wall_color, floor_color, furniture_color, ceiling_style)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET
            wall_color = excluded.wall_color,
            floor_color = excluded.floor_color,
            furniture_color = excluded.furniture_color,
            ceiling_style = excluded.ceiling_style
    `, t.Name, t.WallColor, t.FloorColor, t.FurnitureColor, t.CeilingStyle)
	if err != nil {
		return fmt.Errorf("save theme %s: %w", t.Name, err)
	}
	return nil
}

// ============================================================
// Migrations & Seeding
// ============================================================

func (r *Themes) runMigrations(ctx context.Context, migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

func (r *Themes) ensureSeed(ctx context.Context, seed []models.ThemeDescriptor) error {
	for _, t := range seed {
		res, err := r.db.ExecContext(ctx, `
            INSERT OR IGNORE INTO themes (name, wall_color, floor_color, furniture_color, ceiling_style)
            VALUES (?, ?, ?, ?, ?)
        `, t.Name, t.WallColor, t.FloorColor, t.FurnitureColor, t.CeilingStyle)
		if err != nil {
			return fmt.Errorf("seed theme %s: %w", t.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			r.logger.Info("Seeded theme", zap.String("name", t.Name))
		}
	}
	return nil
}

// OpenSQLite opens the sqlite database at dbPath, creating its directory.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
