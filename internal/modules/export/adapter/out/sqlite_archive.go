package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"umusanzu/internal/modules/export/dto"
	exportout "umusanzu/internal/modules/export/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteArchive struct {
	db *sql.DB
}

func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	archive := &SQLiteArchive{db: db}
	if err := archive.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return archive, nil
}

func (a *SQLiteArchive) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS contributions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  batch_id TEXT NOT NULL,
  batch_file TEXT NOT NULL,
  mode TEXT NOT NULL,
  kirundi TEXT NOT NULL,
  french TEXT NOT NULL,
  exported_at TEXT NOT NULL
);
`
	if _, err := a.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create contributions table: %w", err)
	}
	return nil
}

func (a *SQLiteArchive) Append(ctx context.Context, batch exportout.ArchiveBatch) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	const stmt = `
INSERT INTO contributions (batch_id, batch_file, mode, kirundi, french, exported_at)
VALUES (?, ?, ?, ?, ?, ?);
`
	exportedAt := batch.ExportedAt.Format("2006-01-02T15:04:05Z07:00")
	for _, pair := range batch.Pairs {
		if _, err := tx.ExecContext(ctx, stmt, batch.ID, batch.File, batch.Mode, pair.Kirundi, pair.French, exportedAt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert contribution: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}
	return nil
}

func (a *SQLiteArchive) Stats(ctx context.Context) (dto.Stats, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT mode, COUNT(*) FROM contributions GROUP BY mode`)
	if err != nil {
		return dto.Stats{}, fmt.Errorf("query archive stats: %w", err)
	}
	defer rows.Close()

	stats := dto.Stats{ByMode: make(map[string]int)}
	for rows.Next() {
		var mode string
		var count int
		if err := rows.Scan(&mode, &count); err != nil {
			return dto.Stats{}, fmt.Errorf("scan archive stats: %w", err)
		}
		stats.ByMode[mode] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return dto.Stats{}, fmt.Errorf("iterate archive stats: %w", err)
	}
	return stats, nil
}

func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}
