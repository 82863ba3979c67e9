package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/migrations"
	"github.com/MKhiriev/go-keeplog/models"
)

type historyRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType

	logger *logger.Logger
}

// NewHistoryRepository opens (creating if needed) the SQLite history
// database at cfg.HistoryDSN, applies pending migrations, and returns a
// ready repository.
func NewHistoryRepository(cfg config.Storage, log *logger.Logger) (HistoryRepository, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.HistoryDSN), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.HistoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}

	log.Debug().Str("dsn", cfg.HistoryDSN).Msg("history database ready")

	return newHistoryRepository(db, log), nil
}

func newHistoryRepository(db *sql.DB, log *logger.Logger) *historyRepository {
	return &historyRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

// Record implements [HistoryRepository].
func (r *historyRepository) Record(ctx context.Context, rec models.PassRecord) error {
	query, args, err := r.builder.
		Insert("sync_history").
		Columns("started_at", "finished_at", "created_remote", "updated_remote",
			"written_local", "conflicts", "policy", "status", "error").
		Values(rec.StartedAt.UTC(), rec.FinishedAt.UTC(), rec.CreatedRemote, rec.UpdatedRemote,
			rec.WrittenLocal, rec.Conflicts, rec.Policy, rec.Status, rec.Error).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert history row: %w", err)
	}

	return nil
}

// Last implements [HistoryRepository].
func (r *historyRepository) Last(ctx context.Context, n int) ([]models.PassRecord, error) {
	if n <= 0 {
		return nil, nil
	}

	query, args, err := r.builder.
		Select("id", "started_at", "finished_at", "created_remote", "updated_remote",
			"written_local", "conflicts", "policy", "status", "error").
		From("sync_history").
		OrderBy("id DESC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history rows: %w", err)
	}
	defer rows.Close()

	var out []models.PassRecord
	for rows.Next() {
		var rec models.PassRecord
		if err = rows.Scan(&rec.ID, &rec.StartedAt, &rec.FinishedAt, &rec.CreatedRemote,
			&rec.UpdatedRemote, &rec.WrittenLocal, &rec.Conflicts, &rec.Policy,
			&rec.Status, &rec.Error); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}

	return out, nil
}

// Close implements [HistoryRepository].
func (r *historyRepository) Close() error {
	return r.db.Close()
}
