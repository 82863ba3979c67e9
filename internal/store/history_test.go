package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/models"
)

func newTestHistoryRepo(t *testing.T) (*historyRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return newHistoryRepository(db, logger.Nop()), mock, db
}

func TestHistoryRecord_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := models.PassRecord{
		StartedAt:     started,
		FinishedAt:    started.Add(2 * time.Second),
		CreatedRemote: 1,
		UpdatedRemote: 2,
		WrittenLocal:  3,
		Conflicts:     1,
		Policy:        "do-nothing",
		Status:        models.PassStatusOK,
	}

	mock.ExpectExec("INSERT INTO sync_history").
		WithArgs(rec.StartedAt, rec.FinishedAt, rec.CreatedRemote, rec.UpdatedRemote,
			rec.WrittenLocal, rec.Conflicts, rec.Policy, rec.Status, rec.Error).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Record(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestHistoryRecord_ExecError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_history").
		WillReturnError(errors.New("disk full"))

	err := repo.Record(context.Background(), models.PassRecord{Status: models.PassStatusOK})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestHistoryLast_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "started_at", "finished_at", "created_remote", "updated_remote",
			"written_local", "conflicts", "policy", "status", "error"}).
		AddRow(2, started.Add(time.Minute), started.Add(time.Minute+time.Second), 0, 1, 0, 0, "do-nothing", "ok", "").
		AddRow(1, started, started.Add(time.Second), 1, 0, 0, 1, "do-nothing", "error", "remote commit failed")

	mock.ExpectQuery("SELECT (.+) FROM sync_history").
		WillReturnRows(rows)

	got, err := repo.Last(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != 2 {
		t.Errorf("expected newest record first, got ID=%d", got[0].ID)
	}
	if got[1].Error != "remote commit failed" {
		t.Errorf("unexpected error column: %q", got[1].Error)
	}
}

func TestHistoryLast_ZeroIsEmpty(t *testing.T) {
	repo, _, db := newTestHistoryRepo(t)
	defer db.Close()

	got, err := repo.Last(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result for n=0, got %v", got)
	}
}
