package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/internal/service"
	"github.com/MKhiriev/go-keeplog/internal/store"
	"github.com/MKhiriev/go-keeplog/internal/workers"
	"github.com/MKhiriev/go-keeplog/models"
)

// StateStore is the durable state dependency of the App, satisfied by
// [store.StateStore].
type StateStore interface {
	Load() (models.State, error)
	Save(st models.State) error
}

type App struct {
	auth    service.AuthService
	sync    service.SyncService
	state   StateStore
	history store.HistoryRepository

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

// NewApp wires the application. history may be nil, in which case passes run
// unrecorded and the history mode is unavailable.
func NewApp(
	auth service.AuthService,
	syncSvc service.SyncService,
	state StateStore,
	history store.HistoryRepository,
	cfg *config.StructuredConfig,
	log *logger.Logger,
) *App {
	return &App{
		auth:    auth,
		sync:    syncSvc,
		state:   state,
		history: history,
		cfg:     cfg,
		logger:  log.GetChildLogger("app", "client"),
	}
}

// Run dispatches on the configured mode: print history, run a single pass,
// or keep re-syncing on file changes until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Run.ShowHistory > 0 {
		return a.printHistory(ctx)
	}

	if !a.cfg.Watch.Enabled {
		return a.RunOnce(ctx)
	}

	worker := workers.NewWatchWorker(a.cfg.Sync.LogPath, a.cfg.Watch, a.RunOnce, a.logger)
	return worker.Run(ctx)
}

// RunOnce performs one complete pass: load state, authenticate, reconcile,
// persist state, record history. The ledger in the persisted state is the
// one the executed plan produced; in dry-run mode the previous ledger is
// kept so the next real pass still sees the old baselines.
func (a *App) RunOnce(ctx context.Context) error {
	started := time.Now().UTC()

	st, err := a.state.Load()
	if err != nil {
		return fmt.Errorf("load sync state: %w", err)
	}

	st, err = a.auth.Authenticate(ctx, st)
	if err != nil {
		a.record(ctx, started, models.SyncPlan{}, err)
		return fmt.Errorf("authenticate: %w", err)
	}

	plan, err := a.sync.FullSync(ctx, st.Checksums)
	if err != nil {
		a.record(ctx, started, models.SyncPlan{}, err)
		return err
	}

	if !a.cfg.Run.DryRun {
		st.Checksums = plan.Checksums
	}
	if err = a.state.Save(st); err != nil {
		a.record(ctx, started, plan, err)
		return fmt.Errorf("persist sync state: %w", err)
	}

	a.record(ctx, started, plan, nil)
	return nil
}

// record appends one pass summary to the history. Failures are logged and
// swallowed: history is observability, not part of the pass.
func (a *App) record(ctx context.Context, started time.Time, plan models.SyncPlan, passErr error) {
	if a.history == nil {
		return
	}

	rec := models.PassRecord{
		StartedAt:     started,
		FinishedAt:    time.Now().UTC(),
		CreatedRemote: int64(len(plan.CreateRemote)),
		UpdatedRemote: int64(len(plan.UpdateRemote)),
		WrittenLocal:  int64(len(plan.WriteLocal)),
		Conflicts:     int64(len(plan.Conflicts)),
		Policy:        a.cfg.Sync.Policy,
		Status:        models.PassStatusOK,
	}
	if passErr != nil {
		rec.Status = models.PassStatusError
		rec.Error = passErr.Error()
	}

	if err := a.history.Record(ctx, rec); err != nil {
		a.logger.Warn().Err(err).Msg("recording pass history failed")
	}
}

func (a *App) printHistory(ctx context.Context) error {
	if a.history == nil {
		return fmt.Errorf("pass history is not configured")
	}

	records, err := a.history.Last(ctx, a.cfg.Run.ShowHistory)
	if err != nil {
		return fmt.Errorf("read pass history: %w", err)
	}

	for _, rec := range records {
		fmt.Fprintf(os.Stdout, "%s  %-5s  created=%d updated=%d pulled=%d conflicts=%d policy=%s",
			rec.StartedAt.Format(time.RFC3339),
			rec.Status,
			rec.CreatedRemote,
			rec.UpdatedRemote,
			rec.WrittenLocal,
			rec.Conflicts,
			rec.Policy,
		)
		if rec.Error != "" {
			fmt.Fprintf(os.Stdout, "  error=%q", rec.Error)
		}
		fmt.Fprintln(os.Stdout)
	}

	return nil
}
