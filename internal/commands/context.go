package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/cashmonitor-dev/cashmonitor/internal/access"
	"github.com/cashmonitor-dev/cashmonitor/internal/categories"
	"github.com/cashmonitor-dev/cashmonitor/internal/changelog"
	"github.com/cashmonitor-dev/cashmonitor/internal/config"
	"github.com/cashmonitor-dev/cashmonitor/internal/gitops"
	"github.com/cashmonitor-dev/cashmonitor/internal/goals"
	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
	"github.com/cashmonitor-dev/cashmonitor/internal/recurring"
	"github.com/cashmonitor-dev/cashmonitor/internal/store"
)

// dataDirEnv overrides the configured data directory when set.
const dataDirEnv = "CASHMONITOR_DATA_DIR"

// app bundles the services a command needs, built once per invocation.
type app struct {
	cfg     *config.Config
	store   *store.Store
	engine  *recurring.Engine
	tracker *goals.Tracker
	guard   *access.Guard
	session *access.Session
	cats    *categories.Service
}

// loadApp reads the config and wires up all services. The data directory is
// created if missing; failure to do so is fatal.
func loadApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no config at %s, run 'cashmonitor init' first", configPath)
		}
		return nil, err
	}

	dataDir := cfg.Data.Dir
	if env := os.Getenv(dataDirEnv); env != "" {
		dataDir = env
	}

	st, err := store.New(dataDir)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.Pin.SessionMinutes) * time.Minute
	return &app{
		cfg:     cfg,
		store:   st,
		engine:  recurring.NewEngine(dataDir),
		tracker: goals.NewTracker(dataDir),
		guard:   access.NewGuard(dataDir),
		session: access.NewSession(ttl),
		cats:    categories.NewService(cfg.Categories.Expense, cfg.Categories.Income),
	}, nil
}

// currentMonthKey is the key of the month containing today.
func currentMonthKey() string {
	return monthkey.FromDate(time.Now())
}

// loadMonth loads a month document and, for current or past months,
// materializes any recurring entries the month still owes. Future months
// stay empty so forecasts remain projections.
func (a *app) loadMonth(key string) (*model.MonthDocument, error) {
	doc, err := a.store.Load(key)
	if err != nil {
		return nil, err
	}

	if key > currentMonthKey() {
		return doc, nil
	}

	templates, err := a.engine.Load()
	if err != nil {
		return nil, err
	}
	added, err := recurring.Apply(doc, templates)
	if err != nil {
		return nil, err
	}
	if added > 0 {
		if err := a.saveWithAudit(doc, "recurring", "", fmt.Sprintf("%d recurring entries", added)); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// saveWithAudit persists a document, records the mutation in the change
// log, and snapshots the data directory when auto-snapshot is on. Audit
// failures after a successful save are reported but do not fail the
// operation.
func (a *app) saveWithAudit(doc *model.MonthDocument, action, transactionID, details string) error {
	if err := a.store.Save(doc); err != nil {
		return err
	}

	if err := changelog.Record(a.store.Dir(), action, doc.MonthKey, transactionID, details); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write change log: %v\n", err)
	}

	if a.cfg.Backup.AutoSnapshot {
		if _, err := gitops.Snapshot(a.store.Dir(), action+": "+doc.MonthKey); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to snapshot data dir: %v\n", err)
		}
	}
	return nil
}

// requireUnlocked enforces the PIN gate for edit/delete. A session already
// unlocked by a recent verification passes without re-prompting.
func (a *app) requireUnlocked(pin string) error {
	if a.session.Unlocked() {
		return nil
	}
	return a.session.Unlock(a.guard, pin)
}
