package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tdx/internal/repositories"
	"github.com/desertthunder/tdx/internal/services"
	"github.com/desertthunder/tdx/internal/shared"
	"github.com/desertthunder/tdx/internal/store"
	"github.com/desertthunder/tdx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	store      *store.FileStore
	sync       *services.SyncService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Store      *store.FileStore
	Sync       *services.SyncService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Store == nil {
		opts.Store = store.NewFileStore(opts.Config.StatePath(), opts.Logger)
	}
	if opts.Sync == nil {
		opts.Sync = services.NewSyncService(opts.Config.Client.APIURL, opts.HTTPClient)
	}

	return &Runner{
		config:     opts.Config,
		store:      opts.Store,
		sync:       opts.Sync,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		addCommand, listCommand, toggleCommand, rmCommand, syncCommand, fetchCommand, healthCommand, serveCommand, tuiCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// journal opens the sync journal database, applying pending migrations.
//
// The caller owns the returned connection.
func (r *Runner) journal() (*repositories.SyncLogRepository, *sql.DB, error) {
	db, err := shared.NewDatabase(r.config.JournalPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	return repositories.NewSyncLogRepository(db), db, nil
}

// engine builds a sync engine over the runner's store and service.
//
// A journal that cannot be opened downgrades to an unjournaled engine rather
// than blocking the sync.
func (r *Runner) engine() (*tasks.Engine, func()) {
	journal, db, err := r.journal()
	if err != nil {
		r.logger.Warn("sync journal unavailable", "error", err)
		return tasks.NewEngine(r.store, r.sync, nil, r.logger), func() {}
	}

	return tasks.NewEngine(r.store, r.sync, journal, r.logger), func() { db.Close() }
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
