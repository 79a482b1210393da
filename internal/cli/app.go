// Package cli wires the command line surface to the timesheet engine
// and the backing store. Each invocation loads the full timesheet,
// applies one operation and, for mutating commands, saves it back.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"hourlog/internal/config"
	"hourlog/internal/domain"
	"hourlog/internal/repository"
	"hourlog/internal/repository/jsonfile"
	"hourlog/internal/timesheet"
)

// App represents the main CLI application
type App struct {
	store        repository.Store
	cfg          *config.Config
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(store repository.Store, cfg *config.Config) *App {
	return &App{
		store:        store,
		cfg:          cfg,
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
	}
}

// Run executes one command against the timesheet. A failed operation
// aborts before anything is persisted.
func (a *App) Run(ctx context.Context, opts *Options) error {
	cmd, err := opts.Command()
	if err != nil {
		return a.errorHandler.HandleSimple(err)
	}

	entries, err := a.store.Load(ctx)
	if err != nil {
		return a.errorHandler.Handle("load timesheet", err)
	}

	switch cmd {
	case CommandClockIn:
		updated, err := timesheet.ClockIn(entries, opts.Args.Project, opts.Args.Description, opts.StartTime)
		if err != nil {
			return a.errorHandler.Handle("clock in", err)
		}
		return a.save(ctx, updated)

	case CommandClockOut:
		updated, err := timesheet.ClockOut(entries, opts.Args.Project, opts.Args.Description, opts.StartTime, opts.EndTime)
		if err != nil {
			return a.errorHandler.Handle("clock out", err)
		}
		return a.save(ctx, updated)

	case CommandDelete:
		return a.save(ctx, timesheet.RemoveLast(entries, opts.Args.Project))

	case CommandExport:
		return a.export(entries, opts)

	default:
		return a.status(entries, opts)
	}
}

// save persists the mutated timesheet; mutating commands print nothing
// on success.
func (a *App) save(ctx context.Context, entries []domain.Entry) error {
	if err := a.store.Save(ctx, entries); err != nil {
		return a.errorHandler.Handle("save timesheet", err)
	}
	return nil
}

// status prints the report for the selected entries.
func (a *App) status(entries []domain.Entry, opts *Options) error {
	selected, err := timesheet.Status(entries, timesheet.FilterOptions{
		Project: opts.Args.Project,
		Start:   opts.StartTime,
		End:     opts.EndTime,
	})
	if err != nil {
		return a.errorHandler.Handle("report status", err)
	}
	fmt.Fprint(a.out, RenderReport(selected, a.cfg.Display))
	return nil
}

// export writes the filtered timesheet to the given file in the JSON
// record form.
func (a *App) export(entries []domain.Entry, opts *Options) error {
	filtered, err := timesheet.Filter(entries, timesheet.FilterOptions{
		Project: opts.Args.Project,
		Start:   opts.StartTime,
		End:     opts.EndTime,
	})
	if err != nil {
		return a.errorHandler.Handle("export timesheet", err)
	}

	data, err := jsonfile.Marshal(filtered)
	if err != nil {
		return a.errorHandler.Handle("export timesheet", err)
	}
	if err := os.WriteFile(opts.Export, data, 0644); err != nil {
		return a.errorHandler.Handle("export timesheet", err)
	}
	log.Debug().Str("file", opts.Export).Int("entries", len(filtered)).Msg("timesheet exported")
	return nil
}
