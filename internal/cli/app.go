package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"weather-export/internal/config"
	"weather-export/internal/errors"
	"weather-export/internal/logging"
	"weather-export/internal/repository/sqlite"
	"weather-export/internal/services"
	"weather-export/internal/validation"
)

// App represents the main CLI application
type App struct {
	service      services.ExportService
	validator    *validation.Validator
	errorHandler *ErrorHandler
	timeout      time.Duration
	in           io.Reader
	out          io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(service services.ExportService, timeout time.Duration, in io.Reader, out io.Writer) *App {
	return &App{
		service:      service,
		validator:    validation.NewValidator(),
		errorHandler: NewErrorHandler(),
		timeout:      timeout,
		in:           in,
		out:          out,
	}
}

// NewAppWithConfig creates an application backed by the configured store
// and export directory
func NewAppWithConfig(cfg *config.Config, in io.Reader, out io.Writer) *App {
	opener := func(ctx context.Context) (sqlite.Repository, error) {
		return config.CreateRepository(ctx, cfg)
	}
	service := services.NewExportService(opener, cfg.GetExportDir(), os.FileMode(cfg.Export.DirPermissions))
	return NewApp(service, cfg.Application.Timeout, in, out)
}

// Run executes the export pipeline. start and end are used as given when
// non-empty; missing dates are prompted for. Every failure is reported on
// the output before it is returned.
func (a *App) Run(ctx context.Context, start, end string) error {
	err := a.run(ctx, start, end)
	if err != nil {
		a.errorHandler.Report(a.out, err)
	}
	return err
}

func (a *App) run(ctx context.Context, start, end string) error {
	prompter := NewPrompter(a.in, a.out)
	prompter.Banner()

	startInput, endInput, err := prompter.CollectDates(start, end)
	if err != nil {
		return errors.NewInputError(err)
	}

	dateRange, err := a.validator.ValidateDateRange(startInput, endInput)
	if err != nil {
		return err
	}
	logging.Debugw("validated range",
		"start", dateRange.Start,
		"end", dateRange.End,
		"days", dateRange.Days(),
	)

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	result, err := a.service.Export(ctx, services.ExportRequest{
		StartInput: startInput,
		EndInput:   endInput,
		Range:      dateRange,
	})
	if err != nil {
		return err
	}

	if result.Empty() {
		fmt.Fprintln(a.out, "[INFO] No data found for the specified date range.")
		return nil
	}

	fmt.Fprintln(a.out, "[SUCCESS]")
	fmt.Fprintf(a.out, "Exported %d rows\n", result.RowCount)
	fmt.Fprintf(a.out, "Saved to: %s\n", result.Path)
	return nil
}
