package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"weather-export/internal/config"
	"weather-export/internal/logging"
)

// RootCommand represents the wxexport command
type RootCommand struct {
	cmd      *cobra.Command
	loader   *config.Loader
	reported bool
}

// NewRootCommand creates the root cobra command with its flags
func NewRootCommand(loader *config.Loader) *RootCommand {
	root := &RootCommand{
		loader: loader,
	}

	root.cmd = &cobra.Command{
		Use:   "wxexport",
		Short: "Export weather readings for a date range to CSV",
		Long: `wxexport reads weather station readings between two dates from the local
SQLite store and writes them to weather_<start>_to_<end>.csv in the export
directory. Both dates are inclusive and use the YYYY/MM/DD format.

EXAMPLES:
  wxexport                                         # Prompt for both dates
  wxexport --start 2024/06/01 --end 2024/06/30     # Export June without prompting
  wxexport --store-path ./weather.db --debug       # Use another store, log to stderr

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults
  A .env file in the working directory fills variables that are not set.

    WX_STORE_PATH                  SQLite store (default: ~/GitRepos/RPi_Compact-Weather-Station/weather.db)
    WX_STORE_TABLE                 Readings table (default: weather)
    WX_EXPORT_DIR                  Output directory (default: ~/GitRepos/RPi_Compact-Weather-Station/exports)
    WX_EXPORT_DIR_PERMISSIONS      Octal mode for a created output directory (default: 0755)
    WX_APP_TIMEOUT                 Bound on the query and write stages (default: 60s)
    WX_DEBUG                       Enable debug logging on stderr (default: false)
    WX_CONFIG                      YAML config file (keys: store_path, store_table, export_dir, app_timeout, debug)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          root.runExport,
	}

	root.addFlags()

	return root
}

// Execute runs the root command. Errors the pipeline has not already
// reported, such as bad flags, are printed to stderr.
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a parent context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	r.reported = false
	err := r.cmd.ExecuteContext(ctx)
	if err != nil && !r.reported {
		fmt.Fprintf(r.cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// addFlags adds configuration override and date flags
func (r *RootCommand) addFlags() {
	flags := r.cmd.Flags()

	flags.String("config", "", "YAML config file (overrides WX_CONFIG)")
	flags.String("store-path", "", "SQLite store path (overrides WX_STORE_PATH)")
	flags.String("store-table", "", "Readings table name (overrides WX_STORE_TABLE)")
	flags.String("export-dir", "", "CSV output directory (overrides WX_EXPORT_DIR)")
	flags.Duration("app-timeout", 0, "Query and write timeout (overrides WX_APP_TIMEOUT)")
	flags.Bool("debug", false, "Enable debug logging on stderr (overrides WX_DEBUG)")

	flags.String("start", "", "Starting log date, YYYY/MM/DD (skips the prompt)")
	flags.String("end", "", "Ending log date, YYYY/MM/DD (skips the prompt)")
}

// getOverridesFromFlags collects the flags the operator actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("config") {
		v, _ := flags.GetString("config")
		overrides.ConfigFile = &v
	}
	if flags.Changed("store-path") {
		v, _ := flags.GetString("store-path")
		overrides.StorePath = &v
	}
	if flags.Changed("store-table") {
		v, _ := flags.GetString("store-table")
		overrides.StoreTable = &v
	}
	if flags.Changed("export-dir") {
		v, _ := flags.GetString("export-dir")
		overrides.ExportDir = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}

	return overrides
}

func (r *RootCommand) runExport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := r.loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		r.reported = true
		NewErrorHandler().Report(out, err)
		return err
	}

	if err := logging.Init(cfg.Application.Debug); err != nil {
		return err
	}
	logging.Debugw("configuration loaded",
		"store", cfg.GetStorePath(),
		"table", cfg.Store.Table,
		"export_dir", cfg.GetExportDir(),
		"timeout", cfg.Application.Timeout,
	)

	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	app := NewAppWithConfig(cfg, cmd.InOrStdin(), out)
	r.reported = true
	return app.Run(cmd.Context(), start, end)
}
