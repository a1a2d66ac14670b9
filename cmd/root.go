package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/gridline/internal/app"
	"github.com/zjrosen/gridline/internal/cachemanager"
	"github.com/zjrosen/gridline/internal/clipboard"
	"github.com/zjrosen/gridline/internal/config"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/infrastructure/sqlite"
	"github.com/zjrosen/gridline/internal/infrastructure/sqlstore"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/mode"
	"github.com/zjrosen/gridline/internal/pubsub"
	"github.com/zjrosen/gridline/internal/telemetry"
	"github.com/zjrosen/gridline/internal/tracing"
	"github.com/zjrosen/gridline/internal/ui/styles"
	"github.com/zjrosen/gridline/internal/watcher"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, so the
	// OSC 11 reply cannot land in the cell editor.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".gridline/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "gridline",
	Short:   "A spreadsheet-style terminal editor for database tables",
	Long:    `gridline shows a database table one page at a time as an editable grid with keyboard and mouse selection, copy/paste and bulk edits.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gridline/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug.log and enable the log overlay (ctrl+x)")
	rootCmd.PersistentFlags().String("driver", "", "database driver: sqlite, postgres or mysql")
	rootCmd.PersistentFlags().String("database", "", "database name, or file path for sqlite")
	rootCmd.PersistentFlags().String("dsn", "", "full connection string, overrides the other store flags")
	rootCmd.Flags().StringP("table", "t", "", "table to edit")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable reloading when the database file changes")

	_ = viper.BindPFlag("store.driver", rootCmd.PersistentFlags().Lookup("driver"))
	_ = viper.BindPFlag("store.database", rootCmd.PersistentFlags().Lookup("database"))
	_ = viper.BindPFlag("store.dsn", rootCmd.PersistentFlags().Lookup("dsn"))
	_ = viper.BindPFlag("store.table", rootCmd.Flags().Lookup("table"))
}

func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("store.driver", d.Store.Driver)
	v.SetDefault("store.database", d.Store.Database)
	v.SetDefault("store.table", d.Store.Table)
	v.SetDefault("store.key", d.Store.Key)
	v.SetDefault("grid.items_per_page", d.Grid.ItemsPerPage)
	v.SetDefault("grid.row_numbers", d.Grid.RowNumbers)
	v.SetDefault("grid.clipboard_key", d.Grid.ClipboardKey)
	v.SetDefault("grid.copy_flash", d.Grid.CopyFlash)
	v.SetDefault("grid.bulk_concurrency", d.Grid.BulkConcurrency)
	v.SetDefault("grid.double_click", d.Grid.DoubleClick)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("auto_refresh", d.AutoRefresh)
	v.SetDefault("auto_refresh_debounce", d.AutoRefreshDebounce)
	v.SetDefault("flags", d.Flags)
}

func initConfig() {
	setDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .gridline/config.yaml (current directory)
		// 2. ~/.config/gridline/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			if dir := config.ConfigDir(); dir != "" {
				viper.AddConfigPath(dir)
			}
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// initLogging installs the debug log when asked for. The returned func
// closes it and is never nil.
func initLogging() (func(), error) {
	if !debugFlag && !log.DebugRequested() {
		return func() {}, nil
	}
	path := os.Getenv("GRIDLINE_LOG")
	if path == "" {
		path = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(path, "gridline")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	debugFlag = true
	log.Info(log.CatConfig, "gridline starting", "version", version, "config", viper.ConfigFileUsed())
	return cleanup, nil
}

// store is an open record store plus what the host needs to watch it.
type store struct {
	records *sqlstore.Store
	dialect sqlstore.Dialect
	path    string // sqlite file, empty for servers
	close   func() error
}

// openStore connects to the configured database. The bundled people
// table on SQLite goes through the migrating opener; anything else is
// used as found.
func openStore(ctx context.Context, sc config.StoreConfig, fields []string) (*store, error) {
	dialect, err := sqlstore.ParseDialect(sc.Driver)
	if err != nil {
		return nil, err
	}
	if dialect == sqlstore.SQLite && sc.DSN == "" && sc.Table == sqlite.PeopleTable {
		db, err := sqlite.NewDB(expandHome(sc.Database))
		if err != nil {
			return nil, err
		}
		return &store{
			records: sqlstore.New(db.Connection(), dialect, sc.Table, sc.Key, fields...),
			dialect: dialect,
			path:    db.Path(),
			close:   db.Close,
		}, nil
	}

	if dialect == sqlstore.SQLite {
		sc.Database = expandHome(sc.Database)
	}
	db, dialect, err := sqlstore.Open(ctx, sc.Conn)
	if err != nil {
		return nil, err
	}
	st := &store{
		records: sqlstore.New(db, dialect, sc.Table, sc.Key, fields...),
		dialect: dialect,
		close:   db.Close,
	}
	if dialect == sqlstore.SQLite && sc.DSN == "" {
		st.path = sc.Database
	}
	return st, nil
}

func expandHome(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func runApp(cmd *cobra.Command, _ []string) error {
	closeLog, err := initLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		cfg.AutoRefresh = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	reporter, err := telemetry.New(telemetry.Options{
		DSN:         cfg.Telemetry.SentryDSN,
		Environment: cfg.Telemetry.Environment,
		Release:     version,
	})
	if err != nil {
		return err
	}
	defer func() { _ = reporter.Close() }()
	defer reporter.Recover()

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tp, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		_ = tp.Shutdown(shutdownCtx)
	}()

	st, err := openStore(ctx, cfg.Store, cfg.Fields())
	if err != nil {
		reporter.CaptureError(err, map[string]string{"stage": "open"})
		return fmt.Errorf("opening %s: %w", cfg.Store.Driver, err)
	}
	defer func() { _ = st.close() }()

	var gw gateway.Gateway = sqlstore.NewGateway(st.records, cfg.Columns())
	if tp.Enabled() {
		gw = tracing.Gateway(gw, tp.Tracer())
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = localConfigPath
	}

	services := mode.Services{
		Config:     &cfg,
		ConfigPath: configPath,
		Source:     st.records,
		Gateway:    gw,
		Clipboard: clipboard.Default(
			cachemanager.NewInMemoryCacheManager[string, string]("clipboard", cachemanager.NoExpiration, time.Hour),
			cfg.Grid.ClipboardKey),
		Flags:    flags.New(cfg.Flags),
		Reporter: reporter,
	}

	var changes *pubsub.Broker[watcher.WatcherEvent]
	if cfg.AutoRefresh && st.path != "" {
		w, err := startWatcher(st.path, cfg.AutoRefreshDebounce)
		if err != nil {
			log.Warn(log.CatWatcher, "auto refresh disabled", "error", err)
		} else {
			defer func() { _ = w.Stop() }()
			services.Watcher = w
			changes = w.Broker()
		}
	}

	model, err := app.New(ctx, app.Options{
		Services: services,
		Changes:  changes,
		Debug:    debugFlag,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		reporter.CaptureError(err, map[string]string{"stage": "run"})
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func startWatcher(path string, debounce time.Duration) (*watcher.Watcher, error) {
	wc := watcher.DefaultConfig(path)
	if debounce > 0 {
		wc.DebounceDur = debounce
	}
	w, err := watcher.New(wc)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		_ = w.Stop()
		return nil, err
	}
	return w, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
