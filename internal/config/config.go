// Package config provides configuration types and defaults for gridline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/infrastructure/sqlstore"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/tracing"
)

// Config holds all configuration options for gridline.
type Config struct {
	Store               StoreConfig     `mapstructure:"store"`
	Grid                GridConfig      `mapstructure:"grid"`
	Theme               ThemeConfig     `mapstructure:"theme"`
	Tracing             tracing.Config  `mapstructure:"tracing"`
	Telemetry           TelemetryConfig `mapstructure:"telemetry"`
	AutoRefresh         bool            `mapstructure:"auto_refresh"`
	AutoRefreshDebounce time.Duration   `mapstructure:"auto_refresh_debounce"`
	Flags               map[string]bool `mapstructure:"flags"`
}

// StoreConfig says where records come from. For SQLite, Database is the
// file path.
type StoreConfig struct {
	sqlstore.Conn `mapstructure:",squash"`
	Table         string `mapstructure:"table"`
	Key           string `mapstructure:"key"`
}

// GridConfig holds grid behaviour and the column schema.
type GridConfig struct {
	ItemsPerPage    int           `mapstructure:"items_per_page"`
	RowNumbers      bool          `mapstructure:"row_numbers"`
	ClipboardKey    string        `mapstructure:"clipboard_key"`
	CopyFlash       time.Duration `mapstructure:"copy_flash"`
	BulkConcurrency int           `mapstructure:"bulk_concurrency"`
	DoubleClick     time.Duration `mapstructure:"double_click"`
	Columns         []grid.Column `mapstructure:"columns"`
}

// ThemeConfig selects a preset and per-token color overrides.
type ThemeConfig struct {
	Preset string `mapstructure:"preset"`
	// Colors accepts nested maps or dotted keys:
	//   colors:
	//     grid:
	//       focus: "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors keyed by dotted token name.
func (t ThemeConfig) FlattenedColors() map[string]string {
	out := make(map[string]string)
	flatten("", t.Colors, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		case map[any]any:
			conv := make(map[string]any, len(val))
			for mk, mv := range val {
				if s, ok := mk.(string); ok {
					conv[s] = mv
				}
			}
			flatten(key, conv, out)
		}
	}
}

// TelemetryConfig configures crash reporting. An empty DSN disables it.
type TelemetryConfig struct {
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

const (
	DefaultItemsPerPage    = 50
	MaxItemsPerPage        = 1000
	DefaultClipboardKey    = "gridline.clipboard"
	DefaultCopyFlash       = 600 * time.Millisecond
	DefaultDoubleClick     = 400 * time.Millisecond
	DefaultBulkConcurrency = 4
	DefaultDebounce        = 300 * time.Millisecond
)

// ConfigDir returns ~/.config/gridline, or "" without a home directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gridline")
}

// DefaultDatabasePath is where the demo SQLite database lives.
func DefaultDatabasePath() string {
	if dir := ConfigDir(); dir != "" {
		return filepath.Join(dir, "gridline.db")
	}
	return filepath.Join(".gridline", "gridline.db")
}

// DefaultTracesFilePath is where the file exporter writes spans.
func DefaultTracesFilePath() string {
	if dir := ConfigDir(); dir != "" {
		return filepath.Join(dir, "traces", "traces.jsonl")
	}
	return ""
}

// DefaultColumns is the schema of the demo people table.
func DefaultColumns() []grid.Column {
	return []grid.Column{
		{ID: "name", Label: "Name", Width: 18},
		{ID: "gender", Label: "Gender", Kind: grid.KindStatus, Options: []string{"F", "M", "X"}},
		{ID: "age", Label: "Age", Kind: grid.KindNumber, Width: 5},
		{ID: "district", Label: "District", Width: 12},
		{ID: "active", Label: "Active", Kind: grid.KindCheckbox},
		{ID: "profile", Label: "Profile", Kind: grid.KindComposite, Parts: []string{"gender", "age", "district"}, Width: 20},
	}
}

// Defaults returns a Config with default values.
func Defaults() Config {
	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()
	return Config{
		Store: StoreConfig{
			Conn:  sqlstore.Conn{Driver: string(sqlstore.SQLite), Database: DefaultDatabasePath()},
			Table: "people",
			Key:   "id",
		},
		Grid: GridConfig{
			ItemsPerPage:    DefaultItemsPerPage,
			RowNumbers:      true,
			ClipboardKey:    DefaultClipboardKey,
			CopyFlash:       DefaultCopyFlash,
			BulkConcurrency: DefaultBulkConcurrency,
			DoubleClick:     DefaultDoubleClick,
			Columns:         DefaultColumns(),
		},
		Tracing:             tr,
		AutoRefresh:         true,
		AutoRefreshDebounce: DefaultDebounce,
		Flags:               flags.New(nil).All(),
	}
}

// Columns returns the configured schema, or the default one.
func (c Config) Columns() []grid.Column {
	if len(c.Grid.Columns) == 0 {
		return DefaultColumns()
	}
	return c.Grid.Columns
}

// Fields lists the record fields the schema reads, each once, in column
// order. Composite columns contribute their parts.
func (c Config) Fields() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, col := range c.Columns() {
		if col.Kind == grid.KindComposite {
			for _, p := range col.Parts {
				add(p)
			}
			continue
		}
		add(col.FieldName())
	}
	return out
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateStore(c.Store); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := ValidateGrid(c.Grid); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	for name := range c.Flags {
		if !flags.IsKnown(name) {
			log.Warn(log.CatConfig, "unknown feature flag", "flag", name)
		}
	}
	return nil
}

// ValidateStore checks the store section.
func ValidateStore(s StoreConfig) error {
	if _, err := sqlstore.ParseDialect(s.Driver); err != nil {
		return err
	}
	if s.Table == "" {
		return fmt.Errorf("table is required")
	}
	if s.Key == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}

// ValidateGrid checks paging limits and the column schema. An empty
// schema is valid and falls back to the defaults.
func ValidateGrid(g GridConfig) error {
	if g.ItemsPerPage < 1 || g.ItemsPerPage > MaxItemsPerPage {
		return fmt.Errorf("items_per_page must be between 1 and %d, got %d", MaxItemsPerPage, g.ItemsPerPage)
	}
	if g.BulkConcurrency < 0 {
		return fmt.Errorf("bulk_concurrency must not be negative")
	}
	if len(g.Columns) == 0 {
		return nil
	}
	return grid.ValidateColumns(g.Columns)
}

// ValidateTracing checks the tracing section.
func ValidateTracing(t tracing.Config) error {
	switch t.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("invalid exporter %q (must be none, file, stdout or otlp)", t.Exporter)
	}
	if t.SampleRate < 0 || t.SampleRate > 1 {
		return fmt.Errorf("sample_rate must be between 0 and 1, got %v", t.SampleRate)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as commented YAML.
func DefaultConfigTemplate() string {
	return `# gridline configuration

store:
  driver: sqlite          # sqlite, postgres or mysql
  # database: ~/.config/gridline/gridline.db
  # dsn: postgres://app@localhost/census?sslmode=disable
  table: people
  key: id

grid:
  items_per_page: 50
  row_numbers: true
  copy_flash: 600ms
  bulk_concurrency: 4
  # columns:
  #   - id: name
  #     label: Name
  #   - id: age
  #     kind: number
  #   - id: profile
  #     kind: composite
  #     parts: [gender, district]

# Reload when the database file changes outside gridline
auto_refresh: true

# theme:
#   preset: nord
#   colors:
#     grid.focus: "#FF8800"

# flags:
#   revert-on-failure: true
#   type-to-edit: true

# tracing:
#   enabled: true
#   exporter: file       # none, file, stdout or otlp

# telemetry:
#   sentry_dsn: ""
`
}

// WriteDefaultConfig creates a config file at path with the default template.
func WriteDefaultConfig(path string) error {
	log.Debug(log.CatConfig, "writing default config", "path", path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "path", path)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", path)
		return fmt.Errorf("writing config file: %w", err)
	}
	log.Info(log.CatConfig, "created default config", "path", path)
	return nil
}
