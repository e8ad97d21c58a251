// =============================================================================
// Shipping List Processor - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file. The configuration
// covers everything that varies between deployments without a code change:
//   - output directory and output file naming
//   - presentation rounding for the USD receipt columns
//   - the manifest header row position
//   - the column alias table (canonical field -> accepted source labels)
//
// Loading follows load -> apply defaults -> validate. A missing
// configuration file is not an error: every setting has a default, and
// most runs never need a config file at all.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hzlogistics/shiplist/internal/manifest"
)

// Config holds the application configuration.
type Config struct {
	// OutputDir is the directory where generated workbooks are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputNaming defines the output file name format.
	// Placeholders:
	//   {name}      - Logical document name (deduped/export/reimport/fob)
	//   {timestamp} - Generation timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "{name}.xlsx"
	OutputNaming string `yaml:"output_naming"`

	// RoundingDigits is the number of decimal places for the USD columns
	// of the receipts. Intermediate arithmetic is never rounded.
	// Default: 2
	RoundingDigits int32 `yaml:"rounding_digits"`

	// ManifestHeaderRow is the 1-based row of the manifest workbook that
	// holds the column labels.
	// Default: 1
	ManifestHeaderRow int `yaml:"manifest_header_row"`

	// ColumnAliases extends the built-in column alias table. Keys are
	// canonical field names; values are additional accepted labels.
	// An entry for a known field is appended to its defaults, so local
	// header variants can be taught without repeating the stock labels.
	ColumnAliases map[string][]string `yaml:"column_aliases"`

	// WriteFOBWorkbook enables the intermediate FOB price workbook.
	// Default: false
	WriteFOBWorkbook bool `yaml:"write_fob_workbook"`

	// WriteSummary enables the per-run summary log in the output
	// directory.
	// Default: true
	WriteSummary bool `yaml:"write_summary"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{WriteSummary: true}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file. When the file does not
// exist the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{WriteSummary: true}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Aliases returns the effective column alias table: the built-in labels
// with any configured labels appended per field.
func (c *Config) Aliases() map[string][]string {
	aliases := manifest.DefaultAliases()
	for field, labels := range c.ColumnAliases {
		aliases[field] = append(aliases[field], labels...)
	}
	return aliases
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.OutputNaming == "" {
		cfg.OutputNaming = "{name}.xlsx"
	}
	if cfg.RoundingDigits == 0 {
		cfg.RoundingDigits = 2
	}
	if cfg.ManifestHeaderRow == 0 {
		cfg.ManifestHeaderRow = 1
	}
}

// validate rejects configurations the pipeline cannot honor.
func validate(cfg *Config) error {
	if cfg.RoundingDigits < 0 {
		return fmt.Errorf("rounding_digits must not be negative, got %d", cfg.RoundingDigits)
	}
	if cfg.ManifestHeaderRow < 1 {
		return fmt.Errorf("manifest_header_row must be at least 1, got %d", cfg.ManifestHeaderRow)
	}

	known := manifest.DefaultAliases()
	for field := range cfg.ColumnAliases {
		if _, ok := known[field]; !ok {
			return fmt.Errorf("column_aliases references unknown field %q", field)
		}
	}
	return nil
}
