// SPDX-License-Identifier: MIT
// Package: topolab/config
//
// config.go - YAML file + environment configuration.
//
// Precedence (lowest to highest): built-in defaults, the YAML file,
// TOPOLAB_* environment variables, command-line flags (applied by the
// caller after Load).

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topolab/builder"
)

// ErrInvalidConfig wraps every load, parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultFile is read when Load gets an empty path; its absence is not an error.
const DefaultFile = "topolab.yaml"

// Environment variable names.
const (
	EnvLogLevel      = "TOPOLAB_LOG_LEVEL"
	EnvOutputDir     = "TOPOLAB_OUTPUT_DIR"
	EnvSeed          = "TOPOLAB_SEED"
	EnvLinksFile     = "TOPOLAB_LINKS_FILE"
	EnvInventoryFile = "TOPOLAB_INVENTORY_FILE"
)

var validate = validator.New()

// Config is the resolved topolab configuration.
type Config struct {
	LogLevel  string `yaml:"log_level" validate:"oneof=trace debug info warn warning error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
	OutputDir string `yaml:"output_dir" validate:"required"`

	// Seed drives partial-mesh randomness; 0 selects a time-based seed.
	Seed int64 `yaml:"seed"`

	DefaultSize     string `yaml:"default_size" validate:"required"`
	BranchingFactor int    `yaml:"branching_factor" validate:"min=1"`

	LinksFile     string `yaml:"links_file"`
	InventoryFile string `yaml:"inventory_file"`
	MetricsFile   string `yaml:"metrics_file"`

	SizeProfiles map[string]builder.SizeProfile `yaml:"size_profiles" validate:"dive,keys,required,endkeys"`
}

// Default returns the built-in configuration.
func Default() *Config {
	profiles := make(map[string]builder.SizeProfile, 3)
	for _, p := range builder.Profiles() {
		profiles[p.Name] = p
	}
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		OutputDir:       "output",
		DefaultSize:     builder.ProfileMedium,
		BranchingFactor: builder.DefaultBranchingFactor,
		LinksFile:       "configs/links.txt",
		InventoryFile:   "configs/inventory.yaml",
		SizeProfiles:    profiles,
	}
}

// Load resolves the configuration from path and the process environment.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment lookup.
// An empty path reads DefaultFile if it exists; an explicit path must exist.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	file, optional := path, false
	if file == "" {
		file, optional = DefaultFile, true
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, file, err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err = cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays the TOPOLAB_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str(EnvLogLevel, &c.LogLevel)
	str(EnvOutputDir, &c.OutputDir)
	str(EnvLinksFile, &c.LinksFile)
	str(EnvInventoryFile, &c.InventoryFile)

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}
	return nil
}

// Validate checks the struct tags and normalises profile names.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, describe(err))
	}

	named := make(map[string]builder.SizeProfile, len(c.SizeProfiles))
	for name, p := range c.SizeProfiles {
		key := strings.ToLower(name)
		p.Name = key
		named[key] = p
	}
	c.SizeProfiles = named
	return nil
}

// Profile returns the configured profile called name (case-insensitive),
// falling back to the medium profile for unknown names.
func (c *Config) Profile(name string) builder.SizeProfile {
	if p, ok := c.SizeProfiles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	if p, ok := c.SizeProfiles[builder.ProfileMedium]; ok {
		return p
	}
	return builder.ProfileByName(builder.ProfileMedium)
}

// BuilderOptions translates the generator settings. A zero seed is left to
// the builder's time-seeded default.
func (c *Config) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithBranchingFactor(c.BranchingFactor)}
	if c.Seed != 0 {
		opts = append(opts, builder.WithSeed(c.Seed))
	}
	return opts
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q (value %v)", e.Namespace(), e.Tag(), e.Value()))
	}
	return strings.Join(parts, "; ")
}
