package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendSQLite = "sqlite"
	BackendCSV    = "csv"
)

type Config struct {
	Storage Storage `toml:"storage"`
	Log     Log     `toml:"log"`
	Program Program `toml:"program"`
}

type Storage struct {
	Backend string `toml:"backend"`
	DBPath  string `toml:"db_path"`
	CSVPath string `toml:"csv_path"`
}

type Log struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

type Program struct {
	// Path is a YAML program file; empty means the built-in program.
	Path string `toml:"path"`
	// Phase is the phase selected at startup; empty means the first one.
	Phase string `toml:"phase"`
}

// Default returns a config rooted at dir, normally DefaultDir().
func Default(dir string) *Config {
	return &Config{
		Storage: Storage{
			Backend: BackendSQLite,
			DBPath:  filepath.Join(dir, "bulletproof.db"),
			CSVPath: filepath.Join(dir, "workout_history.csv"),
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultDir returns ~/.config/bulletproof
func DefaultDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "bulletproof"), nil
}

// DefaultPath returns ~/.config/bulletproof/config.toml
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path over the defaults for its directory and applies
// BULLETPROOF_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"BULLETPROOF_STORAGE_BACKEND": &c.Storage.Backend,
		"BULLETPROOF_DB_PATH":         &c.Storage.DBPath,
		"BULLETPROOF_CSV_PATH":        &c.Storage.CSVPath,
		"BULLETPROOF_LOG_FILE":        &c.Log.File,
		"BULLETPROOF_LOG_LEVEL":       &c.Log.Level,
		"BULLETPROOF_PROGRAM_PATH":    &c.Program.Path,
		"BULLETPROOF_PHASE":           &c.Program.Phase,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}
	if v, ok := lookup("BULLETPROOF_LOG_JSON"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BULLETPROOF_LOG_JSON: %w", err)
		}
		c.Log.JSON = b
	}
	return nil
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal"}

func (c *Config) Validate() error {
	// settings live in the database whichever backend holds check-ins
	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendSQLite:
	case BackendCSV:
		if c.Storage.CSVPath == "" {
			return fmt.Errorf("storage.csv_path is required for the csv backend")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}

	level := strings.ToLower(c.Log.Level)
	for _, l := range logLevels {
		if level == l {
			c.Log.Level = level
			return nil
		}
	}
	return fmt.Errorf("unknown log.level %q", c.Log.Level)
}
