package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type RuntimeConfig struct {
	DBPath     string `toml:"db_path"`
	StorageKey string `toml:"storage_key"`
	DateLayout string `toml:"date_layout"`
	LogFile    string `toml:"log_file"`
	Scrollback int    `toml:"scrollback"`
	Verbose    bool   `toml:"verbose"`
	Plain      bool   `toml:"plain"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:     defaultDBPath(),
		StorageKey: "cmd-tasks",
		DateLayout: "1/2/2006",
		LogFile:    "",
		Scrollback: 0,
		Verbose:    false,
		Plain:      false,
	}
}

func defaultDBPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tasksh", "tasks.db")
	}
	return ".tasksh.db"
}

// DefaultPath is where LoadFile looks when no path is given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tasksh", "config.toml"), nil
}

// LoadFile overlays the TOML file at path onto base. A missing file is not
// an error; an explicit path that cannot be parsed is.
func LoadFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return base, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return base, fmt.Errorf("parse config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, cfg.Validate()
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKSH_DB"); ok {
		cfg.DBPath = expandHome(v)
	}
	if v, ok := getEnvString("TASKSH_STORAGE_KEY"); ok {
		cfg.StorageKey = v
	}
	if v, ok := getEnvString("TASKSH_DATE_LAYOUT"); ok {
		cfg.DateLayout = v
	}
	if v, ok := getEnvString("TASKSH_LOG_FILE"); ok {
		cfg.LogFile = expandHome(v)
	}
	if v, ok := getEnvInt("TASKSH_SCROLLBACK"); ok && v >= 0 {
		cfg.Scrollback = v
	}
	if v, ok := getEnvBool("TASKSH_VERBOSE"); ok {
		cfg.Verbose = v
	}
	if v, ok := getEnvBool("TASKSH_PLAIN"); ok {
		cfg.Plain = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("config: db_path is required")
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return errors.New("config: storage_key is required")
	}
	if c.Scrollback < 0 {
		return fmt.Errorf("config: scrollback must be >= 0, got %d", c.Scrollback)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
