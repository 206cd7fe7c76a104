package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvStorePath overrides the store path when set, taking precedence
	// over both config files.
	EnvStorePath = "TASKPAD_DB"

	// DefaultStorePath is used when neither config files nor the
	// environment provide one.
	DefaultStorePath = ".data/tasks.json"
)

// Config is the full taskpad configuration.
type Config struct {
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	Sync  SyncConfig  `yaml:"sync" mapstructure:"sync"`
}

// StoreConfig configures task persistence.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// SyncConfig configures the simulated batch sync defaults.
type SyncConfig struct {
	BatchSize int    `yaml:"batch_size" mapstructure:"batch_size"`
	Delay     string `yaml:"delay" mapstructure:"delay"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Path: DefaultStorePath},
		Sync: SyncConfig{
			BatchSize: 5,
			Delay:     "10ms",
		},
	}
}

// Load loads and merges configuration: defaults, then the global file, then
// the project file, then environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home, err := os.UserHomeDir(); err == nil {
		if err := loadFile(filepath.Join(home, ".taskpad", "config.yaml"), cfg); err != nil && !os.IsNotExist(err) {
			// Unreadable global config: continue with defaults
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		if err := loadFile(filepath.Join(cwd, ".taskpad", "config.yaml"), cfg); err != nil && !os.IsNotExist(err) {
			// Unreadable project config: continue
		}
	}

	if path := os.Getenv(EnvStorePath); path != "" {
		cfg.Store.Path = path
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".taskpad", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".taskpad", "config.yaml")
}

// WriteDefault writes a commented default configuration to a file.
func WriteDefault(path string) error {
	content := `# taskpad configuration
store:
  # Where the task collection is persisted (one JSON array, rewritten whole
  # on every mutation). TASKPAD_DB overrides this.
  path: .data/tasks.json

# Simulated batch sync defaults for 'taskpad sync'
sync:
  batch_size: 5
  delay: 10ms
`
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
