package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv and Resolve.
const (
	EnvConfig  = "STUDYQUIZ_CONFIG"
	EnvCount   = "STUDYQUIZ_COUNT"
	EnvSeed    = "STUDYQUIZ_SEED"
	EnvBank    = "STUDYQUIZ_BANK"
	EnvLogFile = "STUDYQUIZ_LOG_FILE"
)

// DefaultQuestionCount is the session length used when nothing overrides it.
const DefaultQuestionCount = 50

// Config holds everything needed to start a quiz.
type Config struct {
	// QuestionCount is the number of questions per session.
	QuestionCount int `yaml:"question_count"`

	// Seed makes sessions reproducible when set.
	Seed *uint64 `yaml:"seed"`

	// BankPath is a YAML or JSON question bank. Empty means the embedded one.
	BankPath string `yaml:"bank"`

	// LogFile receives the standard logger's output. Empty discards it.
	LogFile string `yaml:"log_file"`
}

// Overrides are values supplied on the command line. Nil fields were not set.
type Overrides struct {
	QuestionCount *int
	Seed          *uint64
	BankPath      *string
	LogFile       *string
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount: DefaultQuestionCount,
	}
}

// DefaultPath resolves the config file location:
// 1. $XDG_CONFIG_HOME/studyquiz/config.yaml
// 2. ~/.config/studyquiz/config.yaml
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studyquiz", "config.yaml"), nil
}

// Resolve builds the effective configuration from defaults, the config
// file, the environment and finally o, each layer overriding the last.
//
// path is the --config flag value. When empty, STUDYQUIZ_CONFIG and then
// DefaultPath are tried, and a missing file there is ignored. A missing
// file named explicitly is an error.
func Resolve(path string, o Overrides) (Config, error) {
	cfg := DefaultConfig()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	if err := cfg.LoadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	cfg.Apply(o)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile merges the YAML file at path into c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with any STUDYQUIZ_* variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvCount, err)
		}
		c.QuestionCount = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.Seed = &seed
	}
	if v := os.Getenv(EnvBank); v != "" {
		c.BankPath = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	return nil
}

// Apply copies every set override into c.
func (c *Config) Apply(o Overrides) {
	if o.QuestionCount != nil {
		c.QuestionCount = *o.QuestionCount
	}
	if o.Seed != nil {
		seed := *o.Seed
		c.Seed = &seed
	}
	if o.BankPath != nil {
		c.BankPath = *o.BankPath
	}
	if o.LogFile != nil {
		c.LogFile = *o.LogFile
	}
}

// Validate checks that c can start a session.
func (c Config) Validate() error {
	if c.QuestionCount <= 0 {
		return errors.New("config: question count must be positive")
	}
	return nil
}
