package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingDatasetPath = errors.New("dataset path is not configured")
	ErrInvalidSampleSize  = errors.New("sample size must be greater than 0")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string `mapstructure:"env"`          // current application environment (local, dev, production etc)
	DatasetPath string `mapstructure:"dataset_path"` // path to the Quran JSON dataset
	Output      Output `mapstructure:"output"`       // console output section
}

// Output contains console rendering parameters.
type Output struct {
	SampleSize int  `mapstructure:"sample_size"` // how many surahs without text to list
	NoColor    bool `mapstructure:"no_color"`    // disable colored verdict lines
}

// Options controls where Load looks for configuration.
type Options struct {
	ConfigPaths []string // directories searched for config.yaml
	EnvFiles    []string // dotenv files loaded before reading the environment
}

// DefaultOptions returns the lookup locations used by the verify command.
func DefaultOptions() Options {
	return Options{
		ConfigPaths: []string{"./config"},
		EnvFiles:    []string{".env"},
	}
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return LoadWithOptions(DefaultOptions())
}

// LoadWithOptions is Load with explicit lookup locations.
func LoadWithOptions(opts Options) (*Config, error) {
	// Load .env files; variables already set in the environment win.
	for _, file := range opts.EnvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading env file %s: %w", file, err)
		}
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range opts.ConfigPaths {
		v.AddConfigPath(path)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("dataset_path", "assets/data/quran.json")
	v.SetDefault("output.sample_size", 5)
	v.SetDefault("output.no_color", false)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("dataset_path", "QURAN_DATASET_PATH")
	_ = v.BindEnv("output.sample_size", "VERIFY_SAMPLE_SIZE")
	_ = v.BindEnv("output.no_color", "VERIFY_NO_COLOR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatasetPath) == "" {
		return ErrMissingDatasetPath
	}
	if c.Output.SampleSize <= 0 {
		return ErrInvalidSampleSize
	}
	return nil
}
