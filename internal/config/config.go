// Package config handles configuration for the task runner. Values come
// from built-in defaults, an optional .agentdev.yaml in the working
// directory, and environment variable overrides, in increasing precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings the task catalog is built from.
type Config struct {
	// PythonVersion is the interpreter version handed to the package
	// manager when creating the virtual environment.
	PythonVersion string `mapstructure:"python_version"`
	// VenvDir is the virtual environment directory.
	VenvDir string `mapstructure:"venv_dir"`
	// LockFile is the dependency lock file the package manager maintains.
	LockFile string `mapstructure:"lock_file"`
	// PackageManager is the dependency management executable.
	PackageManager string `mapstructure:"package_manager"`
}

const configName = ".agentdev"

// Load reads configuration from defaults, the optional project file, and
// the environment. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("python_version", "3.11")
	v.SetDefault("venv_dir", ".venv")
	v.SetDefault("lock_file", "uv.lock")
	v.SetDefault("package_manager", "uv")

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// The same variables the original Makefile honored.
	_ = v.BindEnv("python_version", "PYTHON_VERSION")
	_ = v.BindEnv("venv_dir", "VENV_DIR")
	_ = v.BindEnv("lock_file", "LOCK_FILE")
	_ = v.BindEnv("package_manager", "PACKAGE_MANAGER")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.PythonVersion == "" {
		return nil, fmt.Errorf("python_version cannot be empty")
	}
	if cfg.VenvDir == "" {
		return nil, fmt.Errorf("venv_dir cannot be empty")
	}

	return &cfg, nil
}
