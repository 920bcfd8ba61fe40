package app

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/helpmap/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// DocsDir replaces the embedded documentation set when non-empty.
	DocsDir string

	// LogLevel is the explicit --log-level value. EnvLogLevel comes from
	// LOG_LEVEL and ranks below -v and -q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string][]string{
	"verbose":  {"HELPMAP_VERBOSE"},
	"quiet":    {"HELPMAP_QUIET"},
	"no_color": {"HELPMAP_NO_COLOR", "NO_COLOR"},
	"format":   {"HELPMAP_FORMAT"},
	"docs_dir": {"HELPMAP_DOCS_DIR"},
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.helpmap.yaml or ./.helpmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// LoadConfigFile loads configuration using an explicit config file.
// Unlike the default search path, a missing explicit file is an error.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(path)
}

func loadConfig(configFile string) (*Config, error) {
	// .env files are loaded before environment binding
	loadEnvFiles()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, errors.NewConfigError("env", "failed to bind "+key, err)
		}
	}

	if configFile == "" {
		configFile = os.Getenv("HELPMAP_CONFIG")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "failed to read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".helpmap")

		// A missing default config file is fine
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.NewConfigError("file", "failed to read config", err)
			}
		}
	}

	return &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		NoColor:    v.GetBool("no_color"),
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),
		DocsDir:    v.GetString("docs_dir"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// Flags carries global flag values and whether each was set explicitly.
// Only explicitly set flags override file and environment values.
type Flags struct {
	Verbose, VerboseSet bool
	Quiet, QuietSet     bool
	NoColor, NoColorSet bool
	Format              string
	LogLevel            string
	DocsDir             string
}

// UpdateFromFlags applies parsed command flags on top of the loaded config.
func (c *Config) UpdateFromFlags(f Flags) {
	if f.VerboseSet {
		c.Verbose = f.Verbose
	}
	if f.QuietSet {
		c.Quiet = f.Quiet
	}
	if f.NoColorSet {
		c.NoColor = f.NoColor
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.DocsDir != "" {
		c.DocsDir = f.DocsDir
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv.Load never overrides a variable that is already set, so
// .env.local is loaded first to take precedence over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
