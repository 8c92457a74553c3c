package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/owdragon-cli/internal/adapters/game"
	"github.com/bnema/owdragon-cli/internal/application"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "OWD"
	configName = "owd"
	configType = "toml"
)

const (
	KeyConfigFile     = "config"
	KeyBaseURL        = "api.base_url"
	KeyOrigin         = "api.origin"
	KeyReferer        = "api.referer"
	KeyMissionReferer = "api.mission_referer"
	KeyUserAgent      = "api.user_agent"
	KeyRequestTimeout = "api.request_timeout"
	KeyAuthTimeout    = "api.auth_timeout"
	KeyFeedInterval   = "schedule.feed_interval"
	KeyPollInterval   = "schedule.poll_interval"
	KeyStepDelay      = "missions.step_delay"
	KeyPlaceholder    = "missions.placeholder"
	KeyLoginTitle     = "missions.login_title"
	KeyInitDataFile   = "accounts.init_data_file"
	KeyTokenFile      = "accounts.token_file"
	KeyAccountsFile   = "accounts.file"
	KeySecretsDir     = "accounts.secrets_dir"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

type Config struct {
	API      APIConfig
	Schedule ScheduleConfig
	Missions MissionsConfig
	Accounts AccountsConfig
	Log      LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type APIConfig struct {
	BaseURL        string
	Origin         string
	Referer        string
	MissionReferer string
	UserAgent      string
	RequestTimeout time.Duration
	AuthTimeout    time.Duration
}

type ScheduleConfig struct {
	FeedInterval time.Duration
	PollInterval time.Duration
}

type MissionsConfig struct {
	StepDelay   time.Duration
	Placeholder string
	LoginTitle  string
}

type AccountsConfig struct {
	InitDataFile string
	TokenFile    string
	File         string
	// SecretsDir backs *_ref entries of the accounts file when pass has no
	// matching entry.
	SecretsDir string
}

type LogConfig struct {
	Level  string
	Format string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseURL, game.DefaultBaseURL)
	v.SetDefault(KeyOrigin, game.DefaultOrigin)
	v.SetDefault(KeyReferer, game.DefaultReferer)
	v.SetDefault(KeyMissionReferer, game.DefaultMissionReferer)
	v.SetDefault(KeyUserAgent, game.DefaultUserAgent)
	v.SetDefault(KeyRequestTimeout, game.DefaultRequestTimeout)
	v.SetDefault(KeyAuthTimeout, time.Duration(0))
	v.SetDefault(KeyFeedInterval, application.DefaultFeedInterval)
	v.SetDefault(KeyPollInterval, application.DefaultPollInterval)
	v.SetDefault(KeyStepDelay, application.DefaultStepDelay)
	v.SetDefault(KeyPlaceholder, application.DefaultPlaceholder)
	v.SetDefault(KeyLoginTitle, application.DefaultLoginTitle)
	v.SetDefault(KeyInitDataFile, "data.txt")
	v.SetDefault(KeyTokenFile, "token.txt")
	v.SetDefault(KeyAccountsFile, "")
	v.SetDefault(KeySecretsDir, defaultSecretsDir())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

func defaultSecretsDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".owd", "secrets")
	}
	return filepath.Join(configDir, "owd", "secrets")
}

// LoadDotEnv reads .env files into the process environment. Missing files
// are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the optional owd.toml config file, OWD_* environment variables
// and any flags already bound to v.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit := v.GetString(KeyConfigFile); explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "owd"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL:        v.GetString(KeyBaseURL),
			Origin:         v.GetString(KeyOrigin),
			Referer:        v.GetString(KeyReferer),
			MissionReferer: v.GetString(KeyMissionReferer),
			UserAgent:      v.GetString(KeyUserAgent),
			RequestTimeout: v.GetDuration(KeyRequestTimeout),
			AuthTimeout:    v.GetDuration(KeyAuthTimeout),
		},
		Schedule: ScheduleConfig{
			FeedInterval: v.GetDuration(KeyFeedInterval),
			PollInterval: v.GetDuration(KeyPollInterval),
		},
		Missions: MissionsConfig{
			StepDelay:   v.GetDuration(KeyStepDelay),
			Placeholder: v.GetString(KeyPlaceholder),
			LoginTitle:  v.GetString(KeyLoginTitle),
		},
		Accounts: AccountsConfig{
			InitDataFile: v.GetString(KeyInitDataFile),
			TokenFile:    v.GetString(KeyTokenFile),
			File:         v.GetString(KeyAccountsFile),
			SecretsDir:   v.GetString(KeySecretsDir),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("api.request_timeout must be positive, got %s", c.API.RequestTimeout)
	}
	if c.API.AuthTimeout < 0 {
		return fmt.Errorf("api.auth_timeout must not be negative, got %s", c.API.AuthTimeout)
	}
	if c.Schedule.FeedInterval <= 0 {
		return fmt.Errorf("schedule.feed_interval must be positive, got %s", c.Schedule.FeedInterval)
	}
	if c.Schedule.PollInterval <= 0 {
		return fmt.Errorf("schedule.poll_interval must be positive, got %s", c.Schedule.PollInterval)
	}
	if c.Missions.StepDelay < 0 {
		return fmt.Errorf("missions.step_delay must not be negative, got %s", c.Missions.StepDelay)
	}

	return nil
}
