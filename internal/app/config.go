package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cryptem/internal/crypto"
	"cryptem/internal/log"
)

const (
	// ConfigName is the config file looked up in the home directory.
	ConfigName = "cryptem.yml"
	envPrefix  = "CRYPTEM"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string           `mapstructure:"home"`     // config directory, e.g. $HOME/.cryptem
	LogLevel string           `mapstructure:"logLevel"` // debug, info, warn, error or fatal
	KDF      crypto.KDFParams `mapstructure:"kdf"`      // costs for newly created identities
}

// DefaultHome returns $HOME/.cryptem.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".cryptem"), nil
}

// LoadConfig resolves Config from, in increasing priority, defaults, the
// config file in the home directory, CRYPTEM_* environment variables and
// the flags in fs that were set. fs may be nil. Flags are looked up by the
// names "home", "log-level" and "config".
func LoadConfig(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("logLevel", "error")
	v.SetDefault("kdf.time", crypto.DefaultKDFParams.Time)
	v.SetDefault("kdf.memory", crypto.DefaultKDFParams.MemoryKiB)
	v.SetDefault("kdf.threads", crypto.DefaultKDFParams.Threads)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	_ = v.BindEnv("home")
	_ = v.BindEnv("logLevel", envPrefix+"_LOG_LEVEL")

	if fs != nil {
		if f := fs.Lookup("home"); f != nil {
			_ = v.BindPFlag("home", f)
		}
		if f := fs.Lookup("log-level"); f != nil {
			_ = v.BindPFlag("logLevel", f)
		}
	}

	home := v.GetString("home")
	if home == "" {
		var err error
		if home, err = DefaultHome(); err != nil {
			return Config{}, err
		}
	}

	configFile := filepath.Join(home, ConfigName)
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			configFile = f.Value.String()
		}
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		log.Debugw("config file loaded", "path", configFile)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Home = home
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log level and KDF costs.
func (c Config) Validate() error {
	if !log.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if err := c.KDF.Validate(); err != nil {
		return fmt.Errorf("config kdf: %w", err)
	}
	return nil
}
