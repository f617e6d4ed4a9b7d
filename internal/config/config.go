package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"estoque/internal/infrastructure/storage"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	envPrefix = "ESTOQUE"

	defaultEnv           = EnvProd
	defaultLogLevel      = "info"
	defaultConfigDir     = ".estoque"
	defaultSQLiteFile    = "estoque.db"
	defaultRedisPrefix   = "estoque:"
	defaultServerAddress = "127.0.0.1:8080"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env        string     `mapstructure:"app_env"`
	LogLevel   string     `mapstructure:"log_level"`
	Locale     string     `mapstructure:"locale"`
	Storage    Storage    `mapstructure:"storage"`
	Validation Validation `mapstructure:"validation"`
	Server     Server     `mapstructure:"server"`
}

type Storage struct {
	Driver      string `mapstructure:"driver"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
	RedisURL    string `mapstructure:"redis_url"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

type Validation struct {
	StrictDates bool `mapstructure:"strict_dates"`
}

type Server struct {
	Address string `mapstructure:"address"`
}

// Options задают источники конфигурации поверх значений по умолчанию.
type Options struct {
	// ConfigFile - YAML-файл; пустое значение ищет config.yaml в текущей
	// директории и в ~/.estoque, отсутствие файла не ошибка.
	ConfigFile string
	// EnvFile - .env файл; пустое значение пробует ./.env.
	EnvFile string
	// Flags привязываются к ключам через FlagKeys.
	Flags *pflag.FlagSet
	// FlagKeys: имя флага -> ключ конфигурации.
	FlagKeys map[string]string
}

// Load reads defaults, then the config file, then .env, then ESTOQUE_*
// environment variables, then bound flags. Later sources win.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), defaultConfigDir))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range opts.FlagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Locale == "" {
		cfg.Locale = detectLocale()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad загружает конфигурацию или паникует
func MustLoad(opts Options) *Config {
	cfg, err := Load(opts)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("locale", "")
	v.SetDefault("storage.driver", storage.DriverSQLite)
	v.SetDefault("storage.sqlite_path", filepath.Join(homeDir(), defaultConfigDir, defaultSQLiteFile))
	v.SetDefault("storage.postgres_dsn", "")
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.redis_prefix", defaultRedisPrefix)
	v.SetDefault("validation.strict_dates", true)
	v.SetDefault("server.address", defaultServerAddress)
}

func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// detectLocale reads the POSIX locale variables, e.g. LANG=pt_BR.UTF-8.
func detectLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return "en"
}

func homeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("%w: app_env %q", ErrInvalidConfig, c.Env)
	}

	switch c.Storage.Driver {
	case storage.DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("%w: storage.sqlite_path не может быть пустым", ErrInvalidConfig)
		}
	case storage.DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("%w: storage.postgres_dsn не может быть пустым", ErrInvalidConfig)
		}
	case storage.DriverRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("%w: storage.redis_url не может быть пустым", ErrInvalidConfig)
		}
	case storage.DriverMemory:
	default:
		return fmt.Errorf("%w: storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address не может быть пустым", ErrInvalidConfig)
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
