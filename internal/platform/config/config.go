package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Catalog sources.
const (
	SourceMemory   = "memory"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Narrator NarratorConfig `mapstructure:"narrator"`
	Rules    RulesConfig    `mapstructure:"rules"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
	File   string `mapstructure:"file"`
}

type CatalogConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	Watch  bool   `mapstructure:"watch"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type NarratorConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Enabled: el narrador es opcional.
func (n NarratorConfig) Enabled() bool {
	return strings.TrimSpace(n.BaseURL) != ""
}

type RulesConfig struct {
	StrictDestinations        []string `mapstructure:"strict_destinations"`
	PlasticBannedDestinations []string `mapstructure:"plastic_banned_destinations"`
	LongHaulDestinations      []string `mapstructure:"long_haul_destinations"`
}

// SetDefaults carga los valores por defecto en v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "pet-crate-compliance")
	v.SetDefault("log.file", "")

	v.SetDefault("catalog.source", SourceMemory)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.watch", false)

	v.SetDefault("database.dsn", "")

	v.SetDefault("narrator.base_url", "")
	v.SetDefault("narrator.api_key", "")
	v.SetDefault("narrator.timeout", 5*time.Second)

	v.SetDefault("rules.strict_destinations", []string{"GB", "AU"})
	v.SetDefault("rules.plastic_banned_destinations", []string{"AU", "NZ"})
	v.SetDefault("rules.long_haul_destinations", []string{"GB", "US", "AU"})
}

// Load arma la config desde defaults, archivo opcional y env.
// Env: CRATES_SERVER_ADDR, CRATES_CATALOG_SOURCE, ... y además PORT y DB_DSN
// (nombres que ya usa el deploy).
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("CRATES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database.dsn", "CRATES_DATABASE_DSN", "DB_DSN")
	_ = v.BindEnv("log.level", "CRATES_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "CRATES_LOG_FORMAT", "LOG_FORMAT")

	if strings.TrimSpace(file) != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// PORT solo aplica si no vino CRATES_SERVER_ADDR
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv("CRATES_SERVER_ADDR") == "" {
		cfg.Server.Addr = ":" + port
	}

	return &cfg, nil
}

// Default devuelve la config con valores por defecto, sin env ni archivo.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Validate revisa combinaciones inválidas.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}

	switch c.Catalog.Source {
	case SourceMemory:
	case SourceFile:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			errs = append(errs, errors.New("catalog.path is required when catalog.source=file"))
		}
	case SourcePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			errs = append(errs, errors.New("database.dsn is required when catalog.source=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be one of memory|file|postgres, got %q", c.Catalog.Source))
	}

	if c.Catalog.Watch && c.Catalog.Source != SourceFile {
		errs = append(errs, errors.New("catalog.watch is only supported with catalog.source=file"))
	}

	if c.Narrator.Enabled() && c.Narrator.Timeout <= 0 {
		errs = append(errs, errors.New("narrator.timeout must be positive"))
	}

	return errors.Join(errs...)
}
