package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Performance      Performance      `mapstructure:",squash"`
	HistoryRetention HistoryRetention `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
	Migrate  bool   `mapstructure:"database_migrate"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Performance agrupa as regras de lote e histórico
type Performance struct {
	HistoryPageSize    int  `mapstructure:"performance_history_page_size"`
	RecordSalesHistory bool `mapstructure:"performance_history_record_sales"`
	MaxBatchSize       int  `mapstructure:"performance_max_batch_size"`
	Decimals           int  `mapstructure:"performance_decimals"`
}

type HistoryRetention struct {
	CronSchedule string `mapstructure:"history_retention_cron"`
	Months       int    `mapstructure:"history_retention_months"`
	Enabled      bool   `mapstructure:"history_retention_enabled"`
}

// Dashboard configura o cliente HTTP usado pelo editor de grade
type Dashboard struct {
	BaseURL  string        `mapstructure:"dashboard_base_url"`
	Token    string        `mapstructure:"dashboard_token"`
	Email    string        `mapstructure:"dashboard_email"`
	Password string        `mapstructure:"dashboard_password"`
	Timeout  time.Duration `mapstructure:"dashboard_timeout"`
	LogFile  string        `mapstructure:"dashboard_log_file"` // logs do editor de terminal
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:4200,http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("PERFORMANCE_HISTORY_PAGE_SIZE", 10)
	viper.SetDefault("PERFORMANCE_HISTORY_RECORD_SALES", false) // vendas avulsas não entram no histórico
	viper.SetDefault("PERFORMANCE_MAX_BATCH_SIZE", 12)          // um ano inteiro por lote
	viper.SetDefault("PERFORMANCE_DECIMALS", 2)

	viper.SetDefault("HISTORY_RETENTION_CRON", "0 2 1 * *") // Primeiro dia do mês às 2h
	viper.SetDefault("HISTORY_RETENTION_MONTHS", 24)
	viper.SetDefault("HISTORY_RETENTION_ENABLED", false)

	viper.SetDefault("DASHBOARD_BASE_URL", "http://localhost:8000")
	viper.SetDefault("DASHBOARD_TOKEN", "")
	viper.SetDefault("DASHBOARD_EMAIL", "")
	viper.SetDefault("DASHBOARD_PASSWORD", "")
	viper.SetDefault("DASHBOARD_TIMEOUT", "15s")
	viper.SetDefault("DASHBOARD_LOG_FILE", "grid-editor.log")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

func (c *Config) validate() error {
	if c.Performance.HistoryPageSize <= 0 {
		return fmt.Errorf("PERFORMANCE_HISTORY_PAGE_SIZE deve ser positivo: %d", c.Performance.HistoryPageSize)
	}
	if c.Performance.MaxBatchSize <= 0 {
		return fmt.Errorf("PERFORMANCE_MAX_BATCH_SIZE deve ser positivo: %d", c.Performance.MaxBatchSize)
	}
	if c.Performance.Decimals < 0 || c.Performance.Decimals > 6 {
		return fmt.Errorf("PERFORMANCE_DECIMALS fora do intervalo 0..6: %d", c.Performance.Decimals)
	}
	if c.HistoryRetention.Enabled && c.HistoryRetention.Months <= 0 {
		return fmt.Errorf("HISTORY_RETENTION_MONTHS deve ser positivo: %d", c.HistoryRetention.Months)
	}
	return nil
}

// loadEnvFile carrega o primeiro .env encontrado subindo a partir do diretório atual
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "..", ".env"),
		filepath.Join(cwd, "..", "..", ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
