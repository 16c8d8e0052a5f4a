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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	PGY         PGY         `mapstructure:",squash"`
	Collect     Collect     `mapstructure:",squash"`
	CollectSync CollectSync `mapstructure:",squash"`
	Export      Export      `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// PGY concentra os parâmetros do cliente da plataforma Pugongying.
type PGY struct {
	BaseURL        string        `mapstructure:"pgy_base_url"`
	RequestTimeout time.Duration `mapstructure:"pgy_request_timeout"`
}

// Collect controla o ritmo do motor de coleta. Os atrasos são configuráveis
// para que os testes possam reduzi-los.
type Collect struct {
	MaxRetries       int           `mapstructure:"collect_max_retries"`
	RetryDelay       time.Duration `mapstructure:"collect_retry_delay"`
	CoreDataDelay    time.Duration `mapstructure:"collect_core_data_delay"`
	InterTargetDelay time.Duration `mapstructure:"collect_inter_target_delay"`
}

// CollectSync configura a execução automática agendada de lotes de coleta.
type CollectSync struct {
	CronSchedule string `mapstructure:"collect_sync_cron"`
	Enabled      bool   `mapstructure:"collect_sync_enabled"`
}

type Export struct {
	Dir string `mapstructure:"export_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/kol_collector")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("PGY_BASE_URL", "https://pgy.xiaohongshu.com")
	viper.SetDefault("PGY_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("COLLECT_MAX_RETRIES", 3)
	viper.SetDefault("COLLECT_RETRY_DELAY", "500ms")
	viper.SetDefault("COLLECT_CORE_DATA_DELAY", "500ms")
	viper.SetDefault("COLLECT_INTER_TARGET_DELAY", "1s")

	// Defaults para coleta automática agendada
	viper.SetDefault("COLLECT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("COLLECT_SYNC_ENABLED", false)

	viper.SetDefault("EXPORT_DIR", "./exports")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
