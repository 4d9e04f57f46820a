package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	RunModeOnce   = "once"
	RunModeServer = "server"

	DestinationSheets = "sheets"
	DestinationCSV    = "csv"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Report      Report      `mapstructure:",squash"`
	Destination Destination `mapstructure:",squash"`
	Sync        Sync        `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Sentry      Sentry      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	RunMode  string `mapstructure:"run_mode" validate:"oneof=once server"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Enabled indica se o histórico de sincronizações deve ser gravado no banco
func (d Database) Enabled() bool {
	return d.URL != ""
}

type Meta struct {
	BaseURL               string   `mapstructure:"meta_base_url" validate:"required,url"`
	URL                   string   `mapstructure:"meta_url"`
	Version               string   `mapstructure:"meta_version" validate:"required"`
	AccessToken           string   `mapstructure:"meta_access_token" validate:"required"`
	AccountIDs            []string `mapstructure:"meta_account_ids" validate:"required,min=1,dive,required"`
	PageSize              int      `mapstructure:"meta_page_size" validate:"gte=0"`
	MaxRetries            int      `mapstructure:"meta_max_retries" validate:"gte=0"`
	RequestsPerSecond     float64  `mapstructure:"meta_requests_per_second" validate:"gt=0"`
	RequestTimeoutSeconds int      `mapstructure:"meta_request_timeout_seconds" validate:"gt=0"`
}

type Report struct {
	// FiscalYear fixa o ano de início da janela; 0 acompanha o ano corrente
	FiscalYear int `mapstructure:"report_fiscal_year" validate:"gte=0"`
}

type Destination struct {
	Driver                string `mapstructure:"destination_driver" validate:"oneof=sheets csv"`
	GoogleCredentialsFile string `mapstructure:"google_credentials_file" validate:"required_if=Driver sheets"`
	SpreadsheetNameFormat string `mapstructure:"spreadsheet_name_format" validate:"required"`
	WorksheetTitle        string `mapstructure:"worksheet_title" validate:"required"`
	SheetsMaxRetries      int    `mapstructure:"sheets_max_retries" validate:"gte=0"`
	CSVOutputDir          string `mapstructure:"csv_output_dir" validate:"required_if=Driver csv"`
}

type Sync struct {
	CronSchedule      string `mapstructure:"sync_cron"`
	Enabled           bool   `mapstructure:"sync_enabled"`
	MaxConcurrentJobs int    `mapstructure:"sync_max_concurrent_jobs" validate:"gte=0"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Sentry struct {
	DSN string `mapstructure:"sentry_dsn"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RUN_MODE", RunModeOnce)

	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v20.0")
	v.SetDefault("META_ACCESS_TOKEN", "")
	v.SetDefault("META_ACCOUNT_IDS", "")
	v.SetDefault("META_PAGE_SIZE", 0)                // 0 usa o tamanho de página padrão da Graph API
	v.SetDefault("META_MAX_RETRIES", 3)              // tentativas extras em 429/5xx
	v.SetDefault("META_REQUESTS_PER_SECOND", 5)      // compartilhado entre todas as contas
	v.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 60) // por requisição

	v.SetDefault("REPORT_FISCAL_YEAR", 2024)

	v.SetDefault("DESTINATION_DRIVER", DestinationSheets)
	v.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	v.SetDefault("SPREADSHEET_NAME_FORMAT", "%s Ads (Auto)")
	v.SetDefault("WORKSHEET_TITLE", "Meta (Raw)")
	v.SetDefault("SHEETS_MAX_RETRIES", 3)
	v.SetDefault("CSV_OUTPUT_DIR", "output")

	v.SetDefault("SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	v.SetDefault("SYNC_ENABLED", false)
	v.SetDefault("SYNC_MAX_CONCURRENT_JOBS", 0) // 0 = uma goroutine por conta

	v.SetDefault("AUTH_SECRET", "")
	v.SetDefault("SENTRY_DSN", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: erro ao decodificar configuração: %w", err)
	}

	applyLegacyEnv(config)

	config.Meta.AccountIDs = normalizeAccountIDs(config.Meta.AccountIDs)
	config.Meta.BaseURL = strings.TrimSuffix(config.Meta.BaseURL, "/")
	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	if config.Database.Enabled() {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate falha cedo quando faltam credenciais ou contas
func Validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config: configuração inválida: %w", err)
	}

	if config.App.RunMode == RunModeServer && config.Auth.Secret == "" {
		return fmt.Errorf("config: configuração inválida: AUTH_SECRET é obrigatório com RUN_MODE=%s", RunModeServer)
	}

	return nil
}

// applyLegacyEnv aceita as variáveis usadas pelo script antigo (fb_access_token, account_id_N)
func applyLegacyEnv(config *Config) {
	if config.Meta.AccessToken == "" {
		config.Meta.AccessToken = os.Getenv("fb_access_token")
	}

	if len(config.Meta.AccountIDs) > 0 {
		return
	}

	for i := 1; ; i++ {
		accountID, ok := os.LookupEnv(fmt.Sprintf("account_id_%d", i))
		if !ok {
			break
		}
		config.Meta.AccountIDs = append(config.Meta.AccountIDs, accountID)
	}
}

func normalizeAccountIDs(accountIDs []string) []string {
	return lo.FilterMap(accountIDs, func(id string, _ int) (string, bool) {
		id = strings.TrimPrefix(strings.TrimSpace(id), "act_")
		return id, id != ""
	})
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
