package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	DB    DBConfig
	HTTP  HTTPConfig
	Order OrderConfig
	Mail  MailConfig
	Timer TimerConfig
	Scan  ScanConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Profile  string // dev, prod, none: datos iniciales a sembrar
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	Migrate     bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// OrderConfig parámetros del pedido automático de artículos con poco stock.
type OrderConfig struct {
	QuantityLimit int
	CustomerName  string
	CustomerEmail string
	PDFEnabled    bool
	SavePath      string
	Separator     rune
}

// MailConfig credenciales SMTP.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// TimerConfig planificación del envío periódico del pedido.
type TimerConfig struct {
	Enabled bool
	Delay   time.Duration
	Period  time.Duration
}

// ScanConfig referencias usadas al crear un artículo desde un código de barras.
type ScanConfig struct {
	CategoryID int64
	CurrencyID int64
	StatusID   int64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, ORDER_QUANTITY_LIMIT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	sep := getString(v, "CSV_FILE_SEPARATOR", ";")
	if len([]rune(sep)) != 1 {
		return nil, fmt.Errorf("CSV_FILE_SEPARATOR debe ser un solo carácter: %q", sep)
	}

	delay, err := getDuration(v, "MAIL_TIMER_DELAY", time.Minute)
	if err != nil {
		return nil, err
	}
	period, err := getDuration(v, "MAIL_TIMER_PERIOD", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	if period <= 0 {
		return nil, fmt.Errorf("MAIL_TIMER_PERIOD debe ser positivo")
	}

	profile := strings.ToLower(getString(v, "APP_PROFILE", "dev"))
	switch profile {
	case "dev", "prod", "none":
	default:
		return nil, fmt.Errorf("APP_PROFILE desconocido: %q", profile)
	}

	driver := strings.ToLower(getString(v, "DB_DRIVER", "postgres"))
	if driver != "postgres" && driver != "memory" {
		return nil, fmt.Errorf("DB_DRIVER desconocido: %q", driver)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "warehouse-zhaw"),
			Profile:  profile,
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      driver,
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "warehouse"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			Migrate:     getBool(v, "DB_MIGRATE", true),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 10),
		},
		Order: OrderConfig{
			QuantityLimit: getInt(v, "ORDER_QUANTITY_LIMIT", 250),
			CustomerName:  getString(v, "ORDER_CUSTOMER_NAME", ""),
			CustomerEmail: getString(v, "ORDER_CUSTOMER_EMAIL", ""),
			PDFEnabled:    getBool(v, "ORDER_PDF_ENABLED", false),
			SavePath:      getString(v, "CSV_SAVE_PATH", "./orders"),
			Separator:     []rune(sep)[0],
		},
		Mail: MailConfig{
			Host:     getString(v, "MAIL_HOST", "localhost"),
			Port:     getInt(v, "MAIL_PORT", 587),
			Username: getString(v, "MAIL_USERNAME", ""),
			Password: getString(v, "MAIL_PASSWORD", ""),
			From:     getString(v, "MAIL_FROM", ""),
		},
		Timer: TimerConfig{
			Enabled: getBool(v, "MAIL_TIMER_ENABLED", true),
			Delay:   delay,
			Period:  period,
		},
		Scan: ScanConfig{
			CategoryID: int64(getInt(v, "SCAN_DEFAULT_CATEGORY_ID", 1)),
			CurrencyID: int64(getInt(v, "SCAN_DEFAULT_CURRENCY_ID", 1)),
			StatusID:   int64(getInt(v, "SCAN_DEFAULT_STATUS_ID", 1)),
		},
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

// getDuration acepta duraciones Go ("90s", "24h") o enteros en milisegundos.
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return d, nil
}
