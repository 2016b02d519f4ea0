package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Fuentes de instantáneas.
const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	HTTP   HTTPConfig
	Report ReportConfig
	DB     DBConfig
	JWT    JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReportConfig origen y parámetros de las instantáneas del reporte.
type ReportConfig struct {
	Source  string // embedded | postgres
	Default string // nombre del reporte servido por defecto
	TopN    int    // longitud del ranking por categoría
}

// DBConfig configuración de PostgreSQL (solo con REPORT_SOURCE=postgres y dashctl seed).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el DSN construido.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// JWTConfig tokens de visualización. Secret vacío = API pública.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si la API exige Bearer Token.
func (c JWTConfig) Enabled() bool { return c.Secret != "" }

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad. El puerto se toma de PORT (convención de PaaS)
// y HTTP_PORT se acepta como alias.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var errs []error
	getInt := func(key string, def int) int {
		n, err := parseInt(v, key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return n
	}

	port := getInt("HTTP_PORT", 8080)
	if v.IsSet("PORT") {
		port = getInt("PORT", port)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "wallet-dashboard"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
		Report: ReportConfig{
			Source:  strings.ToLower(getString(v, "REPORT_SOURCE", SourceEmbedded)),
			Default: getString(v, "REPORT_DEFAULT", "annual-2024"),
			TopN:    getInt("REPORT_TOP_N", 5),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt("DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "wallet_dashboard"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt("JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "wallet-dashboard"),
		},
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: puerto inválido %d", c.HTTP.Port)
	}
	switch c.Report.Source {
	case SourceEmbedded, SourcePostgres:
	default:
		return fmt.Errorf("config: REPORT_SOURCE inválido %q (embedded|postgres)", c.Report.Source)
	}
	if c.Report.TopN < 0 {
		return fmt.Errorf("config: REPORT_TOP_N negativo %d", c.Report.TopN)
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo, recibido %d", c.JWT.Expiration)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// parseInt lee un entero; un valor no numérico es un error que nombra la clave.
func parseInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		raw := strings.TrimSpace(v.GetString(key))
		n, err := strconv.Atoi(raw)
		if err != nil {
			return def, fmt.Errorf("config: %s no es un entero válido: %q", key, raw)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}
