package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Mock     MockConfig
	Snapshot SnapshotConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // debug, info, warn, error
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

// MockConfig tamaños del dataset sintético y latencias artificiales por clase
// de operación. Las latencias por defecto son 0 (desarrollo local y tests).
type MockConfig struct {
	Customers int
	Contracts int
	Seed      int64 // 0 = derivada del reloj

	DatabaseDelay    time.Duration
	ExternalAPIDelay time.Duration // reservada para simular llamadas a APIs externas
	HeavyDelay       time.Duration // reservada para simular cómputo pesado
}

// SnapshotConfig destino del snapshot JSON del dataset.
type SnapshotConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, MOCK_CUSTOMERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "voltia-agent"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Mock: MockConfig{
			Customers:        getInt(v, "MOCK_CUSTOMERS", 1000),
			Contracts:        getInt(v, "MOCK_CONTRACTS", 2000),
			Seed:             int64(getInt(v, "MOCK_SEED", 0)),
			DatabaseDelay:    time.Duration(getInt(v, "MOCK_DELAY_DATABASE_MS", 0)) * time.Millisecond,
			ExternalAPIDelay: time.Duration(getInt(v, "MOCK_DELAY_EXTERNAL_API_MS", 0)) * time.Millisecond,
			HeavyDelay:       time.Duration(getInt(v, "MOCK_DELAY_HEAVY_MS", 0)) * time.Millisecond,
		},
		Snapshot: SnapshotConfig{
			Dir: getString(v, "MOCK_SNAPSHOT_DIR", "mock_data_outputs"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
