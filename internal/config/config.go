package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/annel0/blockreg/internal/cache"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации сервиса справочника блоков.
// Любой раздел можно опустить: геттеры подставят значения из env или умолчания.
type Config struct {
	Server    ServerConfig      `yaml:"server"`
	Logging   LoggingConfig     `yaml:"logging"`
	Telemetry TelemetryConfig   `yaml:"telemetry"`
	Lookup    LookupConfig      `yaml:"lookup"`
	Cache     cache.CacheConfig `yaml:"cache"`
}

type ServerConfig struct {
	RESTPort int `yaml:"rest_port"`
}

type LoggingConfig struct {
	Level     string `yaml:"level"`
	FileLevel string `yaml:"file_level"`
	Dir       string `yaml:"dir"`
	// File отключает файловый лог, если явно задан false
	File *bool `yaml:"file"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	Endpoint    string `yaml:"endpoint"`
}

type LookupConfig struct {
	// Fuzzy: значение по умолчанию для нечёткого поиска в /api/resolve
	Fuzzy bool `yaml:"fuzzy"`
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "BLOCKREG_REST_PORT", 8088)
}

// GetLevel возвращает уровень консольного лога
func (l *LoggingConfig) GetLevel() string {
	return getStringWithEnvFallback(l.Level, "BLOCKREG_LOG_LEVEL", "INFO")
}

// GetFileLevel возвращает уровень файлового лога
func (l *LoggingConfig) GetFileLevel() string {
	return getStringWithEnvFallback(l.FileLevel, "BLOCKREG_LOG_FILE_LEVEL", "DEBUG")
}

// GetDir возвращает каталог файлов логов
func (l *LoggingConfig) GetDir() string {
	return getStringWithEnvFallback(l.Dir, "BLOCKREG_LOG_DIR", "logs")
}

// FileEnabled сообщает, нужен ли файловый лог
func (l *LoggingConfig) FileEnabled() bool {
	return l.File == nil || *l.File
}

// GetServiceName возвращает имя сервиса для трассировки
func (t *TelemetryConfig) GetServiceName() string {
	return getStringWithEnvFallback(t.ServiceName, "OTEL_SERVICE_NAME", "blockreg")
}

// GetEndpoint возвращает адрес OTLP коллектора (host:port), пустая строка оставляет адрес экспортера по умолчанию
func (t *TelemetryConfig) GetEndpoint() string {
	return getStringWithEnvFallback(t.Endpoint, "BLOCKREG_OTLP_ENDPOINT", "")
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// getStringWithEnvFallback делает то же для строковых значений
func getStringWithEnvFallback(configVal, envVar, defaultVal string) string {
	if v := strings.TrimSpace(configVal); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v
	}
	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV BLOCKREG_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("BLOCKREG_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault как Load, но вместо nil возвращает пустую конфигурацию
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg, nil
}
