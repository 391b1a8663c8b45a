package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション設定を表す
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	Metrics MetricsConfig
}

// AppConfig は実行環境とログ設定
type AppConfig struct {
	Env      string
	LogLevel string
}

// StorageConfig はJSONファイルの保存先設定
type StorageConfig struct {
	DataDir          string
	HotelsFile       string
	CustomersFile    string
	ReservationsFile string
}

// RedisConfig は空室数キャッシュ用のRedis設定
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// MetricsConfig はメトリクス出力設定
type MetricsConfig struct {
	// TextfilePath が空の場合は出力しない
	TextfilePath string
}

// Load は環境変数から設定を読み込む
// カレントディレクトリに .env があれば先に読み込む（既存の環境変数は上書きしない）
func Load() *Config {
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFile は指定した .env ファイルを読み込んでから設定を構築する
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, err
	}
	return fromEnv(), nil
}

func fromEnv() *Config {
	return &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", ""),
		},
		Storage: StorageConfig{
			DataDir:          getEnv("DATA_DIR", "data"),
			HotelsFile:       getEnv("HOTELS_FILE", "hotels.json"),
			CustomersFile:    getEnv("CUSTOMERS_FILE", "customers.json"),
			ReservationsFile: getEnv("RESERVATIONS_FILE", "reservations.json"),
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			CacheTTL: getDurationEnv("CACHE_TTL", 30*time.Second),
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("METRICS_TEXTFILE", ""),
		},
	}
}

// HotelsPath はホテルファイルのパスを返す
func (c *StorageConfig) HotelsPath() string {
	return c.resolve(c.HotelsFile)
}

// CustomersPath は顧客ファイルのパスを返す
func (c *StorageConfig) CustomersPath() string {
	return c.resolve(c.CustomersFile)
}

// ReservationsPath は予約ファイルのパスを返す
func (c *StorageConfig) ReservationsPath() string {
	return c.resolve(c.ReservationsFile)
}

// 絶対パスはそのまま、相対パスは DataDir からの相対とする
func (c *StorageConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Addr はRedis接続アドレスを返す
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
