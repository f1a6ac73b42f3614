package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type (
	// DB holds the datasource settings of the generated client.
	DB struct {
		Driver          string
		URL             string
		Host            string
		Port            int
		User            string
		Password        string
		Name            string
		SSLMode         string
		Replicas        []string
		MaxOpenConns    int
		ConnMaxLifetime time.Duration
		LogLevel        string
	}
	// Gen holds the output locations of the orm generator.
	Gen struct {
		OutPath      string
		ModelPkgPath string
	}
	Config struct {
		DB  DB
		Gen Gen
	}
)

// New loads .env when present and reads the environment.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// DB
	cfg.DB.Driver = strings.ToLower(getEnv("DB_DRIVER", "mysql"))
	cfg.DB.URL = getEnv("DATABASE_URL", "")
	cfg.DB.Host = getEnv("DB_HOST", "127.0.0.1")
	cfg.DB.Port = getInt("DB_PORT", defaultPort(cfg.DB.Driver))
	cfg.DB.User = getEnv("DB_USER", "root")
	cfg.DB.Password = getEnv("DB_PASSWORD", "root")
	cfg.DB.Name = getEnv("DB_NAME", "amg")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.Replicas = getList("DB_REPLICA_URLS")
	cfg.DB.MaxOpenConns = getInt("DB_MAX_OPEN_CONNS", 4)
	cfg.DB.ConnMaxLifetime = getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	cfg.DB.LogLevel = strings.ToLower(getEnv("DB_LOG_LEVEL", "warn"))

	// Generator
	cfg.Gen.OutPath = getEnv("GEN_OUT_PATH", "./db/dao")
	cfg.Gen.ModelPkgPath = getEnv("GEN_MODEL_PKG", "model")

	return cfg
}

// DSN returns DATABASE_URL when set, otherwise a DSN assembled from the
// individual parts in the format the driver expects.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	switch d.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Name,
			d.SSLMode,
		)
	case "sqlite":
		return d.Name + ".db"
	default:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&loc=Local&parseTime=True",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Name,
		)
	}
}

func defaultPort(driver string) int {
	if strings.ToLower(strings.TrimSpace(driver)) == "postgres" {
		return 5432
	}
	return 3306
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
