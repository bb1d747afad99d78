package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	RemoteDB RemoteDBConfig
	Local    LocalConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port string
}

// RemoteDBConfig points at the hosted Postgres service. Remote mode is
// active only when both Host and Password are provided; otherwise the site
// runs on the local file/SQLite backend.
type RemoteDBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// LocalConfig holds the local-mode storage paths.
type LocalConfig struct {
	MenuDataPath   string
	BookingsDBPath string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Brokers     []string
	TopicPrefix string
}

func Load() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("REMOTE_DB_PORT", "5432"))

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		RemoteDB: RemoteDBConfig{
			Host:     os.Getenv("REMOTE_DB_HOST"),
			Port:     port,
			User:     getEnv("REMOTE_DB_USER", "postgres"),
			Password: os.Getenv("REMOTE_DB_PASSWORD"),
			Database: getEnv("REMOTE_DB_NAME", "restaurant"),
			SSLMode:  getEnv("REMOTE_DB_SSLMODE", "require"),
		},
		Local: LocalConfig{
			MenuDataPath:   getEnv("MENU_DATA_PATH", "menu_data.json"),
			BookingsDBPath: getEnv("BOOKINGS_DB_PATH", "bookings.sqlite3"),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Brokers:     brokers,
			TopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", "restaurant"),
		},
	}
}

// RemoteEnabled reports whether the hosted backend is configured. Both
// values must be present; absence of either selects local mode.
func (c *Config) RemoteEnabled() bool {
	return c.RemoteDB.Host != "" && c.RemoteDB.Password != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
