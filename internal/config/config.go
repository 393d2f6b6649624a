package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Integration modes for the payment and production gateways
const (
	IntegrationHTTP      = "http"
	IntegrationMessaging = "messaging"
)

type Config struct {
	Port     int
	LogLevel string
	Env      string

	DB          DBConfig
	Kafka       KafkaConfig
	Integration IntegrationConfig
	WhatsApp    WhatsAppConfig
	Outbox      OutboxConfig
}

// DBConfig holds the database configuration
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// KafkaConfig holds broker addresses and the topics the service uses
type KafkaConfig struct {
	Enabled          bool
	Brokers          []string
	OrdersTopic      string
	PaymentsTopic    string
	ProductionsTopic string
	ConsumerGroup    string
}

// IntegrationConfig selects how payment and production requests leave the service
type IntegrationConfig struct {
	Mode              string
	PaymentBaseURL    string
	ProductionBaseURL string
	PaymentBroker     string
}

type WhatsAppConfig struct {
	BaseURL string
	Token   string
}

type OutboxConfig struct {
	Enabled      bool
	PollInterval time.Duration
	BatchSize    int
	MaxRetries   int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "fastfood")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_ORDERS_TOPIC", "orders")
	v.SetDefault("KAFKA_PAYMENTS_TOPIC", "payments")
	v.SetDefault("KAFKA_PRODUCTIONS_TOPIC", "productions")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "fastfood-orders")

	v.SetDefault("INTEGRATION_MODE", IntegrationHTTP)
	v.SetDefault("API_PAYMENT_BASEURL", "http://localhost:8081")
	v.SetDefault("API_PRODUCTION_BASEURL", "http://localhost:8082")
	v.SetDefault("PAYMENT_BROKER", "fake")

	v.SetDefault("WHATSAPP_BASEURL", "")
	v.SetDefault("WHATSAPP_TOKEN", "")

	v.SetDefault("OUTBOX_ENABLED", false)
	v.SetDefault("OUTBOX_POLL_INTERVAL", "5s")
	v.SetDefault("OUTBOX_BATCH_SIZE", 10)
	v.SetDefault("OUTBOX_MAX_RETRIES", 5)
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	port := v.GetInt("PORT")

	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", v.GetString("PORT"))
	}

	dbPort := v.GetInt("DB_PORT")

	if dbPort <= 0 {
		return nil, fmt.Errorf("invalid DB_PORT: %q", v.GetString("DB_PORT"))
	}

	mode := strings.ToLower(v.GetString("INTEGRATION_MODE"))

	if mode != IntegrationHTTP && mode != IntegrationMessaging {
		return nil, fmt.Errorf("invalid INTEGRATION_MODE: %q", mode)
	}

	pollInterval, err := time.ParseDuration(v.GetString("OUTBOX_POLL_INTERVAL"))

	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_INTERVAL: %w", err)
	}

	cfg := &Config{
		Port:     port,
		LogLevel: v.GetString("LOG_LEVEL"),
		Env:      v.GetString("APP_ENV"),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     dbPort,
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kafka: KafkaConfig{
			Enabled:          v.GetBool("KAFKA_ENABLED"),
			Brokers:          splitList(v.GetString("KAFKA_BROKERS")),
			OrdersTopic:      v.GetString("KAFKA_ORDERS_TOPIC"),
			PaymentsTopic:    v.GetString("KAFKA_PAYMENTS_TOPIC"),
			ProductionsTopic: v.GetString("KAFKA_PRODUCTIONS_TOPIC"),
			ConsumerGroup:    v.GetString("KAFKA_CONSUMER_GROUP"),
		},
		Integration: IntegrationConfig{
			Mode:              mode,
			PaymentBaseURL:    strings.TrimRight(v.GetString("API_PAYMENT_BASEURL"), "/"),
			ProductionBaseURL: strings.TrimRight(v.GetString("API_PRODUCTION_BASEURL"), "/"),
			PaymentBroker:     v.GetString("PAYMENT_BROKER"),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL: strings.TrimRight(v.GetString("WHATSAPP_BASEURL"), "/"),
			Token:   v.GetString("WHATSAPP_TOKEN"),
		},
		Outbox: OutboxConfig{
			Enabled:      v.GetBool("OUTBOX_ENABLED"),
			PollInterval: pollInterval,
			BatchSize:    v.GetInt("OUTBOX_BATCH_SIZE"),
			MaxRetries:   v.GetInt("OUTBOX_MAX_RETRIES"),
		},
	}

	if mode == IntegrationMessaging && !cfg.Kafka.Enabled {
		return nil, fmt.Errorf("INTEGRATION_MODE=messaging requires KAFKA_ENABLED=true")
	}

	if cfg.Outbox.Enabled && !cfg.Kafka.Enabled {
		return nil, fmt.Errorf("OUTBOX_ENABLED=true requires KAFKA_ENABLED=true")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// GetDBConnString returns the database connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode)
}
