package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env             string `yaml:"env" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	EscrowDB        `yaml:"escrow_db"`
	Redis           `yaml:"redis"`
	LogConfig       `yaml:"log_config"`
	Auth            `yaml:"auth"`
	WalletService   `yaml:"wallet-service"`
	NotifierService `yaml:"notifier-service"`
	KafkaService    `yaml:"kafka-service"`
	Escrow          `yaml:"escrow"`
	Migrations      `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type EscrowDB struct {
	Dsn string `yaml:"dsn" env:"ESCROW_DB_DSN"`
}

type Redis struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

type WalletService struct {
	BaseURL string `yaml:"base_url"`
}

type NotifierService struct {
	BaseURL string `yaml:"base_url"`
}

type KafkaService struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	OrderTopic    string `yaml:"order_topic" env-default:"escrow.orders"`
	DisputeTopic  string `yaml:"dispute_topic" env-default:"escrow.disputes"`
	PaymentTopic  string `yaml:"payment_topic" env-default:"payments.confirmed"`
	ConsumerGroup string `yaml:"consumer_group" env-default:"escrow-service"`
}

// Escrow holds the money rules. FeeRate is a fraction of the gross amount,
// ReleaseWindow counts from shipping towards auto release, PaymentTTL and
// PendingTTL bound how long an order may sit unpaid and unaccepted.
type Escrow struct {
	FeeRate            float64       `yaml:"fee_rate" env-default:"0.05"`
	ReleaseWindow      time.Duration `yaml:"release_window" env-default:"168h"`
	PaymentTTL         time.Duration `yaml:"payment_ttl" env-default:"1h"`
	PendingTTL         time.Duration `yaml:"pending_ttl" env-default:"72h"`
	ReleaseSweepEvery  time.Duration `yaml:"release_sweep_interval" env-default:"1m"`
	ExpireSweepEvery   time.Duration `yaml:"expire_sweep_interval" env-default:"1m"`
	StorefrontCacheTTL time.Duration `yaml:"storefront_cache_ttl" env-default:"30s"`
}

type Migrations struct {
	Path string `yaml:"path" env-default:"migrations"`
}

func MustLoad() *EscrowConfig {
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
