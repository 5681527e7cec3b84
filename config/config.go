package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Fees     FeesConfig     `yaml:"fees"`
	Cache    CacheConfig    `yaml:"cache"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// PricingConfig holds the urgency step function applied on top of the
// per-class multipliers. Brackets must be listed with ascending
// max_days_before; the base multiplier applies beyond the last bracket.
type PricingConfig struct {
	BaseMultiplier float64         `yaml:"base_multiplier"`
	Brackets       []BracketConfig `yaml:"brackets"`
}

type BracketConfig struct {
	MaxDaysBefore int     `yaml:"max_days_before"`
	Value         float64 `yaml:"value"`
}

// FeesConfig holds the cancellation and rebook penalty percentages, both
// step functions of days until departure.
type FeesConfig struct {
	CancellationBrackets  []BracketConfig `yaml:"cancellation_brackets"`
	CancellationBase      float64         `yaml:"cancellation_base"`
	RebookPenaltyBrackets []BracketConfig `yaml:"rebook_penalty_brackets"`
	RebookPenaltyBase     float64         `yaml:"rebook_penalty_base"`
}

type CacheConfig struct {
	FlightsTTLSeconds int `yaml:"flights_ttl_seconds"`
}

type WorkerConfig struct {
	ArchiveSweepMinutes int `yaml:"archive_sweep_minutes"`
	ArchiveAfterDays    int `yaml:"archive_after_days"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
