package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/cache"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Circulation holds the loan and fine policy knobs.
type Circulation struct {
	LoanDays    int             `envconfig:"LOAN_DAYS" default:"14"`
	RenewDays   int             `envconfig:"RENEW_DAYS" default:"14"`
	FineRate    decimal.Decimal `envconfig:"FINE_RATE" default:"0.50"`
	MaxFine     decimal.Decimal `envconfig:"MAX_FINE" default:"50.00"`
	GraceDays   int             `envconfig:"GRACE_DAYS" default:"0"`
	MaxRenewals int             `envconfig:"MAX_RENEWALS" default:"0"`
}

type OpenLibrary struct {
	BaseURL string        `envconfig:"OPENLIBRARY_URL" default:"https://openlibrary.org"`
	Timeout time.Duration `envconfig:"OPENLIBRARY_TIMEOUT" default:"10s"`
}

type Scheduler struct {
	SweepSpec string `envconfig:"SWEEP_CRON" default:"@every 1h"`
}

type Config struct {
	Server      HTTPServer  `yaml:"server"`
	Database    postgres.DB `yaml:"db"`
	Kafka       kafka.Config
	Redis       cache.Config
	Auth        auth.Config
	Circulation Circulation
	OpenLibrary OpenLibrary
	Scheduler   Scheduler
	Log         logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	c := *cfg
	c.Database.Password = "***"
	c.Redis.Password = "***"
	c.Auth.JWTSecret = "***"
	jscfg, _ := json.MarshalIndent(c, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
