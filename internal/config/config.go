package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	DSN string `yaml:"url"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	TTL    int    `yaml:"ttl"` // minutes
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
}

type ExchangeConfig struct {
	APIURL       string  `yaml:"api_url"`
	TTLMinutes   int     `yaml:"ttl_minutes"`
	FallbackRate float64 `yaml:"fallback_rate"` // COP per USD
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Email    EmailConfig    `yaml:"email"`
	Exchange ExchangeConfig `yaml:"exchange"`

	// AdminEmails are promoted to role=admin during seeding
	// (matched case-insensitively).
	AdminEmails []string `yaml:"admin_emails"`
}

var AppConfig *Config

// LoadConfig reads config.yaml unless DATABASE_URL is set, in which
// case everything comes from environment variables (test/deploy mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		cfg.applyDefaults()
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	if admins := os.Getenv("ADMIN_EMAILS"); admins != "" {
		for _, email := range strings.Split(admins, ",") {
			if email = strings.TrimSpace(email); email != "" {
				cfg.AdminEmails = append(cfg.AdminEmails, email)
			}
		}
	}

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")
	cfg.Email.FromName = "Chamba"

	cfg.applyDefaults()
	AppConfig = &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.JWT.TTL == 0 {
		c.JWT.TTL = 60
	}
	if c.Exchange.APIURL == "" {
		c.Exchange.APIURL = "https://open.er-api.com/v6/latest/USD"
	}
	if c.Exchange.TTLMinutes == 0 {
		c.Exchange.TTLMinutes = 60
	}
	if c.Exchange.FallbackRate == 0 {
		c.Exchange.FallbackRate = 4200 // approximate COP per USD
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
