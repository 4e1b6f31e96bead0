package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
		// Base URL of the portal, used to build completion links in emails.
		PortalURL string `yaml:"portal_url"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`      // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"` // for local storage
		BaseURL    string `yaml:"base_url"`  // public URL base
		Bucket     string `yaml:"bucket"`
		Region     string `yaml:"region"`
		AccessKey  string `yaml:"access_key"`
		SecretKey  string `yaml:"secret_key"`
		Endpoint   string `yaml:"endpoint"` // for R2 or custom S3
		UseSSL     bool   `yaml:"use_ssl"`
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // bytes
		AllowedTypes []string `yaml:"allowed_types"` // MIME types
	} `yaml:"upload"`

	ViaCEP struct {
		BaseURL   string `yaml:"base_url"`
		TimeoutMS int    `yaml:"timeout_ms"`
	} `yaml:"viacep"`

	// Seed is only consulted when the admin-user table is empty.
	Seed struct {
		MasterNome  string `yaml:"master_nome"`
		MasterEmail string `yaml:"master_email"`
		MasterSenha string `yaml:"master_senha"`
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml, or builds the config from
// environment variables when DATABASE_URL is set (test mode).
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

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

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "teste@contratandoplanos.com.br"
	cfg.Email.FromName = "Contratando Planos"
	cfg.Email.PortalURL = "http://localhost:3000"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/webp", "application/pdf",
		}
	}
	if cfg.ViaCEP.BaseURL == "" {
		cfg.ViaCEP.BaseURL = "https://viacep.com.br"
	}
	if cfg.ViaCEP.TimeoutMS == 0 {
		cfg.ViaCEP.TimeoutMS = 5000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 480
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
