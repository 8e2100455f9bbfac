package config

import (
	"log"
	"os"
	"strconv"

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
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Admin struct {
		Email    string `yaml:"email"`    // первый админ, создается при старте
		Password string `yaml:"password"` // только для первого запуска
	} `yaml:"admin"`

	Codes struct {
		TTLDays       int `yaml:"ttl_days"`       // срок жизни кода отзыва
		DefaultBatch  int `yaml:"default_batch"`  // сколько кодов выдаем, если count не указан
		MaxBatch      int `yaml:"max_batch"`      // верхняя граница clamp
		SweepInterval int `yaml:"sweep_interval"` // интервал фоновой очистки, часы
	} `yaml:"codes"`

	Email struct {
		SMTPHost     string   `yaml:"smtp_host"`
		SMTPPort     int      `yaml:"smtp_port"`
		SMTPUsername string   `yaml:"smtp_user"`
		SMTPPassword string   `yaml:"smtp_password"`
		FromEmail    string   `yaml:"from_email"`
		FromName     string   `yaml:"from_name"`
		UseTLS       bool     `yaml:"use_tls"`
		TemplatesDir string   `yaml:"templates_dir"`
		ModeratorsTo []string `yaml:"moderators_to"` // кому слать уведомления о новых отзывах
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`   // For local storage
		BaseURL    string `yaml:"base_url"`    // Public URL base
		Bucket     string `yaml:"bucket"`      // For S3/R2
		Region     string `yaml:"region"`      // For S3
		AccessKey  string `yaml:"access_key"`  // For S3/R2
		SecretKey  string `yaml:"secret_key"`  // For S3/R2
		Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
		UseSSL     bool   `yaml:"use_ssl"`     // For S3/R2
		PublicRead bool   `yaml:"public_read"` // Make files public
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // максимальный размер фото в байтах
		AllowedTypes []string `yaml:"allowed_types"` // разрешенные MIME типы
	} `yaml:"upload"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if dbURL == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

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

		applyCodeDefaults(&cfg)
		applyUploadDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения (режим теста)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "test@tarokatalog.ru"
	cfg.Email.TemplatesDir = "templates"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"

	applyCodeDefaults(&cfg)
	applyUploadDefaults(&cfg)
	AppConfig = &cfg
}

// applyCodeDefaults подставляет дефолты протокола кодов отзывов.
// Границы clamp [1, max_batch] и срок 90 дней — контракт продукта,
// меняются только осознанно через конфиг.
func applyCodeDefaults(cfg *Config) {
	if cfg.Codes.TTLDays <= 0 {
		cfg.Codes.TTLDays = 90
	}
	if cfg.Codes.DefaultBatch <= 0 {
		cfg.Codes.DefaultBatch = 10
	}
	if cfg.Codes.MaxBatch <= 0 {
		cfg.Codes.MaxBatch = 50
	}
	if cfg.Codes.SweepInterval <= 0 {
		cfg.Codes.SweepInterval = 6
	}
}

func applyUploadDefaults(cfg *Config) {
	if cfg.Upload.MaxSize <= 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/webp",
		}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
