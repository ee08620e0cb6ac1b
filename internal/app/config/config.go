package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost    string
	ServicePort    int
	AllowedOrigins []string
	JWT            JWTConfig
	Redis          RedisConfig
	CMS            CMSConfig
	Payment        PaymentConfig
	Mail           MailConfig
	Minio          MinioConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// CMSConfig — параметры внешнего CMS (Builder.io-подобный сервис контента)
type CMSConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// PaymentConfig — параметры платежного сервиса (создание checkout-сессий)
type PaymentConfig struct {
	BaseURL     string
	SecretKey   string
	CheckoutURL string // база ссылки оплаты депозита по квоте
	Timeout     time.Duration
}

// MailConfig — параметры почтового сервиса (доставка magic-link)
type MailConfig struct {
	BaseURL   string
	APIKey    string
	FromEmail string
	PortalURL string // база ссылки входа в портал
	Timeout   time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envJWTSecret     = "JWT_SECRET"
	envCMSAPIKey     = "CMS_API_KEY"
	envPaymentSecret = "PAYMENT_SECRET_KEY"
	envMailAPIKey    = "MAIL_API_KEY"
	envMinioAccess   = "MINIO_ACCESS_KEY"
	envMinioSecret   = "MINIO_SECRET_KEY"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// секреты только из env, не из toml
	cfg.JWT = JWTConfig{
		Token:         os.Getenv(envJWTSecret),
		ExpiresIn:     24 * time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}
	if cfg.JWT.Token == "" {
		cfg.JWT.Token = "dev-secret" // локальная разработка без .env
	}

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	cfg.CMS.APIKey = os.Getenv(envCMSAPIKey)
	if cfg.CMS.Timeout == 0 {
		cfg.CMS.Timeout = 5 * time.Second
	}

	cfg.Payment.SecretKey = os.Getenv(envPaymentSecret)
	if cfg.Payment.Timeout == 0 {
		cfg.Payment.Timeout = 5 * time.Second
	}

	cfg.Mail.APIKey = os.Getenv(envMailAPIKey)
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = 5 * time.Second
	}

	cfg.Minio.AccessKey = os.Getenv(envMinioAccess)
	cfg.Minio.SecretKey = os.Getenv(envMinioSecret)

	log.Info("config parsed")

	return cfg, nil
}
