package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Mail  MailConfig
}

type AppConfig struct {
	Port string
	Env  string
	URL  string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MigrationsPath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// MailConfig configures the outbound mail provider API.
// Delivery is skipped entirely when APIKey is empty.
type MailConfig struct {
	BaseURL   string
	APIKey    string
	FromEmail string
	FromName  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	migrationsPath := viper.GetString("DB_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
			URL:  viper.GetString("APP_URL"),
		},
		DB: DBConfig{
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Name:           viper.GetString("DB_NAME"),
			MigrationsPath: migrationsPath,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Mail: MailConfig{
			BaseURL:   viper.GetString("MAIL_API_URL"),
			APIKey:    viper.GetString("MAIL_API_KEY"),
			FromEmail: viper.GetString("MAIL_FROM_EMAIL"),
			FromName:  viper.GetString("MAIL_FROM_NAME"),
		},
	}

	return config, nil
}
