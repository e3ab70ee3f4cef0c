package database

import (
	"errors"
	"net/url"
	"os"
)

// ErrIncompleteConfig — не заданы обязательные параметры подключения
var ErrIncompleteConfig = errors.New("DB config incomplete: DB_USER/DB_HOST/DB_PORT/DB_NAME must be set")

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
}

func NewDBConfigFromEnv() DBConfig {
	return DBConfig{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		DBName:   os.Getenv("DB_NAME"),
	}
}

// Validate проверяет, что заданы все поля кроме пароля
func (c DBConfig) Validate() error {
	if c.User == "" || c.Host == "" || c.Port == "" || c.DBName == "" {
		return ErrIncompleteConfig
	}
	return nil
}

// TargetDSN создаёт корректный DSN (URL encoded)
func (c DBConfig) TargetDSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.DBName,
	}
	// sslmode=disable для локальной разработки
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}
