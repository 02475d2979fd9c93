package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	Port string `envconfig:"PORT" default:"8080"`
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"storefront"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHrs int    `envconfig:"JWT_EXPIRE_HRS" default:"72"`
	// Uploads
	UploadDir string `envconfig:"UPLOAD_DIR" default:"./uploads"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// DSN returns the Postgres connection string, preferring DATABASE_URL.
func (c App) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
