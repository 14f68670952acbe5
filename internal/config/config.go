package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every setting the service reads from the environment.
// It is loaded once in main and passed to constructors; nothing else
// in the codebase calls os.Getenv.
type Config struct {
	Port   string `envconfig:"PORT" default:"8000"`
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	// Catalog document store. Empty MongoURI means the built-in
	// sample menu is served instead.
	MongoURI      string `envconfig:"MONGO_URI"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"rincon-de-lore"`

	// Order archive. Empty means orders are kept in memory only.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Hosted model. Empty GeminiAPIKey disables the chat endpoints.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	// ChatFlow selects the system-instruction variant:
	// "three-phase" (default) collects delivery details in chat,
	// "single" only takes the food order.
	ChatFlow string `envconfig:"CHAT_FLOW" default:"three-phase"`

	// Digits-only number the WhatsApp handoff link points at.
	RestaurantPhone string `envconfig:"RESTAURANT_PHONE" default:"5213148721913"`

	// Admin back office. All three must be set for the admin routes
	// to be mounted.
	JWTSecret         string `envconfig:"JWT_SECRET"`
	AdminEmail        string `envconfig:"ADMIN_EMAIL"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`

	// Dish image storage (Cloudflare R2, S3 API).
	R2Endpoint      string `envconfig:"R2_ENDPOINT"`
	R2AccessKey     string `envconfig:"R2_ACCESS_KEY"`
	R2SecretKey     string `envconfig:"R2_SECRET_KEY"`
	R2Bucket        string `envconfig:"R2_BUCKET_NAME"`
	R2PublicBaseURL string `envconfig:"R2_PUBLIC_BASE_URL"`
}

func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HasAdmin reports whether the admin back office can be enabled.
func (c Config) HasAdmin() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

// HasStorage reports whether dish image uploads can be enabled.
func (c Config) HasStorage() bool {
	return c.R2Endpoint != "" && c.R2AccessKey != "" && c.R2SecretKey != "" && c.R2Bucket != ""
}
