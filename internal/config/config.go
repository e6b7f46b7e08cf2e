package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type (
	// Config holds every runtime option the server reads from the
	// environment. A .env file is honored when present.
	Config struct {
		Port    string `env:"PORT" envDefault:"8080"`
		GinMode string `env:"GIN_MODE" envDefault:"debug"`

		Mongo      MongoConfig      `envPrefix:"MONGODB_"`
		Gemini     GeminiConfig     `envPrefix:"GEMINI_"`
		Cloudinary CloudinaryConfig `envPrefix:"CLOUDINARY_"`
		S3         S3Config         `envPrefix:"S3_"`
		Auth       AuthConfig       `envPrefix:""`

		// ImageStore selects the media-hosting backend: "cloudinary"
		// or "minio".
		ImageStore   string `env:"IMAGE_STORE" envDefault:"cloudinary"`
		UploadFolder string `env:"UPLOAD_FOLDER" envDefault:"ai_images"`
	}

	MongoConfig struct {
		URL      string `env:"URL" envDefault:"mongodb://127.0.0.1:27017"`
		Database string `env:"DATABASE" envDefault:"dreamwall"`
	}

	GeminiConfig struct {
		APIKey string `env:"API_KEY"`
		Model  string `env:"MODEL" envDefault:"gemini-2.0-flash-preview-image-generation"`
	}

	CloudinaryConfig struct {
		CloudName string `env:"CLOUD_NAME"`
		APIKey    string `env:"API_KEY"`
		APISecret string `env:"API_SECRET"`
	}

	S3Config struct {
		Host      string `env:"HOST" envDefault:"127.0.0.1:9000"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"dreamwall"`
		PublicURL string `env:"PUBLIC_URL"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	}

	AuthConfig struct {
		JWTSecret string        `env:"JWT_SECRET"`
		TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	}
)

// Load reads configuration from the environment, loading a local .env file
// first when one exists.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config error: %w", err)
	}

	if cfg.Mongo.URL == "" {
		return nil, fmt.Errorf("MONGODB_URL is required")
	}
	switch cfg.ImageStore {
	case "cloudinary", "minio":
	default:
		return nil, fmt.Errorf("unknown IMAGE_STORE %q", cfg.ImageStore)
	}

	return cfg, nil
}
