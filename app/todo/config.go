package todo

import (
	"time"

	"github.com/dmitrymomot/waypoint/core/config"
	"github.com/dmitrymomot/waypoint/core/server"
	"github.com/dmitrymomot/waypoint/integration/database/redis"
	"github.com/dmitrymomot/waypoint/pkg/ratelimiter"
)

type Config struct {
	Server    server.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config

	AppName   string `env:"APP_NAME" envDefault:"todo"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"shhhhh"`
	TokenTTL  time.Duration `env:"JWT_TOKEN_TTL" envDefault:"24h"`

	// Login accepts any caller unless AuthPasswordHash (bcrypt) is set.
	AuthUsername     string `env:"AUTH_USERNAME" envDefault:"admin"`
	AuthPasswordHash string `env:"AUTH_PASSWORD_HASH"`

	MaxBodyBytes int64    `env:"MAX_BODY_BYTES" envDefault:"4194304"`
	CORSOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
