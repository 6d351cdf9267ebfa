package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
// JWT_SECRET and STRIPE_SECRET_KEY have no defaults: starting without
// them is a configuration error, not something to discover on first use.
type Config struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	MongoURI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB         string        `env:"MONGO_DB" envDefault:"Auto-Motive"`
	JWTSecret       string        `env:"JWT_SECRET,required"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	StripeSecretKey string        `env:"STRIPE_SECRET_KEY,required"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	KafkaBroker     string        `env:"KAFKA_BROKER"`
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
