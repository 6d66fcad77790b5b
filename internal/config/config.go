package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds booking-service configuration, loaded from the environment
// (.env if present).
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	AppHost  string `env:"APP_HOST" envDefault:"0.0.0.0"`
	HTTPPort string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Operator identity stamped on created sessions.
	TherapistName string `env:"THERAPIST_NAME" envDefault:"Dr. Emily Chen"`

	// Yield engine rates (whole rupees) and split.
	GroupRate      int64   `env:"GROUP_RATE" envDefault:"499"`
	VRRate         int64   `env:"VR_RATE" envDefault:"2499"`
	IndividualRate int64   `env:"INDIVIDUAL_RATE" envDefault:"1499"`
	PayoutFraction float64 `env:"PAYOUT_FRACTION" envDefault:"0.6"`

	// Countdown engine.
	TickInterval     time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	JoinConfirmDelay time.Duration `env:"JOIN_CONFIRM_DELAY" envDefault:"2s"`
	WaitlistInitial  int           `env:"WAITLIST_INITIAL" envDefault:"8"`
	WaitlistCap      int           `env:"WAITLIST_CAP" envDefault:"15"`
	WaitlistProb     float64       `env:"WAITLIST_PROB" envDefault:"0.2"`

	// Sessions.
	GroupCapacity  int `env:"GROUP_CAPACITY" envDefault:"15"`
	DropInMinutes  int `env:"DROPIN_DURATION_MINUTES" envDefault:"90"`
	QuickVRMinutes int `env:"QUICKVR_DURATION_MINUTES" envDefault:"45"`

	// WebSocket.
	WSReadBufferSize  int    `env:"WS_READ_BUFFER_SIZE" envDefault:"4096"`
	WSWriteBufferSize int    `env:"WS_WRITE_BUFFER_SIZE" envDefault:"4096"`
	WSBaseURL         string `env:"WS_BASE_URL"` // e.g. wss://portal.example.com

	// Seed one demo session on boot (the scheduling form's first entry).
	SeedDemo bool `env:"SEED_DEMO" envDefault:"true"`
}

// Load loads config from environment (.env if present).
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PayoutFraction < 0 || c.PayoutFraction > 1 {
		return errors.New("config: PAYOUT_FRACTION must be in [0,1]")
	}
	if c.GroupRate < 0 || c.VRRate < 0 || c.IndividualRate < 0 {
		return errors.New("config: rates must be non-negative")
	}
	if c.TickInterval <= 0 {
		return errors.New("config: TICK_INTERVAL must be positive")
	}
	if c.JoinConfirmDelay <= 0 {
		return errors.New("config: JOIN_CONFIRM_DELAY must be positive")
	}
	if c.WaitlistCap <= 0 || c.WaitlistInitial < 0 || c.WaitlistInitial > c.WaitlistCap {
		return errors.New("config: waitlist bounds are inconsistent")
	}
	if c.WaitlistProb < 0 || c.WaitlistProb > 1 {
		return errors.New("config: WAITLIST_PROB must be in [0,1]")
	}
	if c.GroupCapacity <= 0 {
		return errors.New("config: GROUP_CAPACITY must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}
