package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe fallback (API keys in remote mode)
// - default: Values common across all environments (ports, data files, timezone), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Agent  AgentConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type StoreConfig struct {
	DataDir           string `envconfig:"DATA_DIR" default:"data"`
	TicketsFile       string `envconfig:"TICKETS_FILE" default:"tickets.json"`
	InventoryFile     string `envconfig:"INVENTORY_FILE" default:"inventory.json"`
	InventoryAutosave bool   `envconfig:"INVENTORY_AUTOSAVE" default:"true"`
	LookupMaxResults  int    `envconfig:"LOOKUP_MAX_RESULTS" default:"10"`
}

const (
	AgentModeLocal  = "local"
	AgentModeRemote = "remote"
)

type AgentConfig struct {
	Mode    string        `envconfig:"AGENT_MODE" default:"local"`
	APIKey  string        `envconfig:"GOOGLE_API_KEY"`
	Model   string        `envconfig:"AGENT_MODEL" default:"gemini-2.0-flash"`
	Timeout time.Duration `envconfig:"AGENT_TIMEOUT" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c StoreConfig) TicketsPath() string {
	return resolve(c.DataDir, c.TicketsFile)
}

func (c StoreConfig) InventoryPath() string {
	return resolve(c.DataDir, c.InventoryFile)
}

func resolve(dir, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func (c AgentConfig) Remote() bool {
	return c.Mode == AgentModeRemote
}

// LoadConfig reads .env (when present) and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Agent.Mode {
	case AgentModeLocal:
	case AgentModeRemote:
		if c.Agent.APIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required when AGENT_MODE=%s", AgentModeRemote)
		}
	default:
		return fmt.Errorf("unknown AGENT_MODE %q (want %s or %s)", c.Agent.Mode, AgentModeLocal, AgentModeRemote)
	}
	if c.Store.LookupMaxResults <= 0 {
		return fmt.Errorf("LOOKUP_MAX_RESULTS must be positive, got %d", c.Store.LookupMaxResults)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			DataDir:           os.TempDir(),
			TicketsFile:       "tickets_test.json",
			InventoryFile:     "inventory_test.json",
			InventoryAutosave: true,
			LookupMaxResults:  10,
		},
		Agent: AgentConfig{
			Mode:    AgentModeLocal,
			Timeout: 5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
