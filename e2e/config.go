package e2e

import (
	"github.com/Netflix/go-env"
)

type Config struct {
	// E2E_SERVER_URL points the suite at an already-running gateway
	// (ws://host:port/ws). Empty boots the full stack in-process.
	ServerURL string `env:"E2E_SERVER_URL"`
	// E2E_DEBUG_JSON allows dumping every frame exchanged with the gateway
	DebugJSON bool `env:"E2E_DEBUG_JSON,default=false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `env:"E2E_COLOURS,default=true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	return cfg, err
}
