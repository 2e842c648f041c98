package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultClientTimeout bounds a single client request when nothing else is
// configured.
const DefaultClientTimeout = 10 * time.Second

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter holds the connection settings of the users API.
	Adapter Adapter `envPrefix:"ADAPTER_"`
}

// Adapter holds the connection settings used by the HTTP client.
type Adapter struct {
	// HTTPAddress is the base address of the users API, with or without
	// scheme (e.g. "localhost:8080", "https://users.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the client configuration from defaults, the
// environment and the flags found in args. It returns the config together
// with the positional arguments left after flag parsing.
//
// Flags:
//
//	-a users API address
//	-timeout request timeout (e.g., "5s")
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("users-client", flag.ContinueOnError)
	flagCfg := &ClientConfig{}
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "a", "", "Users API address")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	if err = fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	cfg := &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultClientTimeout,
		},
	}
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err = cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
