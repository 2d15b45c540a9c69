package config

import (
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/CropperFinance/cropper-instructions/pkg/farm"
	"github.com/CropperFinance/cropper-instructions/pkg/swap"
)

const defaultRequestsPerSecond = 10

// RPCConfig holds connectivity settings for the JSON-RPC and websocket
// endpoints.
type RPCConfig struct {
	Endpoints         []string `yaml:"endpoints"`
	WSEndpoint        string   `yaml:"ws_endpoint"`
	RequestsPerSecond int      `yaml:"requests_per_second"`
}

// ProgramConfig allows overriding the deployed program IDs, mainly for
// devnet and local validator runs.
type ProgramConfig struct {
	Swap string `yaml:"swap"`
	Farm string `yaml:"farm"`
}

// Config is the top-level configuration document.
type Config struct {
	RPC      RPCConfig     `yaml:"rpc"`
	Programs ProgramConfig `yaml:"programs"`
}

// Default returns a configuration pointing at the public mainnet endpoint
// and the deployed Cropper programs.
func Default() *Config {
	return &Config{
		RPC: RPCConfig{
			Endpoints:         []string{"https://api.mainnet-beta.solana.com"},
			WSEndpoint:        "wss://api.mainnet-beta.solana.com",
			RequestsPerSecond: defaultRequestsPerSecond,
		},
		Programs: ProgramConfig{
			Swap: swap.CROPPER_SWAP_PROGRAM_ID,
			Farm: farm.CROPPER_FARM_PROGRAM_ID,
		},
	}
}

// Load reads the YAML config at path, then applies environment overrides.
// A missing file is not an error; defaults are used instead. A .env file
// in the working directory is honored when present.
func Load(path string) (*Config, error) {
	// Optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RPC_ENDPOINTS"); v != "" {
		var endpoints []string
		for _, e := range strings.Split(v, ",") {
			if e = strings.TrimSpace(e); e != "" {
				endpoints = append(endpoints, e)
			}
		}
		if len(endpoints) > 0 {
			cfg.RPC.Endpoints = endpoints
		}
	}
	if v := os.Getenv("WS_ENDPOINT"); v != "" {
		cfg.RPC.WSEndpoint = v
	}
	if v := os.Getenv("SWAP_PROGRAM_ID"); v != "" {
		cfg.Programs.Swap = v
	}
	if v := os.Getenv("FARM_PROGRAM_ID"); v != "" {
		cfg.Programs.Farm = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.RPC.Endpoints) == 0 {
		return errors.New("config: at least one RPC endpoint is required")
	}
	if c.RPC.RequestsPerSecond <= 0 {
		c.RPC.RequestsPerSecond = defaultRequestsPerSecond
	}
	if _, err := solana.PublicKeyFromBase58(c.Programs.Swap); err != nil {
		return errors.Wrap(err, "config: invalid swap program ID")
	}
	if _, err := solana.PublicKeyFromBase58(c.Programs.Farm); err != nil {
		return errors.Wrap(err, "config: invalid farm program ID")
	}
	return nil
}

// SwapProgramID returns the configured swap program ID.
func (c *Config) SwapProgramID() solana.PublicKey {
	return solana.MustPublicKeyFromBase58(c.Programs.Swap)
}

// FarmProgramID returns the configured farm program ID.
func (c *Config) FarmProgramID() solana.PublicKey {
	return solana.MustPublicKeyFromBase58(c.Programs.Farm)
}
