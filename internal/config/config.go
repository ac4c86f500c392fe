package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/i5heu/relay-gatekeeper/pkg/types"
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
	"gopkg.in/yaml.v2"
)

const (
	BackendLocal      = "local"
	BackendReplicated = "replicated"

	DefaultPath        = "config.yaml"
	DefaultControlKind = 4242
	DefaultDBPath      = "manage_users.db"
	DefaultAPIHost     = "127.0.0.1"
	DefaultAPIPort     = 3000
	DefaultGRPCHost    = "[::1]"
	DefaultGRPCPort    = 50051
	DefaultTimeout     = 10 * time.Second
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	PrivateKey     string        `yaml:"private_key"`
	Relays         []string      `yaml:"relays"`
	AdminKeys      []string      `yaml:"admin_keys"`
	ControlKind    uint64        `yaml:"control_kind"`
	APIKey         string        `yaml:"api_key"`
	APIListenHost  string        `yaml:"api_listen_host"`
	APIListenPort  int           `yaml:"api_listen_port"`
	GRPCListenHost string        `yaml:"grpc_listen_host"`
	GRPCListenPort int           `yaml:"grpc_listen_port"`
	DBPath         string        `yaml:"db_path"`
	Backend        string        `yaml:"backend"`
	ImplicitAllow  bool          `yaml:"implicit_allow"`
	RestoreTimeout time.Duration `yaml:"restore_timeout"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
	MinFreeGB      uint64        `yaml:"min_free_gb"`
	LogLevel       string        `yaml:"log_level"`
}

// Load reads the YAML file at path, fills defaults and validates.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ControlKind == 0 {
		c.ControlKind = DefaultControlKind
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if c.APIListenHost == "" {
		c.APIListenHost = DefaultAPIHost
	}
	if c.APIListenPort == 0 {
		c.APIListenPort = DefaultAPIPort
	}
	if c.GRPCListenHost == "" {
		c.GRPCListenHost = DefaultGRPCHost
	}
	if c.GRPCListenPort == 0 {
		c.GRPCListenPort = DefaultGRPCPort
	}
	if c.Backend == "" {
		c.Backend = BackendLocal
	}
	if c.RestoreTimeout <= 0 {
		c.RestoreTimeout = DefaultTimeout
	}
	if c.PublishTimeout <= 0 {
		c.PublishTimeout = DefaultTimeout
	}
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendReplicated:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if _, err := c.Admins(); err != nil {
		return err
	}
	if c.Backend == BackendReplicated {
		if _, err := c.SecretKey(); err != nil {
			return err
		}
		if len(c.Relays) == 0 {
			return fmt.Errorf(
				"%w: replicated backend needs at least one relay",
				ErrInvalidConfig,
			)
		}
	}
	return nil
}

// Admins parses the administrator keys.
func (c Config) Admins() (types.IdentitySet, error) {
	admins := make(types.IdentitySet, len(c.AdminKeys))
	for _, k := range c.AdminKeys {
		id, err := types.ParseIdentity(k)
		if err != nil {
			return nil, fmt.Errorf("%w: admin key %q: %v", ErrInvalidConfig, k, err)
		}
		admins.Add(id)
	}
	return admins, nil
}

// SecretKey returns the service private key as hex. nsec keys are decoded.
func (c Config) SecretKey() (string, error) {
	sk := c.PrivateKey
	if sk == "" {
		return "", fmt.Errorf("%w: private_key is empty", ErrInvalidConfig)
	}
	if strings.HasPrefix(sk, "nsec1") {
		prefix, value, err := nip19.Decode(sk)
		if err != nil {
			return "", fmt.Errorf("%w: private_key: %v", ErrInvalidConfig, err)
		}
		hexKey, ok := value.(string)
		if prefix != "nsec" || !ok {
			return "", fmt.Errorf("%w: private_key is not an nsec", ErrInvalidConfig)
		}
		sk = hexKey
	}
	if _, err := nostr.GetPublicKey(sk); err != nil {
		return "", fmt.Errorf("%w: private_key: %v", ErrInvalidConfig, err)
	}
	return sk, nil
}

func (c Config) APIAddr() string {
	return net.JoinHostPort(trimBrackets(c.APIListenHost), strconv.Itoa(c.APIListenPort))
}

func (c Config) GRPCAddr() string {
	return net.JoinHostPort(trimBrackets(c.GRPCListenHost), strconv.Itoa(c.GRPCListenPort))
}

func trimBrackets(host string) string {
	if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
		return host[1 : len(host)-1]
	}
	return host
}
