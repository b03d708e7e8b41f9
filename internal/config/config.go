// Package config loads kolaw settings from defaults, a YAML file and
// KOLAW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the full settings tree.
type Config struct {
	Registry Registry `mapstructure:"registry" yaml:"registry"`
	Server   Server   `mapstructure:"server" yaml:"server"`
	Log      Log      `mapstructure:"log" yaml:"log"`
}

// Registry configures the law.go.kr client.
type Registry struct {
	OC             string  `mapstructure:"oc" yaml:"oc"`
	BaseURL        string  `mapstructure:"base_url" yaml:"base_url"`
	Display        int     `mapstructure:"display" yaml:"display"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	RatePerSecond  float64 `mapstructure:"rate_per_second" yaml:"rate_per_second"`
	Retries        uint    `mapstructure:"retries" yaml:"retries"`
}

// Timeout returns TimeoutSeconds as a duration.
func (r Registry) Timeout() time.Duration { return time.Duration(r.TimeoutSeconds) * time.Second }

// Server configures kolaw-server.
type Server struct {
	Host                  string `mapstructure:"host" yaml:"host"`
	Port                  string `mapstructure:"port" yaml:"port"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"`
}

// RequestTimeout returns RequestTimeoutSeconds as a duration.
func (s Server) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Log configures the zap logger.
type Log struct {
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Registry: Registry{
			OC:             "${KOLAW_OC}",
			BaseURL:        "https://www.law.go.kr",
			Display:        100,
			TimeoutSeconds: 10,
			RatePerSecond:  5,
			Retries:        3,
		},
		Server: Server{
			Host:                  "127.0.0.1",
			Port:                  "8080",
			RequestTimeoutSeconds: 180,
		},
	}
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	v         *viper.Viper
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a manager and loads the initial config. cfgFile may be
// empty, in which case ./config.yaml and $HOME/.kolaw/config.yaml are tried.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{v: viper.New()}
	if err := cm.init(cfgFile); err != nil {
		return nil, err
	}
	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg
	return cm, nil
}

func (cm *Manager) init(cfgFile string) error {
	d := DefaultConfig()
	v := cm.v
	v.SetDefault("registry.oc", d.Registry.OC)
	v.SetDefault("registry.base_url", d.Registry.BaseURL)
	v.SetDefault("registry.display", d.Registry.Display)
	v.SetDefault("registry.timeout_seconds", d.Registry.TimeoutSeconds)
	v.SetDefault("registry.rate_per_second", d.Registry.RatePerSecond)
	v.SetDefault("registry.retries", d.Registry.Retries)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.request_timeout_seconds", d.Server.RequestTimeoutSeconds)
	v.SetDefault("log.verbose", d.Log.Verbose)

	// KOLAW_REGISTRY_OC, KOLAW_SERVER_PORT, ...
	v.SetEnvPrefix("KOLAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.kolaw")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}
	return nil
}

func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := cm.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Registry.OC = os.ExpandEnv(cfg.Registry.OC)
	return &cfg, nil
}

// Get returns the current configuration.
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// File returns the config file in use, or "".
func (cm *Manager) File() string { return cm.v.ConfigFileUsed() }

// OnChange registers a callback for reloads.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig reloads the file on change and notifies callbacks.
// A no-op when no file was loaded.
func (cm *Manager) WatchConfig() {
	if cm.File() == "" {
		return
	}
	cm.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	cm.v.WatchConfig()
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	header := []byte(`# kolaw configuration
# registry.oc is your law.go.kr Open API id; ${VAR} references are expanded.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
