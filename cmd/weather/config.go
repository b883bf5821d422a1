package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"apidiscovery/domain"
	"apidiscovery/service"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort             = "SERVICE_PORT_HTTP"
	envDiscoveryServiceURL  = "DISCOVERY_SERVICE_URL"
	envDiscoverySelfURL     = "DISCOVERY_SELF_URL"
	envRegistrationInterval = "DISCOVERY_REGISTRATION_INTERVAL_MS"
	envDiscoveryTimeout     = "DISCOVERY_TIMEOUT_MS"
	envConfigPath           = "CONFIG_PATH"
)

const (
	defaultServiceName          = "weather"
	defaultRegistrationInterval = 60000
	defaultDiscoveryTimeout     = 5000
)

// WeatherConfig holds the weather process configuration: the discovery setup it advertises, the
// dependencies it calls and the discovery timings.
type WeatherConfig struct {
	HTTPPort             int
	Discovery            domain.DiscoveryConfiguration
	Dependencies         []domain.DependencyContract
	RegistrationInterval time.Duration
	DiscoveryTimeout     time.Duration
}

// Dependency returns the declared contract for name.
func (c *WeatherConfig) Dependency(name string) (domain.DependencyContract, bool) {
	for _, dep := range c.Dependencies {
		if dep.Name == name {
			return dep, true
		}
	}
	return domain.DependencyContract{}, false
}

type yamlConfig struct {
	Service      yamlService      `yaml:"service"`
	Dependencies []yamlDependency `yaml:"dependencies"`
}

type yamlService struct {
	Name     string   `yaml:"name"`
	Versions []string `yaml:"versions"`
}

type yamlDependency struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

func defaultYAMLConfig() *yamlConfig {
	return &yamlConfig{
		Service:      yamlService{Name: defaultServiceName, Versions: []string{"1.0"}},
		Dependencies: []yamlDependency{{Name: "cat", Version: "1.0"}},
	}
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the weather config from environment variables and the optional YAML at CONFIG_PATH.
// SERVICE_PORT_HTTP, DISCOVERY_SERVICE_URL and DISCOVERY_SELF_URL are required. Without CONFIG_PATH the
// process advertises weather ["1.0"] and depends on cat 1.0.
func LoadConfig() (*WeatherConfig, error) {
	httpPort, err := portFromEnv(envHTTPPort)
	if err != nil {
		return nil, err
	}

	serviceURL := strings.TrimSpace(os.Getenv(envDiscoveryServiceURL))
	if serviceURL == "" {
		return nil, fmt.Errorf("%s is required", envDiscoveryServiceURL)
	}
	if err := service.ValidateEndpoint(serviceURL); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envDiscoveryServiceURL, err)
	}
	selfURL := strings.TrimSpace(os.Getenv(envDiscoverySelfURL))
	if selfURL == "" {
		return nil, fmt.Errorf("%s is required", envDiscoverySelfURL)
	}
	if err := service.ValidateEndpoint(selfURL); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envDiscoverySelfURL, err)
	}

	interval, err := millisFromEnv(envRegistrationInterval, defaultRegistrationInterval)
	if err != nil {
		return nil, err
	}
	timeout, err := millisFromEnv(envDiscoveryTimeout, defaultDiscoveryTimeout)
	if err != nil {
		return nil, err
	}

	raw := defaultYAMLConfig()
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, absErr := filepath.Abs(configPath)
			if absErr != nil {
				return nil, absErr
			}
			configPath = abs
		}
		raw, err = loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
	}

	if err := service.ValidateName(raw.Service.Name); err != nil {
		return nil, fmt.Errorf("service.name: %w", err)
	}
	if len(raw.Service.Versions) == 0 {
		return nil, fmt.Errorf("service.versions must list at least one version")
	}
	for _, v := range raw.Service.Versions {
		if err := service.ValidateVersion(v); err != nil {
			return nil, fmt.Errorf("service.versions: %w", err)
		}
	}

	deps := make([]domain.DependencyContract, 0, len(raw.Dependencies))
	seen := make(map[domain.RecordKey]struct{}, len(raw.Dependencies))
	for i, d := range raw.Dependencies {
		if err := service.ValidateKey(d.Name, d.Version); err != nil {
			return nil, fmt.Errorf("dependencies[%d]: %w", i, err)
		}
		contract := domain.DependencyContract{Name: d.Name, Version: d.Version}
		if _, dup := seen[contract.Key()]; dup {
			return nil, fmt.Errorf("dependencies[%d]: %s %s is declared twice", i, d.Name, d.Version)
		}
		seen[contract.Key()] = struct{}{}
		deps = append(deps, contract)
	}

	return &WeatherConfig{
		HTTPPort: httpPort,
		Discovery: domain.DiscoveryConfiguration{
			Name:              raw.Service.Name,
			SupportedVersions: raw.Service.Versions,
			SelfURL:           selfURL,
			ServiceURL:        serviceURL,
		},
		Dependencies:         deps,
		RegistrationInterval: interval,
		DiscoveryTimeout:     timeout,
	}, nil
}

func portFromEnv(name string) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", name, port)
	}
	return port, nil
}

func millisFromEnv(name string, def int) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return time.Duration(def) * time.Millisecond, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of milliseconds, got %q", name, raw)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
