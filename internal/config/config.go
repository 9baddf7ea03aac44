package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = 8080
	defaultHostKeyPath     = ".data/host_ed25519"
	defaultSSHIdleTimeout  = 5 * time.Minute
	defaultRevealThreshold = 0.1
	defaultRevealDuration  = 1000 * time.Millisecond
)

// Config captures startup settings for the portfolio commands.
type Config struct {
	Port int

	// SSHAddr enables the terminal portfolio over SSH when set.
	SSHAddr        string
	HostKeyPath    string
	SSHIdleTimeout time.Duration

	RevealThreshold float64
	RevealDuration  time.Duration
}

// HTTPAddr is the listen address for the web server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadFromEnv reads configuration from the environment. Variables that are
// unset fall back to defaults; variables that are set must be valid.
func LoadFromEnv() (Config, error) {
	port, err := readInt("PORT", defaultPort, 1, 65535)
	if err != nil {
		return Config{}, err
	}

	sshAddr := strings.TrimSpace(os.Getenv("SSH_ADDR"))

	hostKeyPath := defaultHostKeyPath
	if raw := strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH")); raw != "" {
		hostKeyPath = filepath.Clean(raw)
		if hostKeyPath == "." {
			return Config{}, fmt.Errorf("SSH_HOST_KEY_PATH must not resolve to current directory")
		}
	}

	idle, err := readDuration("SSH_IDLE_TIMEOUT", defaultSSHIdleTimeout)
	if err != nil {
		return Config{}, err
	}

	threshold, err := readFraction("REVEAL_THRESHOLD", defaultRevealThreshold)
	if err != nil {
		return Config{}, err
	}

	duration, err := readDuration("REVEAL_DURATION", defaultRevealDuration)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            port,
		SSHAddr:         sshAddr,
		HostKeyPath:     hostKeyPath,
		SSHIdleTimeout:  idle,
		RevealThreshold: threshold,
		RevealDuration:  duration,
	}, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func readFraction(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if parsed <= 0 || parsed > 1 {
		return 0, fmt.Errorf("%s must be in (0, 1]", key)
	}

	return parsed, nil
}
