package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Cicchelli/portifoliowebstephan/internal/config"
)

func serveConfig(t *testing.T, sshAddr string) config.Config {
	t.Helper()
	return config.Config{
		Port:            0,
		SSHAddr:         sshAddr,
		HostKeyPath:     filepath.Join(t.TempDir(), "host_ed25519"),
		SSHIdleTimeout:  time.Minute,
		RevealThreshold: 0.1,
		RevealDuration:  time.Second,
	}
}

func waitServe(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return")
		return nil
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, serveConfig(t, "127.0.0.1:0")) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	if err := waitServe(t, done); err != nil {
		t.Fatalf("serve() = %v, want nil", err)
	}
}

func TestServeStopsHTTPWhenSSHFails(t *testing.T) {
	done := make(chan error, 1)
	go func() { done <- serve(context.Background(), serveConfig(t, "127.0.0.1:-1")) }()

	if err := waitServe(t, done); err == nil {
		t.Fatal("serve() expected the SSH listen error")
	}
}
