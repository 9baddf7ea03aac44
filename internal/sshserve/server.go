// Package sshserve serves the terminal portfolio over SSH.
package sshserve

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/Cicchelli/portifoliowebstephan/internal/tui"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Addr        string
	HostKeyPath string
	IdleTimeout time.Duration
}

// SessionCounter is notified once per accepted session.
type SessionCounter interface {
	SessionOpened()
}

// Runtime wires config, middleware and the Wish server.
type Runtime struct {
	cfg    Config
	server *ssh.Server
}

// New builds the SSH server. Every session gets its own tui.Model, and
// with it its own theme controller and reveal sections.
func New(cfg Config, opts tui.Options, counter SessionCounter) (*Runtime, error) {
	if cfg.Addr == "" {
		return nil, errors.New("sshserve: address is required")
	}
	if cfg.HostKeyPath == "" {
		return nil, errors.New("sshserve: host key path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("sshserve: create host key dir: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bm.Middleware(teaHandler(opts, counter)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("sshserve: build server: %w", err)
	}

	return &Runtime{cfg: cfg, server: server}, nil
}

func teaHandler(opts tui.Options, counter SessionCounter) bm.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		if counter != nil {
			counter.SessionOpened()
		}
		sessionOpts := opts
		sessionOpts.Renderer = bm.MakeRenderer(s)
		return tui.New(sessionOpts), []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	}
}

func (r *Runtime) Address() string {
	return r.server.Addr
}

// Run serves until ctx is cancelled, then shuts the server down.
func (r *Runtime) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.cfg.Addr)
	if err != nil {
		return fmt.Errorf("sshserve: listen %s: %w", r.cfg.Addr, err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = r.server.Shutdown(shutdownCtx)
		// Serve may not have tracked the listener yet.
		_ = ln.Close()
	}()

	log.Printf("level=info event=startup surface=ssh addr=%s host_key_path=%s idle_timeout=%s", ln.Addr(), r.cfg.HostKeyPath, r.cfg.IdleTimeout)
	err = r.server.Serve(ln)
	if errors.Is(err, ssh.ErrServerClosed) || err == nil {
		return nil
	}

	return err
}
