package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagSessionTTL  time.Duration
	flagOrigins     []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over SSH and HTTP",
	Long: `Start an SSH server, an HTTP server, or both.

Each SSH connection gets its own board picker and game. The HTTP server
exposes independent sessions as JSON, with a websocket per session:

  POST   /sessions?preset=easy           new session (or rows, cols, mines)
  GET    /sessions/{id}                  current state
  POST   /sessions/{id}/reveal?row=&col= reveal a cell
  POST   /sessions/{id}/flag?row=&col=   toggle a flag
  POST   /sessions/{id}/restart          new game, same board
  DELETE /sessions/{id}                  end the session
  GET    /sessions/{id}/ws               websocket: "o r c", "f r c", "n", "g"
  GET    /presets                        preset list

Pass an empty address to disable a server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mines/host_key

Examples:
  mines serve                       # SSH on :23234, HTTP on :8080
  mines serve --http ""             # SSH only
  mines serve --ssh "" --http :9000 # HTTP only

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "SSH idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagSessionTTL, "session-ttl", time.Hour, "How long an unused HTTP session is kept")
	serveCmd.Flags().StringSliceVar(&flagOrigins, "cors-origin", nil, "Allowed CORS origins (default any)")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		fmt.Fprintln(os.Stderr, "Error: both --ssh and --http are disabled")
		os.Exit(1)
	}

	presets := loadPresets()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.TickRate = flagFPS
		cfg.Presets = presets

		server, err := tui.NewSSHServer(cfg, serverLogger("mines-ssh"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
			os.Exit(1)
		}
		g.Go(func() error {
			return server.ListenAndServe(ctx)
		})
	}

	if flagHTTPAddr != "" {
		cfg := web.DefaultServerConfig()
		cfg.Address = flagHTTPAddr
		cfg.AllowedOrigins = flagOrigins
		cfg.Hub.TTL = flagSessionTTL
		cfg.Presets = presets

		server := web.NewServer(cfg, serverLogger("mines-http"))
		g.Go(func() error {
			return server.Run(ctx)
		})
	}

	fmt.Println("Press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
