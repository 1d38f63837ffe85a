package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"archsmith/internal/config"
	"archsmith/internal/server"
)

var servePort string

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the blueprint API server",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if servePort != "" {
				if strings.HasPrefix(servePort, ":") {
					cfg.Port = servePort
				} else {
					cfg.Port = ":" + servePort
				}
			}

			a, err := server.NewApp(c.Context(), cfg)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() { errCh <- a.Start() }()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return a.Shutdown(ctx)
		},
	}
	cmd.Flags().StringVar(&servePort, "port", "", "listen port, overrides PORT")
	return cmd
}
