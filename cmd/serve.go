package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campaignforge/internal/banner"
	"campaignforge/internal/conversation"
	"campaignforge/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the campaignforge HTTP server",
	Long:  `Starts the campaign interview API with chat, research, and banner generation endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.close()

		if serveHost != "" {
			a.cfg.Host = serveHost
		}
		if servePort != 0 {
			a.cfg.Port = servePort
		}

		srv := server.New(server.Config{
			Host:        a.cfg.Host,
			Port:        a.cfg.Port,
			CORSOrigins: a.cfg.CORSOrigins,
		}, a.log)

		conversation.RegisterRoutes(srv.Router(), a.engine, a.searcher)
		if a.banners != nil {
			banner.RegisterRoutes(srv.Router(), a.banners, a.engine.ResolveContext)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "campaignforge v%s starting on %s\n", Version, srv.Addr())
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind address (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
