package cmd

import (
	"github.com/nfrund/voxnote/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	return serveCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	return serve("")
}

func serve(addr string) error {
	// server.New reports configuration problems itself.
	cfg, _ := loadConfig()
	if addr != "" {
		cfg.ServerAddr = addr
	}

	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	return s.Start(cfg.ServerAddr)
}
