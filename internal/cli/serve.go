package cli

import (
	"github.com/spf13/cobra"

	"welboard/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long:  "Start an HTTP server exposing the menu and engagement API for a web front end.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if port == 0 {
				port = a.cfg.Port
			}
			return web.NewServer(a.svc, a.store).ListenAndServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default from WELBOARD_PORT)")

	return cmd
}
