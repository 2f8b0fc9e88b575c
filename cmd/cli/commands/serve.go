package commands

import (
	"github.com/spf13/cobra"

	"github.com/bytesyntax/schedule-helper/pkg/server"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload server that returns schedules as a zip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Cfg.Server.Addr
			}

			srv := server.New(server.Options{
				Addr:           addr,
				RateLimit:      app.Cfg.Server.RateLimit,
				AllowedOrigins: app.Cfg.Server.AllowedOrigins,
				Layout:         app.Cfg.InputFormat.Layout(),
				Policy:         app.Policy(),
				Directory:      app.Directory,
				Footer:         app.Footer,
			}, app.Logger)

			return srv.Run(app.Ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr)")
	return cmd
}
