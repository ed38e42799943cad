package cli

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/internal/preview"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		src      ringSource
		flags    cacheFlags
		addr     string
		entrance time.Duration
	)
	opts := pipeline.Options{NodeSize: pipeline.DefaultNodeSize}

	cmd := &cobra.Command{
		Use:   "serve [ring.toml]",
		Short: "Serve a live ring over HTTP",
		Long: `Serve a live ring over HTTP.

GET /ring.svg, /ring.json and /ring.dot render the current ring and GET /items
lists it. POST /items inserts an item, DELETE /items pops one and
DELETE /items/{index} removes one. New items stay entering for --entrance
before they settle; POST /items/settle settles them all at once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, doc, l, err := src.build(ctx, fileArg(args))
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, flags)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			opts.Logger = c.Logger
			srv := preview.NewServer(doc, l, runner, preview.Options{
				Entrance: entrance,
				Render:   opts,
				Logger:   c.Logger,
			})

			printSuccess("Serving %d items", l.Len())
			printNextStep("Preview", StyleLink.Render("http://"+addr+"/ring.svg"))

			err = srv.Serve(ctx, addr)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	src.register(cmd, 6)
	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", preview.DefaultAddr, "listen address")
	cmd.Flags().DurationVar(&entrance, "entrance", time.Second, "how long new items stay entering (0 keeps them until settled)")
	cmd.Flags().BoolVar(&opts.NoGuide, "no-guide", false, "omit the ring outline (svg)")
	cmd.Flags().BoolVar(&opts.Angles, "angles", false, "label items with their angle (svg)")
	return cmd
}
