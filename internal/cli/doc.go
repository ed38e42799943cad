// Package cli implements the ringlayout command-line interface.
//
// # Commands
//
//   - render: lay out a ring description file and write SVG, JSON, DOT or PNG
//   - angles: print the slot angles a ring would assign
//   - play: interactive terminal session pushing and removing ring items
//   - serve: HTTP preview server with a mutable ring
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so debug output from the layout reaches the
// terminal.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli
