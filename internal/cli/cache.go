package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var cacheURL string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var backend cache.Cache
			where := cacheURL
			if cacheURL != "" {
				rc, err := cache.NewRedisCache(ctx, cacheURL)
				if err != nil {
					return fmt.Errorf("connect cache: %w", err)
				}
				backend = rc
			} else {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					printInfo("Cache is empty")
					return nil
				}
				fc, err := cache.NewFileCache(dir)
				if err != nil {
					return err
				}
				backend, where = fc, dir
			}
			defer backend.Close()

			clearer, ok := backend.(cache.Clearer)
			if !ok {
				return fmt.Errorf("cache backend cannot be cleared")
			}
			count, err := clearer.Clear(ctx)
			if err != nil {
				return err
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("Location: %s", where)
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheURL, "cache-url", os.Getenv("RINGLAYOUT_CACHE_URL"), "redis:// URL of a shared artifact cache")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
