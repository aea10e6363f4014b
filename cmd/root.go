package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wpcomics",
	Short: "Browse WPComics based manga sites from the command line.",
	Long: `Browse WPComics based manga sites from the command line.

Every command prints its result as JSON on stdout, logs go to stderr or the configured log file.

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/wpcomics/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.wpcomics/).
4. Place a config.yaml file in the directory of the binary.

Sites are described by yaml profiles. Without --profile or profilePath the bundled TruyenQQ profile is used.`,
	SilenceUsage: true,
}

func init() {
	initRootFlags()
	initCatalogFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(resolveCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
