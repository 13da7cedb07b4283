package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"chitragupta-dashboard/internal/config"
	"chitragupta-dashboard/pkg/logger"
)

func main() {
	logger.Init()

	if err := execute(newRootCommand(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs root with args and logs the error it returns, since cobra's
// own error printing is silenced.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logger.Error(err, "Command failed", map[string]interface{}{"args": args})
		return err
	}
	return nil
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Chitragupta dashboard shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				logger.Debug("No .env file found, using environment variables", nil)
			}
		},
	}

	root.PersistentFlags().String("log-level", "", "Override LOG_LEVEL")
	root.PersistentFlags().String("navigation", "", "Override NAVIGATION_FILE")

	root.AddCommand(newServeCommand())
	root.AddCommand(newNavCommand())

	return root
}

// loadConfig reads configuration from the environment and applies the
// persistent flag overrides.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.New()

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if nav, _ := cmd.Flags().GetString("navigation"); nav != "" {
		cfg.NavigationFile = nav
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	return cfg
}
