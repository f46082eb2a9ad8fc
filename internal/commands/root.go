package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alloggi/config"
	"alloggi/shared/logger"
)

const version = "0.1.0"

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Errore: %v\n", err)
		os.Exit(1)
	}
}

// Root builds the command tree. Every subcommand gets a ready *App
// through newApp(), after logging is configured.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloggi",
		Short: "Client per la prenotazione di alloggi",
		Long: `Alloggi is a client for a vacation-rental booking backend:
browse the catalog, check availability and prices for a stay, and
drive a booking from date selection to confirmation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Get()

			logger.InitLogger()
			logger.SetLogLevel(cfg)
		},
	}

	cmd.AddCommand(
		unitsCmd(),
		searchCmd(),
		checkCmd(),
		bookCmd(),
		loginCmd(),
		logoutCmd(),
		statusCmd(),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("alloggi version %s\n", version)
		},
	}
}
