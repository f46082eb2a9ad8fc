package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the backend is reachable and healthy",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			res, err := app.API.Status(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("backend: %s  database: %s", res.Status, res.Database)

			if res.Version != "" {
				fmt.Printf("  versione: %s", res.Version)
			}

			fmt.Println()

			return nil
		},
	}
}
