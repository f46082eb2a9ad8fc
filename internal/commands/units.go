package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"alloggi/internal/domains/unit/model"
	"alloggi/shared"
)

func unitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Browse the catalog",
	}

	cmd.AddCommand(unitsListCmd(), unitsShowCmd())

	return cmd
}

func unitsListCmd() *cobra.Command {
	var (
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List units one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			res, err := app.Units.List(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}

			for _, unit := range res.Units {
				fmt.Printf("%4d  %-28s %-24s %8s €/notte  max %d ospiti\n",
					unit.ID, unit.Name, unit.Location, shared.FormatPrice(unit.NightlyRate), unit.MaxGuests)
			}

			fmt.Printf("\npagina %d di %d (%d alloggi)\n", res.CurrentPage, res.TotalPage, res.TotalData)

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 12, "Units per page")

	return cmd
}

func unitsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one unit in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid unit id %q", args[0])
			}

			app := newApp()

			unit, err := app.Units.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			printUnit(unit)

			return nil
		},
	}
}

func printUnit(unit model.Unit) {
	fmt.Printf("%s (#%d)\n", unit.Name, unit.ID)
	fmt.Printf("  %s\n", unit.Location)

	if unit.Description != "" {
		fmt.Printf("  %s\n", unit.Description)
	}

	fmt.Printf("  %s €/notte, fino a %d ospiti, %d camere, %d bagni\n",
		shared.FormatPrice(unit.NightlyRate), unit.MaxGuests, unit.Rooms, unit.Bathrooms)

	if len(unit.Amenities) > 0 {
		fmt.Printf("  servizi: %s\n", strings.Join(unit.Amenities, ", "))
	}

	if unit.MainImageURL != "" {
		fmt.Printf("  foto: %s\n", unit.MainImageURL)
	}

	if !unit.Available {
		fmt.Println("  NON DISPONIBILE")
	}
}
