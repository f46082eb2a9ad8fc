package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	availModel "alloggi/internal/domains/availability/model"
	"alloggi/shared"
)

func searchCmd() *cobra.Command {
	var (
		checkIn  string
		checkOut string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the units free for a stay",
		RunE: func(cmd *cobra.Command, args []string) error {
			stay, err := availModel.NewStay(checkIn, checkOut)
			if err != nil {
				return err
			}

			app := newApp()

			units, err := app.Units.Search(cmd.Context(), stay)
			if err != nil {
				return err
			}

			if len(units) == 0 {
				fmt.Println("Nessun alloggio disponibile per le date scelte.")

				return nil
			}

			for _, unit := range units {
				total := shared.Round2(unit.NightlyRate * float64(stay.Nights()))
				fmt.Printf("%4d  %-28s %-24s %8s €/notte  totale %s €\n",
					unit.ID, unit.Name, unit.Location, shared.FormatPrice(unit.NightlyRate), shared.FormatPrice(total))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&checkIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")

	return cmd
}
