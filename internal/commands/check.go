package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	availModel "alloggi/internal/domains/availability/model"
	"alloggi/shared"
)

func checkCmd() *cobra.Command {
	var (
		checkIn  string
		checkOut string
	)

	cmd := &cobra.Command{
		Use:   "check <unit-id>",
		Short: "Check availability and price for a stay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid unit id %q", args[0])
			}

			stay, err := availModel.NewStay(checkIn, checkOut)
			if err != nil {
				return err
			}

			app := newApp()

			unit, err := app.Units.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			app.Engine.Select(unit, stay)

			state, err := app.Engine.Evaluate(cmd.Context())
			if err != nil {
				return err
			}

			if state.Status != availModel.StatusAvailable {
				fmt.Printf("%s non è disponibile dal %s al %s.\n",
					unit.Name, checkIn, checkOut)

				return nil
			}

			fmt.Printf("%s è disponibile dal %s al %s.\n", unit.Name, checkIn, checkOut)
			fmt.Printf("%d notti × %s € = %s €\n",
				state.Quote.Nights, shared.FormatPrice(unit.NightlyRate), shared.FormatPrice(state.Quote.Total))

			return nil
		},
	}

	cmd.Flags().StringVar(&checkIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")

	return cmd
}
