package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	availModel "alloggi/internal/domains/availability/model"
	bookingModel "alloggi/internal/domains/booking/model"
	"alloggi/shared"
	"alloggi/shared/failure"
	"alloggi/shared/timezone"
)

func bookCmd() *cobra.Command {
	var (
		checkIn  string
		checkOut string
		guests   int
		name     string
		email    string
		phone    string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "book <unit-id>",
		Short: "Book a unit from date selection to confirmation",
		Long: `Book drives the whole booking workflow: it confirms the stay is
available, quotes the total, submits the reservation and prints the
confirmation. If someone else takes the dates between the check and
the submit, the booking is not retried silently; run the command
again to confirm against fresh availability.`,
		Args: cobra.ExactArgs(1),
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

			wf := app.Workflow
			wf.Start(unit)

			if err := wf.SetStay(stay); err != nil {
				return err
			}

			if err := wf.SetGuests(guests); err != nil {
				return err
			}

			state, err := wf.Check(cmd.Context())
			if err != nil {
				return err
			}

			if state.Status != availModel.StatusAvailable {
				return fmt.Errorf("%s non è disponibile dal %s al %s", unit.Name, checkIn, checkOut)
			}

			fmt.Printf("%s: %d notti, totale %s €\n",
				unit.Name, state.Quote.Nights, shared.FormatPrice(state.Quote.Total))

			err = wf.SetGuestInfo(bookingModel.GuestInfo{
				Name:  name,
				Email: email,
				Phone: phone,
				Note:  note,
			})
			if err != nil {
				return err
			}

			conf, err := wf.Submit(cmd.Context())
			if err != nil {
				if failure.IsRace(err) {
					return fmt.Errorf("le date sono state prenotate da qualcun altro, riprova: %w", err)
				}

				return err
			}

			fmt.Printf("Prenotazione confermata (#%d): %s, dal %s al %s, %d ospiti, %s €\n",
				conf.ID, unit.Name,
				timezone.FormatDate(conf.Stay.CheckIn), timezone.FormatDate(conf.Stay.CheckOut),
				conf.Guests, shared.FormatPrice(conf.Total))

			return nil
		},
	}

	cmd.Flags().StringVar(&checkIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&guests, "guests", 1, "Number of guests")
	cmd.Flags().StringVar(&name, "name", "", "Guest full name")
	cmd.Flags().StringVar(&email, "email", "", "Guest email")
	cmd.Flags().StringVar(&phone, "phone", "", "Guest phone (optional)")
	cmd.Flags().StringVar(&note, "note", "", "Note for the host (optional)")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
