package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// kst is the service timezone. The remote API serves menus for dates in
// Korea Standard Time regardless of where the client runs.
var kst = time.FixedZone("KST", 9*60*60)

// dateWindow is how far ahead a menu date may be requested.
const dateWindow = 7 * 24 * time.Hour

func newMenuCmd() *cobra.Command {
	var slot string

	cmd := &cobra.Command{
		Use:   "menu [YYYYMMDD]",
		Short: "Show the day's cafeteria menu",
		Long:  "Show the classified menu for a date (default today, KST) with ratings and engagement counters.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().In(kst)
			if len(args) == 1 {
				var err error
				date, err = parseMenuDate(args[0])
				if err != nil {
					return err
				}
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			m, err := a.svc.Menu(cmd.Context(), date, slot)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(m)
			}
			printMenu(m)
			return nil
		},
	}

	cmd.Flags().StringVar(&slot, "slot", "2", "meal slot code (1=breakfast, 2=lunch, 3=dinner)")

	return cmd
}

// parseMenuDate validates a YYYYMMDD argument against the service's
// today..+7 days window.
func parseMenuDate(arg string) (time.Time, error) {
	date, err := time.ParseInLocation("20060102", arg, kst)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYYMMDD", arg)
	}

	now := time.Now().In(kst)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, kst)
	if date.Before(today) || date.After(today.Add(dateWindow)) {
		return time.Time{}, fmt.Errorf("date %s is outside the available window (today through +7 days)", arg)
	}
	return date, nil
}
