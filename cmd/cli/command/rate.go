package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate [fight-id] [1-5]",
	Short: "Rate a fight, or show its rating when no score is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fightID, err := parseID(args[0], "fight")
		if err != nil {
			return err
		}

		if len(args) == 1 {
			summary, err := newClient().GetRatingSummary(fightID)
			if err != nil {
				return fmt.Errorf("failed to get rating: %w", err)
			}
			fmt.Printf("Fight %d: %s\n", fightID, formatRating(summary.AverageRating, summary.RatingCount, summary.UserRating))
			return nil
		}

		score, err := strconv.Atoi(args[1])
		if err != nil || score < 1 || score > 5 {
			return fmt.Errorf("rating must be a whole number between 1 and 5")
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if _, err := httpClient.RateFight(fightID, score); err != nil {
			return fmt.Errorf("failed to rate fight: %w", err)
		}
		summary, err := httpClient.GetRatingSummary(fightID)
		if err != nil {
			return fmt.Errorf("failed to get rating: %w", err)
		}
		success("Rated fight %d: %s", fightID, formatRating(summary.AverageRating, summary.RatingCount, summary.UserRating))
		return nil
	},
}
