package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fightcard/cmd/cli/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Browse and manage fights",
}

var listFightsCmd = &cobra.Command{
	Use:   "list",
	Short: "List fights with their ratings",
	RunE: func(cmd *cobra.Command, args []string) error {
		var eventID *int64
		if cmd.Flags().Changed("event") {
			id, _ := cmd.Flags().GetInt64("event")
			eventID = &id
		}

		fights, err := newClient().ListFights(eventID)
		if err != nil {
			return fmt.Errorf("failed to list fights: %w", err)
		}
		if len(fights) == 0 {
			fmt.Println("No fights found.")
			return nil
		}

		for _, f := range fights {
			printFight(&f)
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var getFightCmd = &cobra.Command{
	Use:   "get [fight-id]",
	Short: "Show one fight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "fight")
		if err != nil {
			return err
		}
		fight, err := newClient().GetFight(id)
		if err != nil {
			return fmt.Errorf("failed to get fight: %w", err)
		}
		printFight(fight)
		return nil
	},
}

var createFightCmd = &cobra.Command{
	Use:   "create [fighter1] [fighter2] [YYYY-MM-DD]",
	Short: "Add a fight",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse(dateLayout, args[2])
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[2])
		}
		req := &dto.FightRequest{Fighter1: args[0], Fighter2: args[1], Date: date}
		req.Title, _ = cmd.Flags().GetString("title")
		if cmd.Flags().Changed("event") {
			id, _ := cmd.Flags().GetInt64("event")
			req.EventID = &id
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		fight, err := httpClient.CreateFight(req)
		if err != nil {
			return fmt.Errorf("failed to create fight: %w", err)
		}
		success("Fight %d created: %s", fight.ID, fight.Title)
		return nil
	},
}

var deleteFightCmd = &cobra.Command{
	Use:   "delete [fight-id]",
	Short: "Delete a fight with its ratings and comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "fight")
		if err != nil {
			return err
		}
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if err := httpClient.DeleteFight(id); err != nil {
			return fmt.Errorf("failed to delete fight: %w", err)
		}
		success("Fight %d deleted", id)
		return nil
	},
}

func printFight(f *dto.FightResponse) {
	color.New(color.Bold).Printf("#%d %s\n", f.ID, f.Title)
	fmt.Printf("Date: %s\n", f.Date.Format(dateLayout))
	if f.EventID != nil {
		fmt.Printf("Event: %d\n", *f.EventID)
	}
	fmt.Printf("Rating: %s\n", formatRating(f.AverageRating, f.RatingCount, f.UserRating))
}

// formatRating renders "4.50 (2 ratings), yours: 5".
func formatRating(avg float64, count int64, mine *int) string {
	var b strings.Builder
	if count == 0 {
		b.WriteString("not rated yet")
	} else {
		fmt.Fprintf(&b, "%.2f (%d ratings)", avg, count)
	}
	if mine != nil {
		fmt.Fprintf(&b, ", yours: %d", *mine)
	}
	return b.String()
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s ID: %q", what, raw)
	}
	return id, nil
}

func init() {
	fightCmd.AddCommand(listFightsCmd, getFightCmd, createFightCmd, deleteFightCmd)

	listFightsCmd.Flags().Int64("event", 0, "Only fights of this event")
	createFightCmd.Flags().Int64("event", 0, "Event the fight belongs to")
	createFightCmd.Flags().String("title", "", "Title (defaults to \"fighter1 vs fighter2\")")
}
