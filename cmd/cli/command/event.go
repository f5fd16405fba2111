package command

import (
	"fmt"
	"time"

	"fightcard/cmd/cli/dto"

	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Browse and create events",
}

var listEventsCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := newClient().ListEvents()
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("#%d  %s  %-8s %s\n", e.ID, e.Date.Format(dateLayout), e.Promotion, e.Title)
		}
		return nil
	},
}

var createEventCmd = &cobra.Command{
	Use:   "create [title] [YYYY-MM-DD]",
	Short: "Add an event",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse(dateLayout, args[1])
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[1])
		}
		promotion, _ := cmd.Flags().GetString("promotion")

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		event, err := httpClient.CreateEvent(&dto.EventRequest{Title: args[0], Promotion: promotion, Date: date})
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		success("Event %d created: %s (%s)", event.ID, event.Title, event.Promotion)
		return nil
	},
}

func init() {
	eventCmd.AddCommand(listEventsCmd, createEventCmd)
	createEventCmd.Flags().String("promotion", "", "Promotion (server default UFC)")
}
