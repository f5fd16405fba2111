package command

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Read and post fight comments",
}

var listCommentsCmd = &cobra.Command{
	Use:   "list [fight-id]",
	Short: "Show comments, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fightID, err := parseID(args[0], "fight")
		if err != nil {
			return err
		}
		comments, err := newClient().ListComments(fightID)
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}
		if len(comments) == 0 {
			fmt.Println("No comments yet.")
			return nil
		}
		for _, c := range comments {
			color.Cyan("[%s] %s", c.CreatedAt.Local().Format("2006-01-02 15:04"), c.Username)
			fmt.Println(c.Content)
			fmt.Println()
		}
		return nil
	},
}

var postCommentCmd = &cobra.Command{
	Use:   "post [fight-id] [content...]",
	Short: "Comment on a fight",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fightID, err := parseID(args[0], "fight")
		if err != nil {
			return err
		}
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		comment, err := httpClient.PostComment(fightID, strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("failed to post comment: %w", err)
		}
		success("Comment %d posted as %s", comment.ID, comment.Username)
		return nil
	},
}

func init() {
	commentCmd.AddCommand(listCommentsCmd, postCommentCmd)
}
