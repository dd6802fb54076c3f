package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCommentCmd() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   `comment <menu-item-id> "text"`,
		Short: "Comment on a menu item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if text == "" {
				return fmt.Errorf("comment text is required")
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.store.AddComment(args[0], author, text); err != nil {
				return err
			}
			fmt.Println("comment added")
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "comment author (default anonymous)")

	return cmd
}

func newCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <menu-item-id>",
		Short: "List comments on a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			comments, err := a.store.CommentsFor(args[0])
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(comments)
			}
			printComments(comments)
			return nil
		},
	}
}
