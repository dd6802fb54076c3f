package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"welboard/internal/engage"
)

func newLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <menu-item-id>",
		Short: "Like a menu item",
		Long:  "Record a like for a menu item. Item IDs are shown by the menu command.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVote(cmd, args[0], func(s *engage.Store, id string) (engage.VoteCount, error) {
				return s.Like(id)
			})
		},
	}
}

func newDislikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dislike <menu-item-id>",
		Short: "Dislike a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVote(cmd, args[0], func(s *engage.Store, id string) (engage.VoteCount, error) {
				return s.Dislike(id)
			})
		},
	}
}

func runVote(cmd *cobra.Command, id string, vote func(*engage.Store, string) (engage.VoteCount, error)) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	count, err := vote(a.store, id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(count)
	}
	fmt.Printf("👍 %d  👎 %d\n", count.Likes, count.Dislikes)
	return nil
}
