package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "List board posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			posts, err := a.store.Posts()
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(posts)
			}
			printPosts(posts)
			return nil
		},
	}
}

func newPostCmd() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   `post "title" "content"`,
		Short: "Create a board post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			content := strings.Join(args[1:], " ")
			if title == "" {
				return fmt.Errorf("post title is required")
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			post, err := a.store.CreatePost(title, author, content)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(post)
			}
			fmt.Printf("post #%d created\n", post.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "post author (default anonymous)")

	return cmd
}

func newReplyCmd() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   `reply <post-id> "text"`,
		Short: "Comment on a board post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid post ID: %s", args[0])
			}
			text := strings.Join(args[1:], " ")

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.store.AddPostComment(id, author, text); err != nil {
				return err
			}
			fmt.Println("reply added")
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "reply author (default anonymous)")

	return cmd
}
