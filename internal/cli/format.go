package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"welboard/internal/engage"
	"welboard/internal/lunch"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMenu prints the aggregated menu in text format. The empty states
// stay distinguishable: no menu, service unavailable, or not logged in.
func printMenu(m *lunch.Menu) {
	fmt.Printf("Menu for %s (slot %s)\n\n", m.Date, m.Slot)

	switch m.Status {
	case lunch.StatusNoMenu:
		fmt.Println("No menu today.")
		return
	case lunch.StatusUnavailable:
		fmt.Println("⚠ Meal service unreachable. Try again later.")
		return
	case lunch.StatusUnauthenticated:
		fmt.Println("⚠ Not connected. Set WELBOARD_USERNAME and WELBOARD_PASSWORD (or the config file) to log in.")
		return
	}

	for _, it := range m.Items {
		marker := ""
		if it.Specialty {
			marker = " [라면]"
		}
		fmt.Printf("%s — %s%s\n", it.Course, it.Name, marker)
		if it.Kcal != "" {
			fmt.Printf("  %s kcal\n", it.Kcal)
		}
		if it.Rating.Count > 0 {
			fmt.Printf("  ★ %.1f (%d)\n", it.Rating.Average, it.Rating.Count)
		}
		if ingredients := joinNonEmpty(it.Ingredients); ingredients != "" {
			fmt.Printf("  %s\n", ingredients)
		}
		if toppings := joinNonEmpty(it.Toppings); toppings != "" {
			fmt.Printf("  토핑: %s\n", toppings)
		}
		fmt.Printf("  👍 %d  👎 %d  💬 %d\n", it.Votes.Likes, it.Votes.Dislikes, it.CommentCount)
		fmt.Printf("  id: %s\n\n", it.ID)
	}
}

// joinNonEmpty drops blank ingredient fragments; they are kept positionally
// in the model but hidden at render time.
func joinNonEmpty(list []string) string {
	var kept []string
	for _, s := range list {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ", ")
}

func printComments(comments []engage.Comment) {
	if len(comments) == 0 {
		fmt.Println("No comments yet.")
		return
	}
	for _, c := range comments {
		fmt.Printf("[%s] %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Author, c.Text)
	}
}

func printPosts(posts []engage.Post) {
	if len(posts) == 0 {
		fmt.Println("No posts yet.")
		return
	}
	for _, p := range posts {
		fmt.Printf("#%d %s — %s (%s)\n", p.ID, p.Title, p.Author, p.CreatedAt.Format("2006-01-02 15:04"))
		if p.Content != "" {
			fmt.Printf("  %s\n", p.Content)
		}
		for _, c := range p.Comments {
			fmt.Printf("  ↳ %s: %s\n", c.Author, c.Text)
		}
	}
}
