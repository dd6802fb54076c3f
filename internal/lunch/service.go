// Package lunch composes the Welstory client, the classifier, the menu
// cache, and the engagement store into a ready-to-render daily menu.
package lunch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"welboard/internal/cache"
	"welboard/internal/engage"
	"welboard/internal/menu"
	"welboard/internal/welstory"
)

// ratingFanout bounds the concurrent rating fetches. A day has at most
// four regular items plus one specialty item.
const ratingFanout = 5

// Status tells a renderer which empty state it is looking at. "No menu"
// and "not connected" must stay distinguishable.
type Status string

const (
	StatusOK              Status = "ok"
	StatusNoMenu          Status = "no_menu"
	StatusUnavailable     Status = "unavailable"
	StatusUnauthenticated Status = "unauthenticated"
)

// Item is a classified menu item with its engagement counters merged in.
type Item struct {
	menu.Item
	Votes        engage.VoteCount `json:"votes"`
	CommentCount int              `json:"comment_count"`
}

// Menu is the aggregated result for one date and meal slot.
type Menu struct {
	Date   string `json:"date"`
	Slot   string `json:"slot"`
	Status Status `json:"status"`
	Items  []Item `json:"items"`
}

// Service orchestrates one menu view: fetch, classify, rate, merge.
type Service struct {
	client *welstory.Client
	store  *engage.Store
	cache  *cache.Cache // optional
}

// NewService creates the aggregator. The cache may be nil, in which case
// every view fetches from the remote API.
func NewService(client *welstory.Client, store *engage.Store, c *cache.Cache) *Service {
	return &Service{client: client, store: store, cache: c}
}

// Menu aggregates the menu for a date and meal slot. Remote fetch failures
// degrade to an unavailable result rather than an error; only engagement
// storage failures propagate, since losing a vote or comment silently is
// worse than failing the view.
func (s *Service) Menu(ctx context.Context, date time.Time, mealSlot string) (*Menu, error) {
	m := &Menu{
		Date:   date.Format("20060102"),
		Slot:   mealSlot,
		Status: StatusOK,
	}

	if !s.client.Authenticated() {
		m.Status = StatusUnauthenticated
		return m, nil
	}

	raws, fromCache := s.cachedMeals(date, mealSlot)
	if !fromCache {
		var err error
		raws, err = s.client.FetchMenu(ctx, date, mealSlot)
		if err != nil {
			slog.Warn("meal fetch failed", "date", m.Date, "slot", mealSlot, "error", err)
			m.Status = StatusUnavailable
			return m, nil
		}
		s.storeMeals(date, mealSlot, raws)
	}

	classified := menu.Classify(raws, date)
	if len(classified) == 0 {
		m.Status = StatusNoMenu
		return m, nil
	}

	s.fillRatings(ctx, date, mealSlot, classified)

	for _, it := range classified {
		votes, err := s.store.VotesFor(it.ID)
		if err != nil {
			return nil, fmt.Errorf("reading votes for %s: %w", it.ID, err)
		}
		comments, err := s.store.CommentsFor(it.ID)
		if err != nil {
			return nil, fmt.Errorf("reading comments for %s: %w", it.ID, err)
		}
		m.Items = append(m.Items, Item{
			Item:         it,
			Votes:        votes,
			CommentCount: len(comments),
		})
	}

	return m, nil
}

// fillRatings fetches each item's rating summary concurrently. Items are
// independent: a failed fetch leaves that one item at the zero rating.
func (s *Service) fillRatings(ctx context.Context, date time.Time, mealSlot string, items []menu.Item) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ratingFanout)

	for i := range items {
		i := i
		g.Go(func() error {
			rating, err := s.client.FetchRating(gctx, date, mealSlot, items[i].RatingKey)
			if err != nil {
				slog.Debug("rating fetch failed", "item", items[i].ID, "error", err)
				return nil
			}
			items[i].Rating = rating
			return nil
		})
	}

	// Goroutines never return an error; Wait is for completion only.
	_ = g.Wait()
}

func (s *Service) cachedMeals(date time.Time, mealSlot string) ([]menu.RawMeal, bool) {
	if s.cache == nil {
		return nil, false
	}
	meals, ok, err := s.cache.Get(date, mealSlot)
	if err != nil {
		slog.Warn("menu cache read failed", "error", err)
		return nil, false
	}
	return meals, ok
}

func (s *Service) storeMeals(date time.Time, mealSlot string, meals []menu.RawMeal) {
	if s.cache == nil || len(meals) == 0 {
		return
	}
	if err := s.cache.Put(date, mealSlot, meals); err != nil {
		slog.Warn("menu cache write failed", "error", err)
	}
}
