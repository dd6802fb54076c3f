// Package welstory is an HTTP client for the Welstory meal-service API:
// login, daily meal lists, and per-item rating summaries.
package welstory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"welboard/internal/menu"
)

const (
	loginPath  = "/login"
	mealPath   = "/api/meal"
	ratingPath = "/api/meal/getMenuEvalAvg"

	// Fixed header set the service expects on every authenticated request.
	// These are constant configuration, not derived per request.
	deviceID  = "welboard-cli"
	userAgent = "Mozilla/5.0 (welboard)"
)

// ErrNotAuthenticated is returned when a menu fetch is attempted without a
// session. This is a caller bug, distinct from a transport failure: check
// Authenticated before fetching.
var ErrNotAuthenticated = errors.New("welstory: not authenticated")

// Client talks to the Welstory API. Login must succeed before FetchMenu
// can be called; the bearer token is held in memory only and lives until
// the process exits. There is no refresh or retry.
type Client struct {
	baseURL        string
	restaurantCode string
	httpClient     *http.Client
	token          string
}

// New creates a client for the given API base URL and facility code.
func New(baseURL, restaurantCode string) *Client {
	return &Client{
		baseURL:        baseURL,
		restaurantCode: restaurantCode,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Login sends form-encoded credentials and stores the bearer token from
// the Authorization response header. Any non-200 status, transport error,
// or missing header is one uniform failure; callers cannot distinguish a
// bad password from an unreachable service.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{
		"username":    {username},
		"password":    {password},
		"remember-me": {"true"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	token := resp.Header.Get("Authorization")
	if token == "" {
		return fmt.Errorf("login failed: no token in response")
	}

	c.token = token
	return nil
}

// Authenticated reports whether a login has succeeded.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// FetchMenu returns the raw meal list for a date and meal slot. The remote
// API requires the facility code in three separate query parameters; this
// quirk is reproduced exactly. An empty list with a nil error means the
// service had no records for that date.
func (c *Client) FetchMenu(ctx context.Context, date time.Time, mealSlot string) ([]menu.RawMeal, error) {
	if !c.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	params := url.Values{
		"menuDt":                {date.Format("20060102")},
		"menuMealType":          {mealSlot},
		"restaurantCode":        {c.restaurantCode},
		"checkRestaurantCode":   {c.restaurantCode},
		"mainDivRestaurantCode": {c.restaurantCode},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+mealPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating meal request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching meal list: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching meal list: status %d", resp.StatusCode)
	}

	var result mealResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding meal list: %w", err)
	}

	meals := make([]menu.RawMeal, 0, len(result.Data.MealList))
	for _, m := range result.Data.MealList {
		meals = append(meals, m.toRawMeal())
	}
	return meals, nil
}

// FetchRating returns the rating summary for one menu item. Item fetches
// are independent: one failure never alters another item's result. Callers
// absorb the error into the zero rating when they choose to degrade.
func (c *Client) FetchRating(ctx context.Context, date time.Time, mealSlot string, key menu.RatingKey) (menu.Rating, error) {
	params := url.Values{
		"menuDt":              {date.Format("20060102")},
		"hallNo":              {key.HallNo},
		"menuCourseType":      {key.CourseType},
		"menuMealType":        {mealSlot},
		"restaurantCode":      {c.restaurantCode},
		"checkRestaurantCode": {c.restaurantCode},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ratingPath+"?"+params.Encode(), nil)
	if err != nil {
		return menu.Rating{}, fmt.Errorf("creating rating request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return menu.Rating{}, fmt.Errorf("fetching rating: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return menu.Rating{}, fmt.Errorf("fetching rating: status %d", resp.StatusCode)
	}

	var result ratingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return menu.Rating{}, fmt.Errorf("decoding rating: %w", err)
	}

	return menu.Rating{
		Average: result.Data.GradeAvg,
		Count:   result.Data.Total,
	}, nil
}

// setAuthHeaders attaches the fixed authenticated-request header set.
func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("X-Device-Id", deviceID)
	req.Header.Set("X-Autologin", "Y")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", c.token)
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		slog.Warn("closing response body", "error", err)
	}
}
