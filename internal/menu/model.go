// Package menu provides the canonical menu-item model and the classifier
// that builds it from raw Welstory meal records.
package menu

import (
	"strings"
	"time"
)

// RawMeal is one record from the remote meal list, as decoded off the wire.
type RawMeal struct {
	Course    string
	Name      string
	Kcal      string
	SubMenu   string // comma-joined ingredient string
	PhotoURL  string // base photo URL
	PhotoCode string
	RatingKey RatingKey
}

// RatingKey carries the lookup fields the rating endpoint requires.
// The values come verbatim from the meal record.
type RatingKey struct {
	HallNo     string
	CourseType string
	MealType   string
}

// Rating is a crowd-sourced rating summary for one menu item.
// The zero value means "unrated" and is the default on any fetch failure.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Item is a classified menu item ready for rendering and engagement lookup.
type Item struct {
	ID          string    `json:"id"`
	Course      string    `json:"course"`
	Name        string    `json:"name"`
	Kcal        string    `json:"kcal,omitempty"`
	Ingredients []string  `json:"ingredients"`
	Toppings    []string  `json:"toppings,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Rating      Rating    `json:"rating"`
	Specialty   bool      `json:"specialty,omitempty"`
	RatingKey   RatingKey `json:"-"`
}

// StableID derives the join key between a menu item and its engagement
// records. It is a pure function of date, course, and name: two fetches of
// the same logical item on the same date always produce the same ID. Runs
// of whitespace are collapsed to single underscores.
func StableID(date time.Time, course, name string) string {
	return date.Format("20060102") + "_" + normalize(course) + "_" + normalize(name)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
