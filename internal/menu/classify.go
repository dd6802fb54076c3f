package menu

import (
	"strings"
	"time"
)

const (
	// SelfServiceCourse is the sentinel course label. The remote list uses
	// it for the self-service counter; it ends the regular-item scan.
	SelfServiceCourse = "셀프코너"

	// specialtyMarker selects the single ramen-style item of the day,
	// matched against both the course label and the menu name.
	specialtyMarker = "라면"

	// toppingMarker splits a specialty ingredient list into the base type
	// group and the topping group.
	toppingMarker = "[토핑]"

	maxRegular = 4
)

// Classify transforms raw meal records into classified menu items for the
// given date. It is pure: ratings are left at their zero value and filled
// in later by the aggregator.
//
// Regular items are taken in list order until the self-service sentinel or
// four items, whichever comes first. The specialty item is picked by an
// independent scan of the full list; at most one is kept. A date with no
// matching records yields an empty result, which is a valid "no menu today"
// state rather than an error.
func Classify(raws []RawMeal, date time.Time) []Item {
	var items []Item

	for _, r := range raws {
		if r.Course == SelfServiceCourse {
			break
		}
		if isSpecialty(r) {
			continue
		}
		items = append(items, Item{
			ID:          StableID(date, r.Course, r.Name),
			Course:      r.Course,
			Name:        r.Name,
			Kcal:        r.Kcal,
			Ingredients: splitIngredients(r.SubMenu),
			ImageURL:    imageURL(r),
			RatingKey:   r.RatingKey,
		})
		if len(items) == maxRegular {
			break
		}
	}

	for _, r := range raws {
		if !isSpecialty(r) {
			continue
		}
		ingredients, toppings := splitToppings(splitIngredients(r.SubMenu))
		items = append(items, Item{
			ID:          StableID(date, r.Course, r.Name),
			Course:      r.Course,
			Name:        r.Name,
			Kcal:        r.Kcal,
			Ingredients: ingredients,
			Toppings:    toppings,
			ImageURL:    imageURL(r),
			Specialty:   true,
			RatingKey:   r.RatingKey,
		})
		break
	}

	return items
}

func isSpecialty(r RawMeal) bool {
	return strings.Contains(r.Course, specialtyMarker) ||
		strings.Contains(r.Name, specialtyMarker)
}

// splitIngredients splits the comma-joined ingredient string into an
// ordered list. Empty fragments are kept in place; filtering blanks is the
// render layer's job.
func splitIngredients(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// splitToppings divides a specialty ingredient list at the first element
// carrying the topping marker. Elements before it form the type group;
// the marked element and everything after it form the topping group, with
// the marker text itself removed. A list with no marker is wholly type.
func splitToppings(list []string) (ingredients, toppings []string) {
	for i, e := range list {
		if !strings.Contains(e, toppingMarker) {
			continue
		}
		ingredients = list[:i]
		for _, t := range list[i:] {
			stripped := strings.TrimSpace(strings.ReplaceAll(t, toppingMarker, ""))
			if stripped == "" && strings.Contains(t, toppingMarker) {
				continue // bare marker element
			}
			toppings = append(toppings, stripped)
		}
		return ingredients, toppings
	}
	return list, nil
}

func imageURL(r RawMeal) string {
	if r.PhotoURL == "" || r.PhotoCode == "" {
		return ""
	}
	return r.PhotoURL + r.PhotoCode
}
