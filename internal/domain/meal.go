package domain

import "fmt"

// Meal is a purchasable add-on, soft-deletable independently of flights and
// bookings. Bookings in history may keep referencing a deleted meal.
type Meal struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    MealCategory
	Deleted     bool
}

func NewMeal(name, description string, price float64, category MealCategory) (*Meal, error) {
	if name == "" {
		return nil, fmt.Errorf("meal name is required: %w", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("meal price must not be negative: %w", ErrValidation)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("unknown meal category %q: %w", category, ErrValidation)
	}
	return &Meal{Name: name, Description: description, Price: price, Category: category}, nil
}
