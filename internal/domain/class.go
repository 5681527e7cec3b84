package domain

import "fmt"

// CabinClass identifies a fare class on a flight.
type CabinClass string

const (
	ClassEconomy        CabinClass = "ECONOMY"
	ClassPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	ClassBusiness       CabinClass = "BUSINESS"
	ClassFirst          CabinClass = "FIRST"
)

type classInfo struct {
	multiplier float64
	label      string
}

// classTable maps each class to its fixed price multiplier and display name.
var classTable = map[CabinClass]classInfo{
	ClassEconomy:        {multiplier: 1.0, label: "Economy"},
	ClassPremiumEconomy: {multiplier: 1.5, label: "Premium Economy"},
	ClassBusiness:       {multiplier: 2.5, label: "Business"},
	ClassFirst:          {multiplier: 4.0, label: "First"},
}

// cabinClasses in display order.
var cabinClasses = []CabinClass{ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst}

func CabinClasses() []CabinClass {
	out := make([]CabinClass, len(cabinClasses))
	copy(out, cabinClasses)
	return out
}

func (c CabinClass) Valid() bool {
	_, ok := classTable[c]
	return ok
}

// Multiplier is the fixed price factor for the class relative to Economy.
func (c CabinClass) Multiplier() float64 {
	return classTable[c].multiplier
}

func (c CabinClass) Label() string {
	return classTable[c].label
}

func ParseCabinClass(s string) (CabinClass, error) {
	c := CabinClass(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown cabin class %q: %w", s, ErrValidation)
	}
	return c, nil
}

// MealCategory classifies purchasable meal add-ons.
type MealCategory string

const (
	MealVegetarian    MealCategory = "VEGETARIAN"
	MealNonVegetarian MealCategory = "NON_VEGETARIAN"
	MealVegan         MealCategory = "VEGAN"
	MealKosher        MealCategory = "KOSHER"
	MealHalal         MealCategory = "HALAL"
)

var mealLabels = map[MealCategory]string{
	MealVegetarian:    "Vegetarian",
	MealNonVegetarian: "Non-Vegetarian",
	MealVegan:         "Vegan",
	MealKosher:        "Kosher",
	MealHalal:         "Halal",
}

func (m MealCategory) Valid() bool {
	_, ok := mealLabels[m]
	return ok
}

func (m MealCategory) Label() string {
	return mealLabels[m]
}

func ParseMealCategory(s string) (MealCategory, error) {
	m := MealCategory(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown meal category %q: %w", s, ErrValidation)
	}
	return m, nil
}
