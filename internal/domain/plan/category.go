package plan

import "github.com/shopspring/decimal"

// Category is the BMI band an entry falls into.
// The string values are the names exposed over the API and stored in the database.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obesity      Category = "Obesity"
)

// Categories lists every recognized category from lowest to highest BMI band.
var Categories = []Category{Underweight, NormalWeight, Overweight, Obesity}

func (c Category) String() string { return string(c) }

// Known reports whether c is one of the four recognized categories.
func (c Category) Known() bool {
	switch c {
	case Underweight, NormalWeight, Overweight, Obesity:
		return true
	default:
		return false
	}
}

// Classify maps an already rounded BMI onto its category.
// Lower bounds are inclusive: 18.5 is NormalWeight, 25.0 Overweight, 30.0 Obesity.
func Classify(bmi decimal.Decimal) Category {
	v := bmi.InexactFloat64()
	switch {
	case v < 18.5:
		return Underweight
	case v < 25.0:
		return NormalWeight
	case v < 30.0:
		return Overweight
	default:
		return Obesity
	}
}
