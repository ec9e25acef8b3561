// Package plan turns a weight and height into a BMI reading and the
// recommendation set for its category. It performs no I/O.
package plan

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Result is the output of a single plan generation.
type Result struct {
	BMI      decimal.Decimal
	Category Category
	Meals    []string
	Workouts []string
	Tips     []string
	Quotes   []string
}

// Generator builds plans. The zero value is not usable; call NewGenerator.
type Generator struct {
	pick pickFunc
}

// Option customizes a Generator.
type Option func(*Generator)

// WithPicker replaces the random index source used for quote selection.
// pick must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(g *Generator) {
		if pick != nil {
			g.pick = pick
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{pick: defaultPick}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ComputeBMI rounds the height in metres to 4 places before squaring, then
// rounds the quotient to 2 places. heightCm must be positive.
func ComputeBMI(weightKg, heightCm decimal.Decimal) decimal.Decimal {
	heightM := heightCm.DivRound(hundred, 4)
	return weightKg.DivRound(heightM.Mul(heightM), 2)
}

// Generate computes the full plan. Both inputs must be positive; validation is
// the caller's job.
func (g *Generator) Generate(weightKg, heightCm decimal.Decimal) Result {
	bmi := ComputeBMI(weightKg, heightCm)
	category := Classify(bmi)
	content := ContentFor(category)
	return Result{
		BMI:      bmi,
		Category: category,
		Meals:    content.Meals,
		Workouts: content.Workouts,
		Tips:     content.Tips,
		Quotes:   randomQuotes(g.pick, QuoteCount),
	}
}
