package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/pkg/validation"
)

// flexInt accepts a JSON number or a numeric string that fits in 32 bits.
// Fractions are rejected.
type flexInt struct {
	Value int
	Set   bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = flexInt{}
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return &validation.FieldError{Field: "calories", Message: "must be an integer"}
		}
		raw = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		fv, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || fv != math.Trunc(fv) {
			return &validation.FieldError{Field: "calories", Message: "must be an integer"}
		}
		if fv > math.MaxInt32 || fv < math.MinInt32 {
			return &validation.FieldError{Field: "calories", Message: "is out of range"}
		}
		n = int64(fv)
	}
	*f = flexInt{Value: int(n), Set: true}
	return nil
}

// mealPayload is the loosely typed request body. toInput turns it into a
// typed application.MealInput or a validation error.
type mealPayload struct {
	MealName  string  `json:"mealName"`
	Calories  flexInt `json:"calories"`
	Date      string  `json:"date"`
	UserEmail string  `json:"userEmail"`
}

func (p mealPayload) toInput() (application.MealInput, error) {
	in := application.MealInput{
		MealName:  p.MealName,
		Calories:  p.Calories.Value,
		UserEmail: p.UserEmail,
	}
	if !p.Calories.Set {
		return in, &application.ValidationError{Fields: map[string]string{"calories": "is required"}}
	}
	if strings.TrimSpace(p.Date) != "" {
		d, err := application.ParseDate("date", p.Date)
		if err != nil {
			return in, err
		}
		in.Date = &d
	}
	return in, nil
}
