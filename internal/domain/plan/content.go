package plan

// Content is the static recommendation set attached to a category.
type Content struct {
	Meals    []string
	Workouts []string
	Tips     []string
}

var contentByCategory = map[Category]Content{
	Underweight: {
		Meals: []string{
			"Breakfast: Oatmeal with banana, peanut butter, and milk",
			"Lunch: Chicken wrap, quinoa salad, olive oil dressing",
			"Snack: Greek yogurt + mixed nuts",
			"Dinner: Salmon, sweet potato, steamed veggies",
		},
		Workouts: []string{
			"3x/week full-body strength (squats, presses, rows)",
			"2x/week light cardio 20–30 min",
			"Progressive overload: +2.5% weights weekly",
		},
		Tips: []string{
			"Eat every 3–4 hours; add healthy fats.",
			"Track progress weekly; prioritize sleep 7–9h.",
			"Protein ~1.6–2.2 g/kg/day.",
		},
	},
	NormalWeight: {
		Meals: []string{
			"Breakfast: Scrambled eggs, whole-grain toast, fruit",
			"Lunch: Grilled chicken bowl (rice, veggies)",
			"Snack: Apple + almonds",
			"Dinner: Lean beef stir-fry with brown rice",
		},
		Workouts: []string{
			"3–4x/week mix: strength + HIIT",
			"Daily 7–10k steps",
			"Mobility 10 min after sessions",
		},
		Tips: []string{
			"Stay consistent; keep portions balanced.",
			"Hydrate: 2–3 liters/day.",
			"Prioritize protein and fiber each meal.",
		},
	},
	Overweight: {
		Meals: []string{
			"Breakfast: Protein smoothie (whey, berries, spinach)",
			"Lunch: Turkey salad (greens, avocado, vinaigrette)",
			"Snack: Cottage cheese + cucumber",
			"Dinner: Baked chicken, cauliflower mash, broccoli",
		},
		Workouts: []string{
			"3x/week strength (compound lifts)",
			"3x/week low-impact cardio 30–40 min",
			"Aim for +NEAT: more walking, stairs",
		},
		Tips: []string{
			"Maintain a gentle calorie deficit (200–500 kcal).",
			"Plan meals; avoid liquid calories.",
			"Strength train to preserve muscle.",
		},
	},
	Obesity: {
		Meals: []string{
			"Breakfast: Veg omelet, side salad",
			"Lunch: Tuna salad lettuce wraps",
			"Snack: Protein yogurt",
			"Dinner: Grilled fish, roasted vegetables",
		},
		Workouts: []string{
			"4x/week low-impact cardio 20–30 min (bike/elliptical)",
			"2–3x/week machine-based strength, full-body",
			"Short walks after meals (5–10 min)",
		},
		Tips: []string{
			"Start small; build habits steadily.",
			"Choose low-impact activities you enjoy.",
			"Seek medical guidance for personalized targets.",
		},
	},
}

// ContentFor returns a copy of the recommendations for c.
// Unrecognized categories get the Obesity content.
func ContentFor(c Category) Content {
	content, ok := contentByCategory[c]
	if !ok {
		content = contentByCategory[Obesity]
	}
	return Content{
		Meals:    cloneStrings(content.Meals),
		Workouts: cloneStrings(content.Workouts),
		Tips:     cloneStrings(content.Tips),
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
