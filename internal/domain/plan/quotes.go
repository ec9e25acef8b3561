package plan

import "math/rand"

// QuoteCount is how many quotes a generated plan carries.
const QuoteCount = 3

var quotePool = [...]string{
	"Every step brings you closer to your goal.",
	"Your body can do it — your mind just needs to believe.",
	"Small progress is still progress.",
	"Discipline beats motivation.",
	"One workout at a time.",
	"Show up for yourself.",
	"Health is an investment, not an expense.",
}

// QuotePool returns a copy of the motivational quote pool.
func QuotePool() []string {
	return cloneStrings(quotePool[:])
}

// pickFunc returns an index in [0, n).
type pickFunc func(n int) int

// randomQuotes draws count quotes independently, so repeats are possible.
func randomQuotes(pick pickFunc, count int) []string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, quotePool[pick(len(quotePool))])
	}
	return out
}

func defaultPick(n int) int { return rand.Intn(n) }
