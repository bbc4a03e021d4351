package verdict

// Verdict is the pass/fail classification of a similarity score
type Verdict string

const (
	Passed Verdict = "Passed"
	Failed Verdict = "Failed"
)

// Threshold is the score a row must strictly exceed to pass
const Threshold = 0.5

// Decide classifies a similarity score. A score equal to Threshold fails.
func Decide(score float64) Verdict {
	if score > Threshold {
		return Passed
	}
	return Failed
}

func (v Verdict) String() string {
	return string(v)
}
