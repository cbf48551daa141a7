package entities

// Question is a multiple-choice question waiting for the user's answer.
type Question struct {
	Term    string   // prompt shown to the user
	Correct string   // correct translation
	Options []string // shuffled options, exactly one equals Correct
}

// IsCorrect reports whether answer is exactly the correct translation.
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.Correct
}
