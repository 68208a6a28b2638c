package domain

const (
	// FeedbackCorrect is returned to the taker for a correct submission.
	FeedbackCorrect = "Correct!"
	// FeedbackWrong is returned to the taker for an incorrect submission.
	FeedbackWrong = "Wrong! Try again."
)

// GradeResult is the only grading information that crosses the trust boundary;
// the answer key itself is never exposed to the taker.
type GradeResult struct {
	IsCorrect bool
	Feedback  string
}

// Grade compares a submitted answer set against a question's answer key.
// SingleChoice is order- and length-sensitive; MultipleChoice compares as sets,
// so order and duplicates are irrelevant.
func Grade(kind QuestionKind, correctAnswers, submitted []string) GradeResult {
	var isCorrect bool
	switch kind {
	case SingleChoice:
		isCorrect = orderedEqual(correctAnswers, submitted)
	case MultipleChoice:
		isCorrect = setEqual(correctAnswers, submitted)
	}

	feedback := FeedbackWrong
	if isCorrect {
		feedback = FeedbackCorrect
	}
	return GradeResult{IsCorrect: isCorrect, Feedback: feedback}
}

func orderedEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, value := range a {
		if b[i] != value {
			return false
		}
	}
	return true
}

func setEqual(a, b []string) bool {
	correctSet := make(map[string]bool, len(a))
	for _, answer := range a {
		correctSet[answer] = true
	}
	submittedSet := make(map[string]bool, len(b))
	for _, answer := range b {
		submittedSet[answer] = true
	}
	if len(correctSet) != len(submittedSet) {
		return false
	}
	for answer := range correctSet {
		if !submittedSet[answer] {
			return false
		}
	}
	return true
}
