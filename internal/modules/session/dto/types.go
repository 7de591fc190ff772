package dto

// Mode names accepted by the session usecase.
const (
	ModeTranslate = "translate"
	ModeReverse   = "reverse"
	ModeAuthor    = "author"
)

// StartOutput describes the first prompt of a freshly started session.
// Prompt is empty in author mode, which presents no queue.
type StartOutput struct {
	Prompt       string
	Position     int
	Total        int
	UsedFallback bool
}

// StepOutput describes the session after a submit or skip.
type StepOutput struct {
	Done     bool
	Prompt   string
	Position int
	Total    int
}

// CommitOutput reports where the batch was written and how many pairs it held.
type CommitOutput struct {
	Path  string
	Count int
}
