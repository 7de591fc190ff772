package domain

import (
	"strings"

	apperrors "umusanzu/internal/platform/errors"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateActive
	StateCompleted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// Mode selects one of the three contribution workflows.
type Mode string

const (
	// ModeTranslate shows a Kirundi phrase, collects its French translation.
	ModeTranslate Mode = "translate"
	// ModeReverse shows a French prompt, collects its Kirundi rendering.
	ModeReverse Mode = "reverse"
	// ModeAuthor collects freely authored Kirundi/French pairs.
	ModeAuthor Mode = "author"
)

// FilenamePrefix is the export filename family for a mode. The merge pipeline
// dispatches on these prefixes.
func (m Mode) FilenamePrefix() string {
	switch m {
	case ModeTranslate:
		return "Kirundi_To_French"
	case ModeReverse:
		return "French_To_Kirundi"
	default:
		return "New_Pairs"
	}
}

// Contribution is one completed pair. Kirundi is always the first export
// column regardless of which side was prompted.
type Contribution struct {
	Kirundi string
	French  string
}

const minAuthoredTokens = 4

// Session drives one bounded batch of items through
// present -> collect -> validate -> advance. A Session is owned by exactly
// one interaction at a time and is not reentrant.
type Session struct {
	mode       Mode
	state      State
	queue      []string
	cursor     int
	batchLimit int
	known      map[string]struct{}
	collected  []Contribution
}

func NewSession(mode Mode, batchLimit int) *Session {
	return &Session{mode: mode, state: StateIdle, batchLimit: batchLimit}
}

func (s *Session) Mode() Mode   { return s.mode }
func (s *Session) State() State { return s.state }

// Begin marks the session as loading its queue. Only legal from Idle.
func (s *Session) Begin() error {
	if s.state != StateIdle {
		return apperrors.ErrSessionState
	}
	s.state = StateLoading
	return nil
}

// Activate installs the queue and moves to Active. The author workflow has no
// queue and accepts submissions until the caller ends the session; known is
// the reverse-mode duplicate snapshot and is ignored by the other modes.
func (s *Session) Activate(queue []string, known map[string]struct{}) error {
	if s.state != StateLoading {
		return apperrors.ErrSessionState
	}
	s.queue = queue
	s.known = known
	s.cursor = 0
	s.collected = nil
	if s.mode != ModeAuthor && s.bound() == 0 {
		s.state = StateAborted
		return apperrors.ErrNoNewWork
	}
	s.state = StateActive
	return nil
}

// Abort marks an unrecoverable load failure.
func (s *Session) Abort() {
	if s.state == StateLoading {
		s.state = StateAborted
	}
}

func (s *Session) bound() int {
	if s.batchLimit < len(s.queue) {
		return s.batchLimit
	}
	return len(s.queue)
}

// Current returns the item under the cursor. Never legal once the batch
// bound is reached: the session is Completed by then.
func (s *Session) Current() (string, error) {
	if s.state != StateActive || s.mode == ModeAuthor {
		return "", apperrors.ErrSessionState
	}
	return s.queue[s.cursor], nil
}

// Progress reports the cursor position and the batch bound.
func (s *Session) Progress() (int, int) {
	return s.cursor, s.bound()
}

// Submit validates a translate/reverse response. On validation failure the
// session state is untouched and the caller re-prompts.
func (s *Session) Submit(response string) error {
	if s.state != StateActive || s.mode == ModeAuthor {
		return apperrors.ErrSessionState
	}
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		return apperrors.ErrEmptyInput
	}
	if s.mode == ModeReverse {
		if _, ok := s.known[trimmed]; ok {
			return apperrors.ErrDuplicateEntry
		}
	}

	prompt := s.queue[s.cursor]
	if s.mode == ModeTranslate {
		s.collected = append(s.collected, Contribution{Kirundi: prompt, French: trimmed})
	} else {
		s.collected = append(s.collected, Contribution{Kirundi: trimmed, French: prompt})
	}
	s.advance()
	return nil
}

// SubmitPair records an authored pair. The Kirundi sentence must carry at
// least four whitespace-separated words.
func (s *Session) SubmitPair(kirundi, french string) error {
	if s.state != StateActive || s.mode != ModeAuthor {
		return apperrors.ErrSessionState
	}
	kirundi = strings.TrimSpace(kirundi)
	french = strings.TrimSpace(french)
	if kirundi == "" || french == "" {
		return apperrors.ErrEmptyInput
	}
	if len(strings.Fields(kirundi)) < minAuthoredTokens {
		return apperrors.ErrSentenceTooShort
	}
	s.collected = append(s.collected, Contribution{Kirundi: kirundi, French: french})
	return nil
}

// Skip advances past the current item without recording anything.
func (s *Session) Skip() error {
	if s.state != StateActive || s.mode == ModeAuthor {
		return apperrors.ErrSessionState
	}
	s.advance()
	return nil
}

func (s *Session) advance() {
	s.cursor++
	if s.cursor >= s.bound() {
		s.state = StateCompleted
	}
}

// Complete ends an author session explicitly; the other modes complete at
// the batch bound.
func (s *Session) Complete() error {
	if s.state != StateActive || s.mode != ModeAuthor {
		return apperrors.ErrSessionState
	}
	s.state = StateCompleted
	return nil
}

// Contributions returns a copy of everything collected so far.
func (s *Session) Contributions() []Contribution {
	out := make([]Contribution, len(s.collected))
	copy(out, s.collected)
	return out
}

// LedgerTexts returns the prompted side of each contribution: the Kirundi
// phrase for translate/author, the French prompt for reverse. These are the
// strings the ledger must exclude from future queues.
func (s *Session) LedgerTexts() []string {
	out := make([]string, 0, len(s.collected))
	for _, c := range s.collected {
		if s.mode == ModeReverse {
			out = append(out, c.French)
		} else {
			out = append(out, c.Kirundi)
		}
	}
	return out
}

// Reset drops all session state and returns to Idle. Legal from any state.
func (s *Session) Reset() {
	s.queue = nil
	s.known = nil
	s.cursor = 0
	s.collected = nil
	s.state = StateIdle
}
