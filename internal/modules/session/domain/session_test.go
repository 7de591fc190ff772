package domain_test

import (
	"errors"
	"testing"

	"umusanzu/internal/modules/session/domain"
	apperrors "umusanzu/internal/platform/errors"
)

func activeSession(t *testing.T, mode domain.Mode, limit int, queue []string, known map[string]struct{}) *domain.Session {
	t.Helper()
	s := domain.NewSession(mode, limit)
	if err := s.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.Activate(queue, known); err != nil {
		t.Fatalf("activate: %v", err)
	}
	return s
}

func TestSessionCompletesAtBatchLimit(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 2, []string{"Muraho", "Amakuru", "Ego"}, nil)

	if err := s.Submit("Bonjour"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.State() != domain.StateActive {
		t.Fatalf("state after first submit = %v", s.State())
	}
	if err := s.Submit("Des nouvelles"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.State() != domain.StateCompleted {
		t.Fatalf("state after batch limit = %v, want completed", s.State())
	}
	if got := len(s.Contributions()); got != 2 {
		t.Fatalf("contributions = %d, want 2", got)
	}
}

func TestSessionCompletesAtQueueEndBelowLimit(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 10, []string{"Muraho"}, nil)
	if err := s.Submit("Bonjour"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.State() != domain.StateCompleted {
		t.Fatalf("state = %v, want completed", s.State())
	}
}

func TestSessionRejectsEmptyResponseWithoutAdvancing(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 5, []string{"Muraho", "Ego"}, nil)

	if err := s.Submit("   "); !errors.Is(err, apperrors.ErrEmptyInput) {
		t.Fatalf("submit blank = %v, want ErrEmptyInput", err)
	}
	prompt, err := s.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if prompt != "Muraho" {
		t.Fatalf("cursor moved on rejected input, current = %q", prompt)
	}
	if got := len(s.Contributions()); got != 0 {
		t.Fatalf("contributions after rejection = %d", got)
	}
}

func TestSessionSkipAdvancesWithoutRecording(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 5, []string{"Muraho", "Ego"}, nil)
	if err := s.Skip(); err != nil {
		t.Fatalf("skip: %v", err)
	}
	prompt, _ := s.Current()
	if prompt != "Ego" {
		t.Fatalf("current after skip = %q, want Ego", prompt)
	}
	if got := len(s.Contributions()); got != 0 {
		t.Fatalf("skip recorded a contribution")
	}
}

func TestReverseSessionRejectsKnownKirundi(t *testing.T) {
	t.Parallel()

	known := map[string]struct{}{"Muraho": {}}
	s := activeSession(t, domain.ModeReverse, 5, []string{"Bonjour"}, known)

	if err := s.Submit("Muraho"); !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("submit duplicate = %v, want ErrDuplicateEntry", err)
	}
	if err := s.Submit("Mwaramutse"); err != nil {
		t.Fatalf("submit fresh rendering: %v", err)
	}
	got := s.Contributions()
	if len(got) != 1 || got[0].Kirundi != "Mwaramutse" || got[0].French != "Bonjour" {
		t.Fatalf("contributions = %+v", got)
	}
}

func TestReverseLedgerTextsAreFrenchPrompts(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeReverse, 5, []string{"Bonjour", "Merci"}, nil)
	if err := s.Submit("Muraho"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Skip(); err != nil {
		t.Fatalf("skip: %v", err)
	}
	texts := s.LedgerTexts()
	if len(texts) != 1 || texts[0] != "Bonjour" {
		t.Fatalf("ledger texts = %v, want [Bonjour]", texts)
	}
}

func TestTranslateLedgerTextsAreKirundiPrompts(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 5, []string{"Muraho"}, nil)
	if err := s.Submit("Bonjour"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	texts := s.LedgerTexts()
	if len(texts) != 1 || texts[0] != "Muraho" {
		t.Fatalf("ledger texts = %v, want [Muraho]", texts)
	}
}

func TestAuthorSessionEnforcesMinimumLength(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeAuthor, 0, nil, nil)

	if err := s.SubmitPair("Ego niko", "Oui c'est ça"); !errors.Is(err, apperrors.ErrSentenceTooShort) {
		t.Fatalf("short sentence = %v, want ErrSentenceTooShort", err)
	}
	if err := s.SubmitPair("", "Bonjour"); !errors.Is(err, apperrors.ErrEmptyInput) {
		t.Fatalf("empty kirundi = %v, want ErrEmptyInput", err)
	}
	if err := s.SubmitPair("Umwana araryamye mu gitanda", ""); !errors.Is(err, apperrors.ErrEmptyInput) {
		t.Fatalf("empty french = %v, want ErrEmptyInput", err)
	}
	if err := s.SubmitPair("Umwana araryamye mu gitanda", "L'enfant dort dans le lit"); err != nil {
		t.Fatalf("valid pair: %v", err)
	}
	if got := len(s.Contributions()); got != 1 {
		t.Fatalf("contributions = %d, want 1", got)
	}
}

func TestAuthorSessionHasNoQueueOperations(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeAuthor, 0, nil, nil)
	if _, err := s.Current(); !errors.Is(err, apperrors.ErrSessionState) {
		t.Fatalf("current in author mode = %v, want ErrSessionState", err)
	}
	if err := s.Skip(); !errors.Is(err, apperrors.ErrSessionState) {
		t.Fatalf("skip in author mode = %v, want ErrSessionState", err)
	}
	if err := s.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if s.State() != domain.StateCompleted {
		t.Fatalf("state = %v, want completed", s.State())
	}
}

func TestActivateEmptyQueueAborts(t *testing.T) {
	t.Parallel()

	s := domain.NewSession(domain.ModeTranslate, 5)
	if err := s.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.Activate(nil, nil); !errors.Is(err, apperrors.ErrNoNewWork) {
		t.Fatalf("activate empty = %v, want ErrNoNewWork", err)
	}
	if s.State() != domain.StateAborted {
		t.Fatalf("state = %v, want aborted", s.State())
	}
}

func TestBeginOnlyFromIdle(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 5, []string{"Muraho"}, nil)
	if err := s.Begin(); !errors.Is(err, apperrors.ErrSessionState) {
		t.Fatalf("begin while active = %v, want ErrSessionState", err)
	}
	s.Reset()
	if err := s.Begin(); err != nil {
		t.Fatalf("begin after reset: %v", err)
	}
}

func TestResetDropsCollectedWork(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 5, []string{"Muraho", "Ego"}, nil)
	if err := s.Submit("Bonjour"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.Reset()
	if s.State() != domain.StateIdle {
		t.Fatalf("state = %v, want idle", s.State())
	}
	if got := len(s.Contributions()); got != 0 {
		t.Fatalf("contributions survived reset: %d", got)
	}
}

func TestContributionsReturnsACopy(t *testing.T) {
	t.Parallel()

	s := activeSession(t, domain.ModeTranslate, 5, []string{"Muraho", "Ego"}, nil)
	if err := s.Submit("Bonjour"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	first := s.Contributions()
	first[0].French = "mutated"
	if got := s.Contributions()[0].French; got != "Bonjour" {
		t.Fatalf("internal slice mutated through copy: %q", got)
	}
}
