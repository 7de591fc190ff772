package domain_test

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"umusanzu/internal/modules/dataset/domain"
)

func TestBuildFromDatasetSelectsUntranslatedRows(t *testing.T) {
	t.Parallel()
	raw := "id,kirundi_transcription,french_translation\n" +
		`1,"Muraho",` + "\n" +
		`2,"Ego","Oui"` + "\n" +
		`3,"",""` + "\n"
	got := domain.BuildFromDataset(raw)
	if !reflect.DeepEqual(got, []string{"Muraho"}) {
		t.Fatalf("expected [Muraho], got %#v", got)
	}
}

func TestBuildFromDatasetKeepsRowOrder(t *testing.T) {
	t.Parallel()
	raw := "kirundi_transcription,french_translation\nA,\nB,\nC,Oui\nD,\n"
	got := domain.BuildFromDataset(raw)
	if !reflect.DeepEqual(got, []string{"A", "B", "D"}) {
		t.Fatalf("expected row order preserved, got %#v", got)
	}
}

func TestBuildFromDatasetFailsClosedOnMissingColumn(t *testing.T) {
	t.Parallel()
	raw := "id,phrase\n1,Muraho\n"
	if got := domain.BuildFromDataset(raw); len(got) != 0 {
		t.Fatalf("missing columns must yield empty result, got %#v", got)
	}
}

func TestBuildFromDatasetToleratesShortRows(t *testing.T) {
	t.Parallel()
	raw := "id,kirundi_transcription,french_translation\n1\n2,Ego\n3,Muraho,\n"
	got := domain.BuildFromDataset(raw)
	// Row 1 is shorter than the kirundi column; row 2 has no translation
	// field at all, which counts as untranslated.
	if !reflect.DeepEqual(got, []string{"Ego", "Muraho"}) {
		t.Fatalf("expected [Ego Muraho], got %#v", got)
	}
}

func TestKnownKirundiIncludesTranslatedRows(t *testing.T) {
	t.Parallel()
	raw := "kirundi_transcription,french_translation\nMuraho,\nEgo,Oui\n"
	known := domain.KnownKirundi(raw)
	if len(known) != 2 {
		t.Fatalf("expected 2 known phrases, got %v", known)
	}
	if _, ok := known["Ego"]; !ok {
		t.Fatalf("translated rows must be known too")
	}
}

func TestBuildFromPromptList(t *testing.T) {
	t.Parallel()
	plain := "Bonjour\n\nÇa va bien ?\n"
	if got := domain.BuildFromPromptList(plain); !reflect.DeepEqual(got, []string{"Bonjour", "Ça va bien ?"}) {
		t.Fatalf("plain list: got %#v", got)
	}
	headered := "french_prompt\n\"Bonjour\"\nMerci\n"
	if got := domain.BuildFromPromptList(headered); !reflect.DeepEqual(got, []string{"Bonjour", "Merci"}) {
		t.Fatalf("headered list: got %#v", got)
	}
}

func TestFilterSubmitted(t *testing.T) {
	t.Parallel()
	items := []string{"Muraho", "Ego", "Uraho"}
	submitted := map[string]struct{}{"Muraho": {}}
	got := domain.FilterSubmitted(items, submitted)
	if !reflect.DeepEqual(got, []string{"Ego", "Uraho"}) {
		t.Fatalf("expected ledger entries removed in order, got %#v", got)
	}
	if len(got) != len(items)-1 {
		t.Fatalf("size contract violated")
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	items := []string{"a", "b", "c", "d", "e", "f"}
	shuffled := make([]string, len(items))
	copy(shuffled, items)
	domain.Shuffle(shuffled, rng.Intn)

	sortedIn := append([]string(nil), items...)
	sortedOut := append([]string(nil), shuffled...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	if !reflect.DeepEqual(sortedIn, sortedOut) {
		t.Fatalf("shuffle changed the multiset: %#v vs %#v", items, shuffled)
	}
}

func TestShuffleVisitsEveryPositionPair(t *testing.T) {
	t.Parallel()
	// With a fixed seed the permutation is deterministic; make sure the
	// last index participates (classic off-by-one in Fisher–Yates).
	moved := false
	for seed := int64(0); seed < 20 && !moved; seed++ {
		rng := rand.New(rand.NewSource(seed))
		items := []string{"a", "b", "c"}
		domain.Shuffle(items, rng.Intn)
		if items[2] != "c" {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("last element never moved across 20 seeds")
	}
}

func TestFallbackReturnsACopy(t *testing.T) {
	t.Parallel()
	first := domain.Fallback(domain.KirundiToFrench)
	if len(first) == 0 {
		t.Fatalf("fallback list must not be empty")
	}
	first[0] = "mutated"
	second := domain.Fallback(domain.KirundiToFrench)
	if second[0] == "mutated" {
		t.Fatalf("fallback must hand out copies")
	}
}
