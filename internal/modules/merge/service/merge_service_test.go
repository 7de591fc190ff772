package service_test

import (
	"context"
	"strings"
	"testing"

	"umusanzu/internal/modules/merge/service"
)

type fakeStore struct {
	master      string
	submissions map[string]string
	processed   []string
	written     string
	writes      int
}

func (f *fakeStore) ListSubmissions(context.Context) ([]string, error) {
	var names []string
	for name := range f.submissions {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeStore) ReadSubmission(_ context.Context, name string) (string, error) {
	return f.submissions[name], nil
}

func (f *fakeStore) MarkProcessed(_ context.Context, name string) error {
	f.processed = append(f.processed, name)
	delete(f.submissions, name)
	return nil
}

func (f *fakeStore) ReadMaster(context.Context) (string, error) {
	return f.master, nil
}

func (f *fakeStore) WriteMaster(_ context.Context, content string) error {
	f.written = content
	f.writes++
	return nil
}

const master = `Kirundi_Transcription,French_Translation
"Muraho","Bonjour"
"Amakuru",""
`

const submissionHeader = "Kirundi_Transcription,French_Translation\n"

func TestRunFillsAppendsAndMovesFiles(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		master: master,
		submissions: map[string]string{
			"Kirundi_To_French_2026-03-14_09-00-00.csv": submissionHeader + "\"Amakuru\",\"Des nouvelles\"\n" + "\"Muraho\",\"Salut\"\n",
			"French_To_Kirundi_2026-03-14_09-05-00.csv": submissionHeader + "\"Mwaramutse\",\"Bonjour le matin\"\n",
		},
	}
	report, err := service.NewService(store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if report.Filled != 1 || report.Appended != 1 || report.Skipped != 1 {
		t.Fatalf("report = %+v", report)
	}
	if len(report.Processed) != 2 || len(store.processed) != 2 {
		t.Fatalf("processed = %v", report.Processed)
	}
	if store.writes != 1 {
		t.Fatalf("master written %d times, want exactly 1", store.writes)
	}
	if !strings.Contains(store.written, `"Des nouvelles"`) || !strings.Contains(store.written, `"Mwaramutse"`) {
		t.Fatalf("master content = %q", store.written)
	}
	// the already-translated row kept its original translation
	if !strings.Contains(store.written, `"Muraho","Bonjour"`) {
		t.Fatalf("existing translation overwritten: %q", store.written)
	}
}

func TestRunMovesRejectedFilesAside(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		master: master,
		submissions: map[string]string{
			"Kirundi_To_French_2026-03-14_09-00-00.csv": "Wrong,Header\n\"a\",\"b\"\n",
		},
	}
	report, err := service.NewService(store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Rejected) != 1 {
		t.Fatalf("rejected = %v", report.Rejected)
	}
	if len(store.processed) != 1 {
		t.Fatalf("rejected file was not moved to processed: %v", store.processed)
	}
	if _, still := store.submissions["Kirundi_To_French_2026-03-14_09-00-00.csv"]; still {
		t.Fatalf("rejected file still in submissions")
	}
	if len(report.Processed) != 0 {
		t.Fatalf("rejected file counted as merged: %v", report.Processed)
	}
	if store.writes != 0 {
		t.Fatalf("master rewritten with no changes")
	}
}

func TestRunIgnoresForeignFiles(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		master: master,
		submissions: map[string]string{
			"notes.csv": "anything",
		},
	}
	report, err := service.NewService(store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Processed) != 0 || store.writes != 0 {
		t.Fatalf("foreign file was touched: %+v", report)
	}
	if _, still := store.submissions["notes.csv"]; !still {
		t.Fatalf("foreign file was removed")
	}
}

func TestRunWithNoSubmissionsIsANoOp(t *testing.T) {
	t.Parallel()

	store := &fakeStore{master: master, submissions: map[string]string{}}
	report, err := service.NewService(store).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Filled != 0 || report.Appended != 0 || store.writes != 0 {
		t.Fatalf("empty run had effects: %+v", report)
	}
}
