package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	out "umusanzu/internal/modules/merge/adapter/out"
)

func TestFSStoreRoundTrip(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	submissions := filepath.Join(base, "submissions")
	processed := filepath.Join(base, "processed")
	masterPath := filepath.Join(base, "master.csv")

	if err := os.MkdirAll(submissions, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(submissions, "New_Pairs_x.csv"), []byte("data"), 0o644); err != nil {
		t.Fatalf("write submission: %v", err)
	}
	if err := os.WriteFile(filepath.Join(submissions, "readme.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("write noise: %v", err)
	}
	if err := os.WriteFile(masterPath, []byte("old"), 0o644); err != nil {
		t.Fatalf("write master: %v", err)
	}

	store := out.NewFSStore(submissions, processed, masterPath)
	ctx := context.Background()

	names, err := store.ListSubmissions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "New_Pairs_x.csv" {
		t.Fatalf("names = %v", names)
	}

	raw, err := store.ReadSubmission(ctx, "New_Pairs_x.csv")
	if err != nil || raw != "data" {
		t.Fatalf("read submission = %q, %v", raw, err)
	}

	if err := store.MarkProcessed(ctx, "New_Pairs_x.csv"); err != nil {
		t.Fatalf("mark processed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(processed, "New_Pairs_x.csv")); err != nil {
		t.Fatalf("processed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(submissions, "New_Pairs_x.csv")); !os.IsNotExist(err) {
		t.Fatalf("submission still present")
	}

	if err := store.WriteMaster(ctx, "new"); err != nil {
		t.Fatalf("write master: %v", err)
	}
	got, err := store.ReadMaster(ctx)
	if err != nil || got != "new" {
		t.Fatalf("master = %q, %v", got, err)
	}
}

func TestFSStoreMissingSubmissionsDirIsEmpty(t *testing.T) {
	t.Parallel()

	store := out.NewFSStore(filepath.Join(t.TempDir(), "nope"), t.TempDir(), "master.csv")
	names, err := store.ListSubmissions(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("names = %v", names)
	}
}
