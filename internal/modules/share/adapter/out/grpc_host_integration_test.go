package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	shareout "umusanzu/internal/modules/share/adapter/out"
	"umusanzu/internal/modules/share/domain"
)

func TestGRPCHostIntegrationReferencePlugin(t *testing.T) {
	binPath, checksum := buildReferencePlugin(t)
	manifest := domain.Manifest{
		Name:         "reference",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityDeliver, domain.CapabilityAnnounce},
	}

	shareDir := t.TempDir()
	t.Setenv("UMUSANZU_SHARE_DIR", shareDir)

	host := shareout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "reference" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}

	receipt, err := host.Deliver(ctx, manifest, domain.Delivery{
		Filename: "New_Pairs_test.csv",
		Mode:     "New_Pairs",
		Content:  "Kirundi_Transcription,French_Translation\n\"Muraho\",\"Bonjour\"\n",
		Count:    1,
	})
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if receipt.Destination == "" {
		t.Fatalf("expected a destination")
	}
	if _, err := os.Stat(filepath.Join(shareDir, "New_Pairs_test.csv")); err != nil {
		t.Fatalf("delivered file missing: %v", err)
	}

	if err := host.Announce(ctx, manifest, "1 new pair shared"); err != nil {
		t.Fatalf("announce: %v", err)
	}
}

func buildReferencePlugin(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "reference-plugin")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/reference")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build reference plugin: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built plugin: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
