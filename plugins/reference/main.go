package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sharerpc "umusanzu/internal/modules/share/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *sharerpc.Empty) (*sharerpc.Metadata, error) {
	return &sharerpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"deliver", "announce"},
	}, nil
}

func (s *server) Deliver(_ context.Context, in *sharerpc.DeliverRequest) (*sharerpc.DeliverResponse, error) {
	if in.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	dir := os.Getenv("UMUSANZU_SHARE_DIR")
	if dir == "" {
		dir = "shared"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create share dir: %w", err)
	}
	path := filepath.Join(dir, in.Filename)
	if err := os.WriteFile(path, []byte(in.Content), 0o644); err != nil {
		return nil, fmt.Errorf("write shared file: %w", err)
	}
	return &sharerpc.DeliverResponse{
		Destination: path,
		Detail:      fmt.Sprintf("%d pairs (%s)", in.Count, in.Mode),
	}, nil
}

func (s *server) Announce(_ context.Context, in *sharerpc.AnnounceRequest) (*sharerpc.Empty, error) {
	if in.Message == "" {
		return nil, fmt.Errorf("message is required")
	}
	fmt.Fprintln(os.Stderr, in.Message)
	return &sharerpc.Empty{}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: sharerpc.HandshakeConfig,
		Plugins:         sharerpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
