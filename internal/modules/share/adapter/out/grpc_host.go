package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	sharerpc "umusanzu/internal/modules/share/adapter/out/rpc"
	"umusanzu/internal/modules/share/domain"
	shareout "umusanzu/internal/modules/share/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() shareout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	capabilities := make([]domain.Capability, 0, len(meta.Capabilities))
	for _, capability := range meta.Capabilities {
		capabilities = append(capabilities, domain.Capability(capability))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Capabilities: capabilities}, nil
}

func (h *GRPCHost) Deliver(ctx context.Context, manifest domain.Manifest, delivery domain.Delivery) (domain.Receipt, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Receipt{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Deliver(callCtx, &sharerpc.DeliverRequest{
		Filename: delivery.Filename,
		Mode:     delivery.Mode,
		Content:  delivery.Content,
		Count:    int32(delivery.Count),
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.Receipt{}, fmt.Errorf("%w: %s", domain.ErrPluginTimeout, delivery.Filename)
		}
		return domain.Receipt{}, fmt.Errorf("deliver batch: %w", err)
	}
	return domain.Receipt{Destination: response.Destination, Detail: response.Detail}, nil
}

func (h *GRPCHost) Announce(ctx context.Context, manifest domain.Manifest, message string) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if err := client.Announce(callCtx, &sharerpc.AnnounceRequest{Message: message}); err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: announce", domain.ErrPluginTimeout)
		}
		return fmt.Errorf("announce: %w", err)
	}
	return nil
}

func (h *GRPCHost) connect(manifest domain.Manifest, startTimeout time.Duration) (sharerpc.SharePluginClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  sharerpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          sharerpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start plugin client: %w", err)
	}
	raw, err := rpcClient.Dispense(sharerpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense plugin: %w", err)
	}
	typed, ok := raw.(sharerpc.SharePluginClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("plugin rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
