package out

import (
	"context"

	"umusanzu/internal/modules/share/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Deliver(ctx context.Context, manifest domain.Manifest, delivery domain.Delivery) (domain.Receipt, error)
	Announce(ctx context.Context, manifest domain.Manifest, message string) error
}
