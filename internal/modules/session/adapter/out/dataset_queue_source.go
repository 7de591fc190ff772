package out

import (
	"context"

	datasetdomain "umusanzu/internal/modules/dataset/domain"
	datasetservice "umusanzu/internal/modules/dataset/service"
	portout "umusanzu/internal/modules/session/port/out"
)

// DatasetQueueSource feeds sessions from the dataset queue builder.
type DatasetQueueSource struct {
	queues *datasetservice.QueueService
}

func NewDatasetQueueSource(queues *datasetservice.QueueService) *DatasetQueueSource {
	return &DatasetQueueSource{queues: queues}
}

func (a *DatasetQueueSource) TranslationQueue(ctx context.Context) (portout.BuiltQueue, error) {
	return a.build(ctx, datasetdomain.KirundiToFrench)
}

func (a *DatasetQueueSource) ReverseQueue(ctx context.Context) (portout.BuiltQueue, error) {
	return a.build(ctx, datasetdomain.FrenchToKirundi)
}

func (a *DatasetQueueSource) KnownKirundi(ctx context.Context) map[string]struct{} {
	return a.queues.Snapshot(ctx)
}

func (a *DatasetQueueSource) build(ctx context.Context, dir datasetdomain.Direction) (portout.BuiltQueue, error) {
	q, err := a.queues.BuildQueue(ctx, dir)
	if err != nil {
		return portout.BuiltQueue{}, err
	}
	return portout.BuiltQueue{Items: q.Items, UsedFallback: q.UsedFallback}, nil
}
