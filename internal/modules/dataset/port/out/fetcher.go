package out

import "context"

// Fetcher retrieves remote text content. Implementations must report
// transport failures and non-success statuses as errors.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
