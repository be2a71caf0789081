package public

import "context"

// Repository serves the unauthenticated hospital directory.
type Repository interface {
	Search(ctx context.Context, req *SearchRequest, limit, offset int) ([]*HospitalSummary, int, error)
}
