package public

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs the public hospital directory query. The name filter matches a
// case-insensitive substring; surrounding whitespace is ignored.
func (s *Service) Search(ctx context.Context, req *SearchRequest, limit, offset int) ([]*HospitalSummary, int, error) {
	req.Name = strings.TrimSpace(req.Name)
	return s.repo.Search(ctx, req, limit, offset)
}
