package public

import (
	"context"
	"strings"
	"testing"
)

type mockRepo struct {
	hospitals []*HospitalSummary
	lastReq   *SearchRequest
}

func (m *mockRepo) Search(_ context.Context, req *SearchRequest, limit, offset int) ([]*HospitalSummary, int, error) {
	m.lastReq = req
	var out []*HospitalSummary
	for _, h := range m.hospitals {
		if req.DistrictID != 0 && h.DistrictID != req.DistrictID {
			continue
		}
		if req.LevelID != 0 && h.LevelID != req.LevelID {
			continue
		}
		if req.Name != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(req.Name)) {
			continue
		}
		out = append(out, h)
	}
	return out, len(out), nil
}

func directory() []*HospitalSummary {
	return []*HospitalSummary{
		{ID: 1, Name: "Central People's Hospital", DistrictID: 1, LevelID: 1},
		{ID: 2, Name: "Riverside Clinic", DistrictID: 1, LevelID: 2},
		{ID: 3, Name: "Eastern People's Hospital", DistrictID: 2, LevelID: 1},
	}
}

func TestSearch_Filters(t *testing.T) {
	svc := NewService(&mockRepo{hospitals: directory()})

	got, total, err := svc.Search(context.Background(), &SearchRequest{DistrictID: 1}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("district filter: expected 2, got %d", total)
	}

	got, total, _ = svc.Search(context.Background(), &SearchRequest{Name: "people's"}, 20, 0)
	if total != 2 {
		t.Errorf("name filter: expected 2, got %d", total)
	}

	got, total, _ = svc.Search(context.Background(), &SearchRequest{DistrictID: 2, LevelID: 1}, 20, 0)
	if total != 1 || got[0].ID != 3 {
		t.Errorf("combined filter: expected hospital 3, got %+v", got)
	}

	_, total, _ = svc.Search(context.Background(), &SearchRequest{}, 20, 0)
	if total != 3 {
		t.Errorf("no filters should return everything, got %d", total)
	}
}

func TestSearch_TrimsName(t *testing.T) {
	repo := &mockRepo{hospitals: directory()}
	svc := NewService(repo)

	svc.Search(context.Background(), &SearchRequest{Name: "  Riverside  "}, 20, 0)
	if repo.lastReq.Name != "Riverside" {
		t.Errorf("expected trimmed name, got %q", repo.lastReq.Name)
	}
}
