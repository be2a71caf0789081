package statistics

import (
	"context"
	"sort"
)

const (
	stressHigh   = "high"
	stressMedium = "medium"
	stressNormal = "normal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	return s.repo.Dashboard(ctx)
}

// HospitalRank returns the hospitals matching the filter with their load
// classification, most stressed first. The ratio is outpatient capacity over
// bed total; hospitals without both figures rank as normal with no ratio.
func (s *Service) HospitalRank(ctx context.Context, f RankFilter) ([]*HospitalRank, error) {
	rows, err := s.repo.RankRows(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*HospitalRank, 0, len(rows))
	for _, rr := range rows {
		hr := &HospitalRank{
			HospitalID:         rr.HospitalID,
			HospitalName:       rr.HospitalName,
			DistrictName:       rr.DistrictName,
			LevelName:          rr.LevelName,
			BedTotal:           rr.BedTotal,
			OutpatientCapacity: rr.OutpatientCapacity,
			RoomCount:          rr.RoomCount,
			DeviceCount:        rr.DeviceCount,
			StaffCount:         rr.StaffCount,
			StressLevel:        stressNormal,
		}
		if rr.BedTotal != nil && *rr.BedTotal > 0 && rr.OutpatientCapacity != nil {
			ratio := float64(*rr.OutpatientCapacity) / float64(*rr.BedTotal)
			hr.StressRatio = &ratio
			switch {
			case ratio > 5:
				hr.StressLevel = stressHigh
			case ratio > 3:
				hr.StressLevel = stressMedium
			}
		}
		out = append(out, hr)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := 0.0, 0.0
		if out[i].StressRatio != nil {
			ri = *out[i].StressRatio
		}
		if out[j].StressRatio != nil {
			rj = *out[j].StressRatio
		}
		return ri > rj
	})
	return out, nil
}
