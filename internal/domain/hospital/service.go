package hospital

import (
	"context"
	"fmt"

	"github.com/hra/hra/internal/platform/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// -- Districts --

func (s *Service) CreateDistrict(ctx context.Context, d *District) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.CreateDistrict(ctx, d)
}

func (s *Service) GetDistrict(ctx context.Context, id int64) (*District, error) {
	return s.repo.GetDistrict(ctx, id)
}

func (s *Service) UpdateDistrict(ctx context.Context, d *District) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.UpdateDistrict(ctx, d)
}

func (s *Service) DeleteDistrict(ctx context.Context, id int64) error {
	return s.repo.DeleteDistrict(ctx, id)
}

func (s *Service) ListDistricts(ctx context.Context, limit, offset int) ([]*District, int, error) {
	return s.repo.ListDistricts(ctx, limit, offset)
}

// -- Levels --

func (s *Service) CreateLevel(ctx context.Context, l *HospitalLevel) error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.CreateLevel(ctx, l)
}

func (s *Service) GetLevel(ctx context.Context, id int64) (*HospitalLevel, error) {
	return s.repo.GetLevel(ctx, id)
}

func (s *Service) UpdateLevel(ctx context.Context, l *HospitalLevel) error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.UpdateLevel(ctx, l)
}

func (s *Service) DeleteLevel(ctx context.Context, id int64) error {
	return s.repo.DeleteLevel(ctx, id)
}

func (s *Service) ListLevels(ctx context.Context, limit, offset int) ([]*HospitalLevel, int, error) {
	return s.repo.ListLevels(ctx, limit, offset)
}

// -- Hospitals --

func (s *Service) CreateHospital(ctx context.Context, h *Hospital) error {
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	if h.DistrictID == 0 {
		return fmt.Errorf("district_id is required")
	}
	if h.LevelID == 0 {
		return fmt.Errorf("level_id is required")
	}
	return s.repo.CreateHospital(ctx, h)
}

func (s *Service) GetHospital(ctx context.Context, id int64) (*Hospital, error) {
	return s.repo.GetHospital(ctx, id)
}

// UpdateHospital allows city admins to update any hospital and hospital
// admins only their own.
func (s *Service) UpdateHospital(ctx context.Context, h *Hospital) error {
	existing, err := s.repo.GetHospital(ctx, h.ID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	if h.DistrictID == 0 {
		h.DistrictID = existing.DistrictID
	}
	if h.LevelID == 0 {
		h.LevelID = existing.LevelID
	}
	return s.repo.UpdateHospital(ctx, h)
}

func (s *Service) DeleteHospital(ctx context.Context, id int64) error {
	return s.repo.DeleteHospital(ctx, id)
}

func (s *Service) ListHospitals(ctx context.Context, limit, offset int) ([]*Hospital, int, error) {
	return s.repo.ListHospitals(ctx, limit, offset)
}

// -- Department placements --

func (s *Service) CreateDepartmentLink(ctx context.Context, hd *HospitalDepartment) error {
	if err := auth.BindOwnedHospital(ctx, &hd.HospitalID); err != nil {
		return err
	}
	if hd.DeptID == 0 {
		return fmt.Errorf("dept_id is required")
	}
	return s.repo.CreateDepartmentLink(ctx, hd)
}

func (s *Service) GetDepartmentLink(ctx context.Context, id int64) (*HospitalDepartment, error) {
	return s.repo.GetDepartmentLink(ctx, id)
}

func (s *Service) UpdateDepartmentLink(ctx context.Context, hd *HospitalDepartment) error {
	existing, err := s.repo.GetDepartmentLink(ctx, hd.ID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	return s.repo.UpdateDepartmentLink(ctx, hd)
}

func (s *Service) DeleteDepartmentLink(ctx context.Context, id int64) error {
	existing, err := s.repo.GetDepartmentLink(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	return s.repo.DeleteDepartmentLink(ctx, id)
}

func (s *Service) ListDepartmentLinks(ctx context.Context, limit, offset int) ([]*HospitalDepartment, int, error) {
	scope, empty := auth.StrictListScope(ctx)
	if empty {
		return nil, 0, nil
	}
	return s.repo.ListDepartmentLinks(ctx, scope, limit, offset)
}

// -- Service scores --

func (s *Service) CreateScore(ctx context.Context, sc *HospitalServiceScore) error {
	if err := auth.BindOwnedHospital(ctx, &sc.HospitalID); err != nil {
		return err
	}
	return s.repo.CreateScore(ctx, sc)
}

func (s *Service) GetScore(ctx context.Context, id int64) (*HospitalServiceScore, error) {
	return s.repo.GetScore(ctx, id)
}

func (s *Service) UpdateScore(ctx context.Context, sc *HospitalServiceScore) error {
	existing, err := s.repo.GetScore(ctx, sc.ID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	sc.HospitalID = existing.HospitalID
	return s.repo.UpdateScore(ctx, sc)
}

func (s *Service) DeleteScore(ctx context.Context, id int64) error {
	existing, err := s.repo.GetScore(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	return s.repo.DeleteScore(ctx, id)
}

func (s *Service) ListScores(ctx context.Context, limit, offset int) ([]*HospitalServiceScore, int, error) {
	scope, empty := auth.ListScope(ctx)
	if empty {
		return nil, 0, nil
	}
	return s.repo.ListScores(ctx, scope, limit, offset)
}

// -- Per-hospital sub-resources --

func (s *Service) DepartmentsOfHospital(ctx context.Context, hospitalID int64) ([]*HospitalDepartment, error) {
	if _, err := s.repo.GetHospital(ctx, hospitalID); err != nil {
		return nil, err
	}
	return s.repo.DepartmentsOfHospital(ctx, hospitalID)
}

func (s *Service) ScoresOfHospital(ctx context.Context, hospitalID int64) ([]*HospitalServiceScore, error) {
	if _, err := s.repo.GetHospital(ctx, hospitalID); err != nil {
		return nil, err
	}
	return s.repo.ScoresOfHospital(ctx, hospitalID)
}

func (s *Service) EventsOfHospital(ctx context.Context, hospitalID int64) ([]*ParticipatedEvent, error) {
	if _, err := s.repo.GetHospital(ctx, hospitalID); err != nil {
		return nil, err
	}
	return s.repo.EventsOfHospital(ctx, hospitalID)
}

func (s *Service) DepartmentDetail(ctx context.Context, hospitalID, deptID int64) (*DepartmentDetail, error) {
	return s.repo.DepartmentDetail(ctx, hospitalID, deptID)
}
