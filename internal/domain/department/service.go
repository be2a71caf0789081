package department

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hra/hra/internal/platform/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// -- Departments --

func (s *Service) Create(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int64) (*Department, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// -- Resources --

func (s *Service) CreateResource(ctx context.Context, r *DepartmentResource) error {
	if err := auth.BindOwnedHospital(ctx, &r.HospitalID); err != nil {
		return err
	}
	if r.DeptID == 0 {
		return fmt.Errorf("dept_id is required")
	}
	return s.repo.CreateResource(ctx, r)
}

func (s *Service) GetResource(ctx context.Context, id int64) (*DepartmentResource, error) {
	return s.repo.GetResource(ctx, id)
}

func (s *Service) UpdateResource(ctx context.Context, r *DepartmentResource) error {
	existing, err := s.repo.GetResource(ctx, r.ID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	return s.repo.UpdateResource(ctx, r)
}

func (s *Service) DeleteResource(ctx context.Context, id int64) error {
	existing, err := s.repo.GetResource(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	return s.repo.DeleteResource(ctx, id)
}

func (s *Service) ListResources(ctx context.Context, limit, offset int) ([]*DepartmentResource, int, error) {
	scope, empty := auth.StrictListScope(ctx)
	if empty {
		return nil, 0, nil
	}
	return s.repo.ListResources(ctx, scope, limit, offset)
}

// -- Staff assignments --

func (s *Service) CreateStaffLink(ctx context.Context, ds *DepartmentStaff) error {
	if ds.DeptID == 0 {
		return fmt.Errorf("dept_id is required")
	}
	if ds.StaffID == 0 {
		return fmt.Errorf("staff_id is required")
	}
	return s.repo.CreateStaffLink(ctx, ds)
}

func (s *Service) GetStaffLink(ctx context.Context, id int64) (*DepartmentStaff, error) {
	return s.repo.GetStaffLink(ctx, id)
}

func (s *Service) UpdateStaffLink(ctx context.Context, ds *DepartmentStaff) error {
	return s.repo.UpdateStaffLink(ctx, ds)
}

func (s *Service) DeleteStaffLink(ctx context.Context, id int64) error {
	return s.repo.DeleteStaffLink(ctx, id)
}

// ListStaffLinks accepts an optional dept_id filter from the query string.
func (s *Service) ListStaffLinks(ctx context.Context, deptFilter string, limit, offset int) ([]*DepartmentStaff, int, error) {
	var deptID int64
	if deptFilter != "" {
		var err error
		deptID, err = strconv.ParseInt(deptFilter, 10, 64)
		if err != nil || deptID <= 0 {
			return nil, 0, fmt.Errorf("invalid dept_id")
		}
	}
	return s.repo.ListStaffLinks(ctx, deptID, limit, offset)
}
