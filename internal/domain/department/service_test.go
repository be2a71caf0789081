package department

import (
	"context"
	"errors"
	"testing"

	"github.com/hra/hra/internal/platform/auth"
	"github.com/hra/hra/internal/platform/db"
)

// -- Mock Repository --

type mockRepo struct {
	depts      map[int64]*Department
	resources  map[int64]*DepartmentResource
	staffLinks map[int64]*DepartmentStaff
	nextID     int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		depts:      make(map[int64]*Department),
		resources:  make(map[int64]*DepartmentResource),
		staffLinks: make(map[int64]*DepartmentStaff),
	}
}

func (m *mockRepo) next() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockRepo) Create(_ context.Context, d *Department) error {
	d.ID = m.next()
	m.depts[d.ID] = d
	return nil
}

func (m *mockRepo) Get(_ context.Context, id int64) (*Department, error) {
	d, ok := m.depts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) Update(_ context.Context, d *Department) error {
	if _, ok := m.depts[d.ID]; !ok {
		return db.ErrNotFound
	}
	m.depts[d.ID] = d
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	delete(m.depts, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Department, int, error) {
	var out []*Department
	for _, d := range m.depts {
		out = append(out, d)
	}
	return out, len(out), nil
}

func (m *mockRepo) CreateResource(_ context.Context, r *DepartmentResource) error {
	for _, existing := range m.resources {
		if existing.HospitalID == r.HospitalID && existing.DeptID == r.DeptID {
			return db.ErrConflict
		}
	}
	r.ID = m.next()
	m.resources[r.ID] = r
	return nil
}

func (m *mockRepo) GetResource(_ context.Context, id int64) (*DepartmentResource, error) {
	r, ok := m.resources[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return r, nil
}

func (m *mockRepo) UpdateResource(_ context.Context, r *DepartmentResource) error {
	m.resources[r.ID] = r
	return nil
}

func (m *mockRepo) DeleteResource(_ context.Context, id int64) error {
	delete(m.resources, id)
	return nil
}

func (m *mockRepo) ListResources(_ context.Context, hospitalID int64, limit, offset int) ([]*DepartmentResource, int, error) {
	var out []*DepartmentResource
	for _, r := range m.resources {
		if hospitalID == 0 || r.HospitalID == hospitalID {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) CreateStaffLink(_ context.Context, ds *DepartmentStaff) error {
	for _, existing := range m.staffLinks {
		if existing.DeptID == ds.DeptID && existing.StaffID == ds.StaffID {
			return db.ErrConflict
		}
	}
	ds.ID = m.next()
	m.staffLinks[ds.ID] = ds
	return nil
}

func (m *mockRepo) GetStaffLink(_ context.Context, id int64) (*DepartmentStaff, error) {
	ds, ok := m.staffLinks[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return ds, nil
}

func (m *mockRepo) UpdateStaffLink(_ context.Context, ds *DepartmentStaff) error {
	m.staffLinks[ds.ID] = ds
	return nil
}

func (m *mockRepo) DeleteStaffLink(_ context.Context, id int64) error {
	delete(m.staffLinks, id)
	return nil
}

func (m *mockRepo) ListStaffLinks(_ context.Context, deptID int64, limit, offset int) ([]*DepartmentStaff, int, error) {
	var out []*DepartmentStaff
	for _, ds := range m.staffLinks {
		if deptID == 0 || ds.DeptID == deptID {
			out = append(out, ds)
		}
	}
	return out, len(out), nil
}

func cityCtx() context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{
		UserID: "city", Role: auth.RoleCityAdmin, Authenticated: true,
	})
}

func hospCtx(hospitalID int64) context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{
		UserID: "hosp", Role: auth.RoleHospitalAdmin, HospitalID: hospitalID, Authenticated: true,
	})
}

// -- Tests --

func TestCreate_RequiresName(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(cityCtx(), &Department{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestCreateResource_AutoBind(t *testing.T) {
	svc := NewService(newMockRepo())

	r := &DepartmentResource{HospitalID: 99, DeptID: 3}
	if err := svc.CreateResource(hospCtx(4), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.HospitalID != 4 {
		t.Errorf("expected hospital_id forced to 4, got %d", r.HospitalID)
	}
}

func TestCreateResource_DuplicatePair(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.CreateResource(cityCtx(), &DepartmentResource{HospitalID: 1, DeptID: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.CreateResource(cityCtx(), &DepartmentResource{HospitalID: 1, DeptID: 2})
	if !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestUpdateResource_OwnershipGate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	r := &DepartmentResource{HospitalID: 2, DeptID: 1}
	repo.CreateResource(context.Background(), r)

	err := svc.UpdateResource(hospCtx(3), &DepartmentResource{ID: r.ID})
	if !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.UpdateResource(hospCtx(2), &DepartmentResource{ID: r.ID, HospitalID: 2, DeptID: 1}); err != nil {
		t.Fatalf("owning admin should update: %v", err)
	}
}

func TestListResources_Scoped(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	repo.CreateResource(context.Background(), &DepartmentResource{HospitalID: 1, DeptID: 1})
	repo.CreateResource(context.Background(), &DepartmentResource{HospitalID: 2, DeptID: 1})

	_, total, err := svc.ListResources(hospCtx(2), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 scoped resource, got %d", total)
	}

	_, total, _ = svc.ListResources(cityCtx(), 20, 0)
	if total != 2 {
		t.Errorf("city admin should see all resources, got %d", total)
	}
}

func TestListResources_AnonymousSeesNothing(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	repo.CreateResource(context.Background(), &DepartmentResource{HospitalID: 1, DeptID: 1})
	repo.CreateResource(context.Background(), &DepartmentResource{HospitalID: 2, DeptID: 1})

	rows, total, err := svc.ListResources(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 || total != 0 {
		t.Errorf("unauthenticated list must be empty, got %d rows (total %d)", len(rows), total)
	}
}

func TestCreateStaffLink_Validation(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.CreateStaffLink(cityCtx(), &DepartmentStaff{StaffID: 1}); err == nil {
		t.Error("expected error for missing dept_id")
	}
	if err := svc.CreateStaffLink(cityCtx(), &DepartmentStaff{DeptID: 1}); err == nil {
		t.Error("expected error for missing staff_id")
	}
}

func TestListStaffLinks_DeptFilter(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	repo.CreateStaffLink(context.Background(), &DepartmentStaff{DeptID: 1, StaffID: 1})
	repo.CreateStaffLink(context.Background(), &DepartmentStaff{DeptID: 2, StaffID: 1})

	_, total, err := svc.ListStaffLinks(cityCtx(), "2", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 filtered link, got %d", total)
	}

	if _, _, err := svc.ListStaffLinks(cityCtx(), "abc", 20, 0); err == nil {
		t.Error("expected error for malformed dept_id")
	}
}
