package hospital

import (
	"context"
	"errors"
	"testing"

	"github.com/hra/hra/internal/platform/auth"
	"github.com/hra/hra/internal/platform/db"
)

// -- Mock Repository --

type mockRepo struct {
	districts map[int64]*District
	levels    map[int64]*HospitalLevel
	hospitals map[int64]*Hospital
	deptLinks map[int64]*HospitalDepartment
	scores    map[int64]*HospitalServiceScore
	nextID    int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		districts: make(map[int64]*District),
		levels:    make(map[int64]*HospitalLevel),
		hospitals: make(map[int64]*Hospital),
		deptLinks: make(map[int64]*HospitalDepartment),
		scores:    make(map[int64]*HospitalServiceScore),
	}
}

func (m *mockRepo) next() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockRepo) CreateDistrict(_ context.Context, d *District) error {
	d.ID = m.next()
	m.districts[d.ID] = d
	return nil
}

func (m *mockRepo) GetDistrict(_ context.Context, id int64) (*District, error) {
	d, ok := m.districts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) UpdateDistrict(_ context.Context, d *District) error {
	if _, ok := m.districts[d.ID]; !ok {
		return db.ErrNotFound
	}
	m.districts[d.ID] = d
	return nil
}

func (m *mockRepo) DeleteDistrict(_ context.Context, id int64) error {
	if _, ok := m.districts[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.districts, id)
	return nil
}

func (m *mockRepo) ListDistricts(_ context.Context, limit, offset int) ([]*District, int, error) {
	var out []*District
	for _, d := range m.districts {
		out = append(out, d)
	}
	return out, len(out), nil
}

func (m *mockRepo) CreateLevel(_ context.Context, l *HospitalLevel) error {
	l.ID = m.next()
	m.levels[l.ID] = l
	return nil
}

func (m *mockRepo) GetLevel(_ context.Context, id int64) (*HospitalLevel, error) {
	l, ok := m.levels[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return l, nil
}

func (m *mockRepo) UpdateLevel(_ context.Context, l *HospitalLevel) error {
	m.levels[l.ID] = l
	return nil
}

func (m *mockRepo) DeleteLevel(_ context.Context, id int64) error {
	delete(m.levels, id)
	return nil
}

func (m *mockRepo) ListLevels(_ context.Context, limit, offset int) ([]*HospitalLevel, int, error) {
	var out []*HospitalLevel
	for _, l := range m.levels {
		out = append(out, l)
	}
	return out, len(out), nil
}

func (m *mockRepo) CreateHospital(_ context.Context, h *Hospital) error {
	h.ID = m.next()
	m.hospitals[h.ID] = h
	return nil
}

func (m *mockRepo) GetHospital(_ context.Context, id int64) (*Hospital, error) {
	h, ok := m.hospitals[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return h, nil
}

func (m *mockRepo) UpdateHospital(_ context.Context, h *Hospital) error {
	if _, ok := m.hospitals[h.ID]; !ok {
		return db.ErrNotFound
	}
	m.hospitals[h.ID] = h
	return nil
}

func (m *mockRepo) DeleteHospital(_ context.Context, id int64) error {
	delete(m.hospitals, id)
	return nil
}

func (m *mockRepo) ListHospitals(_ context.Context, limit, offset int) ([]*Hospital, int, error) {
	var out []*Hospital
	for _, h := range m.hospitals {
		out = append(out, h)
	}
	return out, len(out), nil
}

func (m *mockRepo) CreateDepartmentLink(_ context.Context, hd *HospitalDepartment) error {
	for _, existing := range m.deptLinks {
		if existing.HospitalID == hd.HospitalID && existing.DeptID == hd.DeptID {
			return db.ErrConflict
		}
	}
	hd.ID = m.next()
	m.deptLinks[hd.ID] = hd
	return nil
}

func (m *mockRepo) GetDepartmentLink(_ context.Context, id int64) (*HospitalDepartment, error) {
	hd, ok := m.deptLinks[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return hd, nil
}

func (m *mockRepo) UpdateDepartmentLink(_ context.Context, hd *HospitalDepartment) error {
	m.deptLinks[hd.ID] = hd
	return nil
}

func (m *mockRepo) DeleteDepartmentLink(_ context.Context, id int64) error {
	delete(m.deptLinks, id)
	return nil
}

func (m *mockRepo) ListDepartmentLinks(_ context.Context, hospitalID int64, limit, offset int) ([]*HospitalDepartment, int, error) {
	var out []*HospitalDepartment
	for _, hd := range m.deptLinks {
		if hospitalID == 0 || hd.HospitalID == hospitalID {
			out = append(out, hd)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) CreateScore(_ context.Context, s *HospitalServiceScore) error {
	s.ID = m.next()
	m.scores[s.ID] = s
	return nil
}

func (m *mockRepo) GetScore(_ context.Context, id int64) (*HospitalServiceScore, error) {
	s, ok := m.scores[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return s, nil
}

func (m *mockRepo) UpdateScore(_ context.Context, s *HospitalServiceScore) error {
	m.scores[s.ID] = s
	return nil
}

func (m *mockRepo) DeleteScore(_ context.Context, id int64) error {
	delete(m.scores, id)
	return nil
}

func (m *mockRepo) ListScores(_ context.Context, hospitalID int64, limit, offset int) ([]*HospitalServiceScore, int, error) {
	var out []*HospitalServiceScore
	for _, s := range m.scores {
		if hospitalID == 0 || s.HospitalID == hospitalID {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) DepartmentsOfHospital(_ context.Context, hospitalID int64) ([]*HospitalDepartment, error) {
	var out []*HospitalDepartment
	for _, hd := range m.deptLinks {
		if hd.HospitalID == hospitalID {
			out = append(out, hd)
		}
	}
	return out, nil
}

func (m *mockRepo) ScoresOfHospital(_ context.Context, hospitalID int64) ([]*HospitalServiceScore, error) {
	var out []*HospitalServiceScore
	for _, s := range m.scores {
		if s.HospitalID == hospitalID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) EventsOfHospital(_ context.Context, hospitalID int64) ([]*ParticipatedEvent, error) {
	return nil, nil
}

func (m *mockRepo) DepartmentDetail(_ context.Context, hospitalID, deptID int64) (*DepartmentDetail, error) {
	for _, hd := range m.deptLinks {
		if hd.HospitalID == hospitalID && hd.DeptID == deptID {
			return &DepartmentDetail{HospitalID: hospitalID, DeptID: deptID}, nil
		}
	}
	return nil, db.ErrNotFound
}

// -- Identities --

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

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

// -- Tests --

func TestCreateHospital_Validation(t *testing.T) {
	svc, _ := newTestService()

	err := svc.CreateHospital(cityCtx(), &Hospital{Name: "General"})
	if err == nil {
		t.Error("expected error for missing district_id")
	}

	err = svc.CreateHospital(cityCtx(), &Hospital{Name: "General", DistrictID: 1})
	if err == nil {
		t.Error("expected error for missing level_id")
	}

	err = svc.CreateHospital(cityCtx(), &Hospital{Name: "General", DistrictID: 1, LevelID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateHospital_OwnHospitalOnly(t *testing.T) {
	svc, repo := newTestService()
	h := &Hospital{Name: "General", DistrictID: 1, LevelID: 1}
	repo.CreateHospital(context.Background(), h)

	err := svc.UpdateHospital(hospCtx(h.ID), &Hospital{ID: h.ID, Name: "Renamed"})
	if err != nil {
		t.Fatalf("owning admin should update: %v", err)
	}

	err = svc.UpdateHospital(hospCtx(h.ID+100), &Hospital{ID: h.ID, Name: "Hijacked"})
	if !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("expected ErrForbidden for other hospital's admin, got %v", err)
	}
}

func TestCreateScore_AutoBindsHospital(t *testing.T) {
	svc, _ := newTestService()

	sc := &HospitalServiceScore{HospitalID: 999}
	if err := svc.CreateScore(hospCtx(7), sc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.HospitalID != 7 {
		t.Errorf("expected hospital_id forced to 7, got %d", sc.HospitalID)
	}
}

func TestCreateScore_CityRequiresHospitalID(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.CreateScore(cityCtx(), &HospitalServiceScore{}); err == nil {
		t.Error("expected error for city admin without hospital_id")
	}
	if err := svc.CreateScore(cityCtx(), &HospitalServiceScore{HospitalID: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateScore_UnboundHospitalAdmin(t *testing.T) {
	svc, _ := newTestService()

	err := svc.CreateScore(hospCtx(0), &HospitalServiceScore{HospitalID: 3})
	if !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("expected ErrForbidden for unbound hospital admin, got %v", err)
	}
}

func TestUpdateScore_OwnershipGate(t *testing.T) {
	svc, repo := newTestService()
	sc := &HospitalServiceScore{HospitalID: 5}
	repo.CreateScore(context.Background(), sc)

	if err := svc.UpdateScore(hospCtx(5), &HospitalServiceScore{ID: sc.ID}); err != nil {
		t.Fatalf("owning admin should update: %v", err)
	}
	err := svc.UpdateScore(hospCtx(6), &HospitalServiceScore{ID: sc.ID})
	if !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.UpdateScore(cityCtx(), &HospitalServiceScore{ID: sc.ID}); err != nil {
		t.Fatalf("city admin should update: %v", err)
	}
}

func TestUpdateScore_KeepsOwner(t *testing.T) {
	svc, repo := newTestService()
	sc := &HospitalServiceScore{HospitalID: 5}
	repo.CreateScore(context.Background(), sc)

	upd := &HospitalServiceScore{ID: sc.ID, HospitalID: 99}
	if err := svc.UpdateScore(cityCtx(), upd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.HospitalID != 5 {
		t.Errorf("update must not reassign the owning hospital, got %d", upd.HospitalID)
	}
}

func TestListScores_ScopedForHospitalAdmin(t *testing.T) {
	svc, repo := newTestService()
	repo.CreateScore(context.Background(), &HospitalServiceScore{HospitalID: 1})
	repo.CreateScore(context.Background(), &HospitalServiceScore{HospitalID: 2})

	scores, total, err := svc.ListScores(hospCtx(1), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(scores) != 1 {
		t.Errorf("expected 1 scoped score, got %d", len(scores))
	}

	scores, total, err = svc.ListScores(cityCtx(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("city admin should see all scores, got %d", total)
	}
}

func TestListScores_PublicReadUnscoped(t *testing.T) {
	svc, repo := newTestService()
	repo.CreateScore(context.Background(), &HospitalServiceScore{HospitalID: 1})
	repo.CreateScore(context.Background(), &HospitalServiceScore{HospitalID: 2})

	// Scores are catalog data: anyone may read every hospital's ratings.
	_, total, err := svc.ListScores(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("anonymous score reads should be unscoped, got %d", total)
	}
}

func TestListScores_UnboundAdminSeesNothing(t *testing.T) {
	svc, repo := newTestService()
	repo.CreateScore(context.Background(), &HospitalServiceScore{HospitalID: 1})

	scores, total, err := svc.ListScores(hospCtx(0), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 || len(scores) != 0 {
		t.Errorf("unbound hospital admin must see an empty list, got %d rows", len(scores))
	}
}

func TestCreateDepartmentLink_Duplicate(t *testing.T) {
	svc, _ := newTestService()

	hd := &HospitalDepartment{HospitalID: 1, DeptID: 2}
	if err := svc.CreateDepartmentLink(cityCtx(), hd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.CreateDepartmentLink(cityCtx(), &HospitalDepartment{HospitalID: 1, DeptID: 2})
	if !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate placement, got %v", err)
	}
}

func TestDepartmentsOfHospital_UnknownHospital(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.DepartmentsOfHospital(context.Background(), 42)
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDepartmentDetail_NotOperated(t *testing.T) {
	svc, repo := newTestService()
	repo.CreateDepartmentLink(context.Background(), &HospitalDepartment{HospitalID: 1, DeptID: 2})

	if _, err := svc.DepartmentDetail(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.DepartmentDetail(context.Background(), 1, 3)
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for dept the hospital does not operate, got %v", err)
	}
}
