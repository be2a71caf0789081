package staff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hra/hra/internal/platform/auth"
)

// TxWrapper runs fn atomically. The production wrapper is db.RunInTx bound to
// the connection pool.
type TxWrapper func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	repo Repository
	tx   TxWrapper
}

func NewService(repo Repository, tx TxWrapper) *Service {
	return &Service{repo: repo, tx: tx}
}

// -- Staff --

func (s *Service) CreateStaff(ctx context.Context, st *Staff) error {
	if st.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.CreateStaff(ctx, st)
}

func (s *Service) GetStaff(ctx context.Context, id int64) (*Staff, error) {
	return s.repo.GetStaff(ctx, id)
}

// UpdateStaff lets hospital admins modify only staff employed at their own
// hospital; the employment link is the ownership record.
func (s *Service) UpdateStaff(ctx context.Context, st *Staff) error {
	if st.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := s.gateStaffMutation(ctx, st.ID); err != nil {
		return err
	}
	return s.repo.UpdateStaff(ctx, st)
}

func (s *Service) DeleteStaff(ctx context.Context, id int64) error {
	if err := s.gateStaffMutation(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteStaff(ctx, id)
}

func (s *Service) gateStaffMutation(ctx context.Context, staffID int64) error {
	ident := auth.FromContext(ctx)
	if !ident.IsHospitalAdmin() {
		return nil
	}
	hid, ok := ident.OwnedHospital()
	if !ok {
		return auth.ErrForbidden
	}
	linked, err := s.repo.LinkedToHospital(ctx, staffID, hid)
	if err != nil {
		return err
	}
	if !linked {
		return auth.ErrForbidden
	}
	return nil
}

func (s *Service) ListStaff(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	scope, empty := auth.StrictListScope(ctx)
	if empty {
		return nil, 0, nil
	}
	return s.repo.ListStaff(ctx, scope, limit, offset)
}

// -- Employment links --

func (s *Service) CreateLink(ctx context.Context, hs *HospitalStaff) error {
	if err := auth.BindOwnedHospital(ctx, &hs.HospitalID); err != nil {
		return err
	}
	if hs.StaffID == 0 {
		return fmt.Errorf("staff_id is required")
	}
	if _, err := s.repo.GetStaff(ctx, hs.StaffID); err != nil {
		return err
	}
	return s.repo.CreateLink(ctx, hs)
}

func (s *Service) GetLink(ctx context.Context, id int64) (*HospitalStaff, error) {
	return s.repo.GetLink(ctx, id)
}

func (s *Service) UpdateLink(ctx context.Context, hs *HospitalStaff) error {
	existing, err := s.repo.GetLink(ctx, hs.ID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	return s.repo.UpdateLink(ctx, hs)
}

func (s *Service) DeleteLink(ctx context.Context, id int64) error {
	existing, err := s.repo.GetLink(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	return s.repo.DeleteLink(ctx, id)
}

func (s *Service) ListLinks(ctx context.Context, limit, offset int) ([]*HospitalStaff, int, error) {
	scope, empty := auth.StrictListScope(ctx)
	if empty {
		return nil, 0, nil
	}
	return s.repo.ListLinks(ctx, scope, limit, offset)
}

// -- Onboarding --

// Onboard registers a staff member at a hospital in one transaction. Either
// an existing staff id is linked, or a new staff record is created with the
// next dense identifier and then linked. A duplicate employment link aborts
// the whole operation, so a freshly created staff row never survives a
// failed link. Only a hospital admin with a bound hospital may onboard, and
// always into that hospital.
func (s *Service) Onboard(ctx context.Context, req *OnboardRequest) (*OnboardResult, error) {
	hid, ok := auth.FromContext(ctx).OwnedHospital()
	if !ok {
		return nil, auth.ErrForbidden
	}
	req.HospitalID = hid

	var result OnboardResult
	err := s.tx(ctx, func(ctx context.Context) error {
		var st *Staff
		if req.ExistingStaffID != nil {
			var err error
			st, err = s.repo.GetStaff(ctx, *req.ExistingStaffID)
			if err != nil {
				return err
			}
		} else {
			if req.Name == "" {
				return fmt.Errorf("name is required for new staff")
			}
			hireDate := req.HireDate
			if hireDate == nil {
				now := time.Now()
				hireDate = &now
			}
			st = &Staff{
				Name:     req.Name,
				Gender:   req.Gender,
				Title:    req.Title,
				Phone:    req.Phone,
				HireDate: hireDate,
			}
			if err := s.repo.CreateStaff(ctx, st); err != nil {
				return err
			}
			result.Created = true
		}

		link := &HospitalStaff{
			HospitalID:     req.HospitalID,
			StaffID:        st.ID,
			EmploymentType: req.EmploymentType,
		}
		if err := s.repo.CreateLink(ctx, link); err != nil {
			return err
		}
		result.Staff = st
		result.Link = link
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// -- Statistics --

const (
	doctorMarker = "医"
	nurseMarker  = "护"
)

// Statistics builds the staff composition report. Hospital admins get the
// report for their own hospital; city admins city-wide.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	scope, empty := auth.ListScope(ctx)
	if empty {
		return &Statistics{TitleDistribution: map[string]int{}}, nil
	}

	titles, err := s.repo.TitleCounts(ctx, scope)
	if err != nil {
		return nil, err
	}
	byHospital, err := s.repo.CountByHospital(ctx, scope)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		TitleDistribution: make(map[string]int, len(titles)),
		ByHospital:        byHospital,
	}
	for _, tc := range titles {
		stats.Total += tc.Count
		if tc.Title != "" {
			stats.TitleDistribution[tc.Title] += tc.Count
		}
		switch {
		case strings.Contains(tc.Title, doctorMarker):
			stats.DoctorCount += tc.Count
		case strings.Contains(tc.Title, nurseMarker):
			stats.NurseCount += tc.Count
		default:
			stats.OtherCount += tc.Count
		}
	}
	return stats, nil
}
