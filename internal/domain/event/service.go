package event

import (
	"context"
	"fmt"

	"github.com/hra/hra/internal/platform/auth"
)

// TxWrapper runs fn atomically. The production wrapper is db.RunInTx bound to
// the connection pool.
type TxWrapper func(ctx context.Context, fn func(ctx context.Context) error) error

// defaultParticipantRole is stored when a participant descriptor names no
// role. Hospitals enrolled at report time are reporters until updated.
const defaultParticipantRole = "reporting"

type Service struct {
	repo Repository
	tx   TxWrapper
}

func NewService(repo Repository, tx TxWrapper) *Service {
	return &Service{repo: repo, tx: tx}
}

// -- Events --

// CreateEvent records an emergency event and, when participants are supplied,
// their hospital links in one transaction. A hospital admin may only enroll
// their own hospital; any participant they submit is bound to it.
func (s *Service) CreateEvent(ctx context.Context, req *CreateEventRequest) (*CreateEventResult, error) {
	if req.EventType == nil || *req.EventType == "" {
		return nil, fmt.Errorf("event_type is required")
	}
	for i := range req.Participants {
		if err := auth.BindOwnedHospital(ctx, &req.Participants[i].HospitalID); err != nil {
			return nil, err
		}
	}

	var result CreateEventResult
	err := s.tx(ctx, func(ctx context.Context) error {
		ev := &EmergencyEvent{
			EventType:  req.EventType,
			Severity:   req.Severity,
			ReportTime: req.ReportTime,
		}
		if err := s.repo.CreateEvent(ctx, ev); err != nil {
			return err
		}
		result.Event = ev
		for _, p := range req.Participants {
			role := p.Role
			if role == nil {
				r := defaultParticipantRole
				role = &r
			}
			link := &HospitalEvent{
				HospitalID:           p.HospitalID,
				EventID:              ev.ID,
				Role:                 role,
				ResponseTime:         p.ResponseTime,
				AffectedPatientCount: p.AffectedPatientCount,
			}
			if err := s.repo.CreateLink(ctx, link); err != nil {
				return err
			}
			result.Links = append(result.Links, link)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) GetEvent(ctx context.Context, id int64) (*EmergencyEvent, error) {
	return s.repo.GetEvent(ctx, id)
}

// UpdateEvent lets hospital admins modify only events their hospital
// participates in; the participation link is the ownership record.
func (s *Service) UpdateEvent(ctx context.Context, ev *EmergencyEvent) error {
	if ev.EventType == nil || *ev.EventType == "" {
		return fmt.Errorf("event_type is required")
	}
	if err := s.gateEventMutation(ctx, ev.ID); err != nil {
		return err
	}
	return s.repo.UpdateEvent(ctx, ev)
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.gateEventMutation(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteEvent(ctx, id)
}

func (s *Service) gateEventMutation(ctx context.Context, eventID int64) error {
	ident := auth.FromContext(ctx)
	if !ident.IsHospitalAdmin() {
		return nil
	}
	hid, ok := ident.OwnedHospital()
	if !ok {
		return auth.ErrForbidden
	}
	involved, err := s.repo.HospitalInvolved(ctx, eventID, hid)
	if err != nil {
		return err
	}
	if !involved {
		return auth.ErrForbidden
	}
	return nil
}

func (s *Service) ListEvents(ctx context.Context, limit, offset int) ([]*EmergencyEvent, int, error) {
	return s.repo.ListEvents(ctx, limit, offset)
}

// -- Participation links --

func (s *Service) CreateLink(ctx context.Context, he *HospitalEvent) error {
	if err := auth.BindOwnedHospital(ctx, &he.HospitalID); err != nil {
		return err
	}
	if he.EventID == 0 {
		return fmt.Errorf("event_id is required")
	}
	if _, err := s.repo.GetEvent(ctx, he.EventID); err != nil {
		return err
	}
	return s.repo.CreateLink(ctx, he)
}

func (s *Service) GetLink(ctx context.Context, id int64) (*HospitalEvent, error) {
	return s.repo.GetLink(ctx, id)
}

func (s *Service) UpdateLink(ctx context.Context, he *HospitalEvent) error {
	existing, err := s.repo.GetLink(ctx, he.ID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(auth.FromContext(ctx), existing) {
		return auth.ErrForbidden
	}
	// The hospital/event pair is immutable once linked.
	he.HospitalID = existing.HospitalID
	he.EventID = existing.EventID
	return s.repo.UpdateLink(ctx, he)
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

func (s *Service) ListLinks(ctx context.Context, limit, offset int) ([]*HospitalEvent, int, error) {
	scope, empty := auth.StrictListScope(ctx)
	if empty {
		return nil, 0, nil
	}
	return s.repo.ListLinks(ctx, scope, limit, offset)
}
