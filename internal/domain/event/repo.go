package event

import "context"

// Repository persists emergency events and hospital participation links.
type Repository interface {
	CreateEvent(ctx context.Context, ev *EmergencyEvent) error
	GetEvent(ctx context.Context, id int64) (*EmergencyEvent, error)
	UpdateEvent(ctx context.Context, ev *EmergencyEvent) error
	DeleteEvent(ctx context.Context, id int64) error
	ListEvents(ctx context.Context, limit, offset int) ([]*EmergencyEvent, int, error)

	// HospitalInvolved reports whether the hospital holds a participation
	// link for the event.
	HospitalInvolved(ctx context.Context, eventID, hospitalID int64) (bool, error)

	CreateLink(ctx context.Context, he *HospitalEvent) error
	GetLink(ctx context.Context, id int64) (*HospitalEvent, error)
	UpdateLink(ctx context.Context, he *HospitalEvent) error
	DeleteLink(ctx context.Context, id int64) error
	// ListLinks returns hospital_event rows, optionally scoped to one
	// hospital (hospitalID == 0 means unscoped).
	ListLinks(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalEvent, int, error)
}
