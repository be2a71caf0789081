package event

import "time"

// EmergencyEvent maps to the emergency_event table.
type EmergencyEvent struct {
	ID         int64      `db:"id" json:"id"`
	EventType  *string    `db:"event_type" json:"event_type,omitempty"`
	Severity   *string    `db:"severity" json:"severity,omitempty"`
	ReportTime *time.Time `db:"report_time" json:"report_time,omitempty"`
}

// HospitalEvent maps to the hospital_event table.
type HospitalEvent struct {
	ID                   int64      `db:"id" json:"id"`
	HospitalID           int64      `db:"hospital_id" json:"hospital_id"`
	EventID              int64      `db:"event_id" json:"event_id"`
	Role                 *string    `db:"role" json:"role,omitempty"`
	ResponseTime         *time.Time `db:"response_time" json:"response_time,omitempty"`
	AffectedPatientCount *int       `db:"affected_patient_count" json:"affected_patient_count,omitempty"`
}

func (he *HospitalEvent) OwningHospitalID() int64 { return he.HospitalID }

// Participant is one hospital's involvement submitted alongside a new event.
type Participant struct {
	HospitalID           int64      `json:"hospital_id"`
	Role                 *string    `json:"role,omitempty"`
	ResponseTime         *time.Time `json:"response_time,omitempty"`
	AffectedPatientCount *int       `json:"affected_patient_count,omitempty"`
}

// CreateEventRequest carries the event fields plus an optional participant
// fan-out. The whole request commits or rolls back as one unit.
type CreateEventRequest struct {
	EventType    *string       `json:"event_type,omitempty"`
	Severity     *string       `json:"severity,omitempty"`
	ReportTime   *time.Time    `json:"report_time,omitempty"`
	Participants []Participant `json:"participants,omitempty"`
}

// CreateEventResult is the created event together with its links.
type CreateEventResult struct {
	Event *EmergencyEvent  `json:"event"`
	Links []*HospitalEvent `json:"links,omitempty"`
}
