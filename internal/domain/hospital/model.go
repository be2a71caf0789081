package hospital

import "time"

// District maps to the district table.
type District struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// HospitalLevel maps to the hospital_level table.
type HospitalLevel struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// Hospital maps to the hospital table. DistrictName, LevelName and StaffCount
// are read-only fields filled by joins, never written back.
type Hospital struct {
	ID                 int64    `db:"id" json:"id"`
	Name               string   `db:"name" json:"name"`
	Address            *string  `db:"address" json:"address,omitempty"`
	DistrictID         int64    `db:"district_id" json:"district_id"`
	LevelID            int64    `db:"level_id" json:"level_id"`
	Longitude          *float64 `db:"longitude" json:"longitude,omitempty"`
	Latitude           *float64 `db:"latitude" json:"latitude,omitempty"`
	EstablishedYear    *int     `db:"established_year" json:"established_year,omitempty"`
	BedTotal           *int     `db:"bed_total" json:"bed_total,omitempty"`
	OutpatientCapacity *int     `db:"outpatient_capacity" json:"outpatient_capacity,omitempty"`

	DistrictName string `db:"district_name" json:"district_name,omitempty"`
	LevelName    string `db:"level_name" json:"level_name,omitempty"`
	StaffCount   int    `db:"staff_count" json:"staff_count"`
}

// OwningHospitalID lets a hospital row gate its own mutations.
func (h *Hospital) OwningHospitalID() int64 { return h.ID }

// HospitalDepartment maps to the hospital_department table. DeptName is
// read-only, filled when listing a hospital's departments.
type HospitalDepartment struct {
	ID         int64   `db:"id" json:"id"`
	HospitalID int64   `db:"hospital_id" json:"hospital_id"`
	DeptID     int64   `db:"dept_id" json:"dept_id"`
	Floor      *string `db:"floor" json:"floor,omitempty"`
	RoomCount  *int    `db:"room_count" json:"room_count,omitempty"`

	DeptName string `db:"dept_name" json:"dept_name,omitempty"`
}

func (hd *HospitalDepartment) OwningHospitalID() int64 { return hd.HospitalID }

// HospitalServiceScore maps to the hospital_service_score table.
type HospitalServiceScore struct {
	ID                 int64      `db:"id" json:"id"`
	HospitalID         int64      `db:"hospital_id" json:"hospital_id"`
	HygieneScore       *float64   `db:"hygiene_score" json:"hygiene_score,omitempty"`
	SatisfactionScore  *float64   `db:"satisfaction_score" json:"satisfaction_score,omitempty"`
	LastInspectionDate *time.Time `db:"last_inspection_date" json:"last_inspection_date,omitempty"`
}

func (s *HospitalServiceScore) OwningHospitalID() int64 { return s.HospitalID }

// ParticipatedEvent is an emergency event joined with the hospital's
// participation record, returned by the per-hospital events action.
type ParticipatedEvent struct {
	EventID              int64      `db:"event_id" json:"event_id"`
	EventType            *string    `db:"event_type" json:"event_type,omitempty"`
	Severity             *string    `db:"severity" json:"severity,omitempty"`
	ReportTime           *time.Time `db:"report_time" json:"report_time,omitempty"`
	Role                 *string    `db:"role" json:"role,omitempty"`
	ResponseTime         *time.Time `db:"response_time" json:"response_time,omitempty"`
	AffectedPatientCount *int       `db:"affected_patient_count" json:"affected_patient_count,omitempty"`
}

// DepartmentDetail combines a hospital's department placement with its
// resource counters. Counters are zero when no resource row exists.
type DepartmentDetail struct {
	HospitalID    int64   `json:"hospital_id"`
	DeptID        int64   `json:"dept_id"`
	DeptName      string  `json:"dept_name"`
	Floor         *string `json:"floor,omitempty"`
	RoomCount     *int    `json:"room_count,omitempty"`
	BedCount      int     `json:"bed_count"`
	DeviceCount   int     `json:"device_count"`
	DailyCapacity int     `json:"daily_capacity"`
}
