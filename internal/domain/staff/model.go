package staff

import "time"

// Staff maps to the staff table. Identifiers are assigned as the current
// maximum plus one so that numbering stays dense across onboarding.
type Staff struct {
	ID       int64      `db:"id" json:"id"`
	Name     string     `db:"name" json:"name"`
	Gender   *string    `db:"gender" json:"gender,omitempty"`
	Title    *string    `db:"title" json:"title,omitempty"`
	Phone    *string    `db:"phone" json:"phone,omitempty"`
	HireDate *time.Time `db:"hire_date" json:"hire_date,omitempty"`
}

// HospitalStaff maps to the hospital_staff table.
type HospitalStaff struct {
	ID             int64   `db:"id" json:"id"`
	HospitalID     int64   `db:"hospital_id" json:"hospital_id"`
	StaffID        int64   `db:"staff_id" json:"staff_id"`
	EmploymentType *string `db:"employment_type" json:"employment_type,omitempty"`
}

func (hs *HospitalStaff) OwningHospitalID() int64 { return hs.HospitalID }

// OnboardRequest either links an existing staff member to a hospital or
// creates the staff record and the link in one unit.
type OnboardRequest struct {
	HospitalID      int64      `json:"hospital_id"`
	ExistingStaffID *int64     `json:"existing_staff_id,omitempty"`
	Name            string     `json:"name,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	Title           *string    `json:"title,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	HireDate        *time.Time `json:"hire_date,omitempty"`
	EmploymentType  *string    `json:"employment_type,omitempty"`
}

// OnboardResult reports what the onboarding transaction produced.
type OnboardResult struct {
	Staff   *Staff         `json:"staff"`
	Link    *HospitalStaff `json:"link"`
	Created bool           `json:"created"`
}

// TitleCount is one row of the title distribution.
type TitleCount struct {
	Title string `db:"title" json:"title"`
	Count int    `db:"count" json:"count"`
}

// HospitalStaffCount is the per-hospital staff headcount.
type HospitalStaffCount struct {
	HospitalID   int64  `db:"hospital_id" json:"hospital_id"`
	HospitalName string `db:"hospital_name" json:"hospital_name"`
	StaffCount   int    `db:"staff_count" json:"staff_count"`
}

// Statistics is the staff composition report. Doctors and nurses are
// recognized by the professional title containing the marker characters
// used by the upstream data source.
type Statistics struct {
	Total             int                   `json:"total"`
	DoctorCount       int                   `json:"doctor_count"`
	NurseCount        int                   `json:"nurse_count"`
	OtherCount        int                   `json:"other_count"`
	TitleDistribution map[string]int        `json:"title_distribution"`
	ByHospital        []*HospitalStaffCount `json:"by_hospital"`
}
