package statistics

// Dashboard is the city-wide resource overview.
type Dashboard struct {
	HospitalCount   int   `json:"hospital_count"`
	DistrictCount   int   `json:"district_count"`
	DepartmentCount int   `json:"department_count"`
	StaffCount      int   `json:"staff_count"`
	EventCount      int   `json:"event_count"`
	TotalBeds       int64 `json:"total_beds"`
	TotalOutpatient int64 `json:"total_outpatient_capacity"`
	TotalRooms      int64 `json:"total_rooms"`
	TotalDevices    int64 `json:"total_devices"`
	ICUBeds         int64 `json:"icu_beds"`
}

// HospitalRank is one row of the per-hospital load table.
type HospitalRank struct {
	HospitalID         int64    `json:"hospital_id"`
	HospitalName       string   `json:"hospital_name"`
	DistrictName       string   `json:"district_name"`
	LevelName          string   `json:"level_name"`
	BedTotal           *int     `json:"bed_total,omitempty"`
	OutpatientCapacity *int     `json:"outpatient_capacity,omitempty"`
	RoomCount          int64    `json:"room_count"`
	DeviceCount        int64    `json:"device_count"`
	StaffCount         int      `json:"staff_count"`
	StressRatio        *float64 `json:"stress_ratio,omitempty"`
	StressLevel        string   `json:"stress_level"`
}

// RankFilter narrows the rank table to one district or accreditation level.
type RankFilter struct {
	DistrictID *int64
	LevelID    *int64
}
