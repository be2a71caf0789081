package public

// SearchRequest filters the public hospital directory. Zero values mean the
// filter is not applied.
type SearchRequest struct {
	DistrictID int64  `json:"district_id,omitempty"`
	LevelID    int64  `json:"level_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

// HospitalSummary is the public-facing hospital row.
type HospitalSummary struct {
	ID                 int64    `db:"id" json:"id"`
	Name               string   `db:"name" json:"name"`
	Address            *string  `db:"address" json:"address,omitempty"`
	DistrictID         int64    `db:"district_id" json:"district_id"`
	DistrictName       string   `db:"district_name" json:"district_name"`
	LevelID            int64    `db:"level_id" json:"level_id"`
	LevelName          string   `db:"level_name" json:"level_name"`
	Longitude          *float64 `db:"longitude" json:"longitude,omitempty"`
	Latitude           *float64 `db:"latitude" json:"latitude,omitempty"`
	BedTotal           *int     `db:"bed_total" json:"bed_total,omitempty"`
	OutpatientCapacity *int     `db:"outpatient_capacity" json:"outpatient_capacity,omitempty"`
	StaffCount         int      `db:"staff_count" json:"staff_count"`
}
