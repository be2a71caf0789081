package statistics

import "context"

// rankRow is a hospital row before stress classification.
type rankRow struct {
	HospitalID         int64
	HospitalName       string
	DistrictName       string
	LevelName          string
	BedTotal           *int
	OutpatientCapacity *int
	RoomCount          int64
	DeviceCount        int64
	StaffCount         int
}

// Repository aggregates the city-wide figures the reports are built from.
type Repository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	RankRows(ctx context.Context, f RankFilter) ([]*rankRow, error)
}
