package hospital

import "context"

type Repository interface {
	// Districts
	CreateDistrict(ctx context.Context, d *District) error
	GetDistrict(ctx context.Context, id int64) (*District, error)
	UpdateDistrict(ctx context.Context, d *District) error
	DeleteDistrict(ctx context.Context, id int64) error
	ListDistricts(ctx context.Context, limit, offset int) ([]*District, int, error)

	// Levels
	CreateLevel(ctx context.Context, l *HospitalLevel) error
	GetLevel(ctx context.Context, id int64) (*HospitalLevel, error)
	UpdateLevel(ctx context.Context, l *HospitalLevel) error
	DeleteLevel(ctx context.Context, id int64) error
	ListLevels(ctx context.Context, limit, offset int) ([]*HospitalLevel, int, error)

	// Hospitals
	CreateHospital(ctx context.Context, h *Hospital) error
	GetHospital(ctx context.Context, id int64) (*Hospital, error)
	UpdateHospital(ctx context.Context, h *Hospital) error
	DeleteHospital(ctx context.Context, id int64) error
	ListHospitals(ctx context.Context, limit, offset int) ([]*Hospital, int, error)

	// Department placements. hospitalID zero means unscoped.
	CreateDepartmentLink(ctx context.Context, hd *HospitalDepartment) error
	GetDepartmentLink(ctx context.Context, id int64) (*HospitalDepartment, error)
	UpdateDepartmentLink(ctx context.Context, hd *HospitalDepartment) error
	DeleteDepartmentLink(ctx context.Context, id int64) error
	ListDepartmentLinks(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalDepartment, int, error)

	// Service scores. hospitalID zero means unscoped.
	CreateScore(ctx context.Context, s *HospitalServiceScore) error
	GetScore(ctx context.Context, id int64) (*HospitalServiceScore, error)
	UpdateScore(ctx context.Context, s *HospitalServiceScore) error
	DeleteScore(ctx context.Context, id int64) error
	ListScores(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalServiceScore, int, error)

	// Per-hospital sub-resources
	DepartmentsOfHospital(ctx context.Context, hospitalID int64) ([]*HospitalDepartment, error)
	ScoresOfHospital(ctx context.Context, hospitalID int64) ([]*HospitalServiceScore, error)
	EventsOfHospital(ctx context.Context, hospitalID int64) ([]*ParticipatedEvent, error)
	DepartmentDetail(ctx context.Context, hospitalID, deptID int64) (*DepartmentDetail, error)
}
