package staff

import "context"

type Repository interface {
	// Staff. hospitalID zero means unscoped.
	CreateStaff(ctx context.Context, st *Staff) error
	GetStaff(ctx context.Context, id int64) (*Staff, error)
	UpdateStaff(ctx context.Context, st *Staff) error
	DeleteStaff(ctx context.Context, id int64) error
	ListStaff(ctx context.Context, hospitalID int64, limit, offset int) ([]*Staff, int, error)

	// LinkedToHospital reports whether the staff member has an employment
	// record at the hospital.
	LinkedToHospital(ctx context.Context, staffID, hospitalID int64) (bool, error)

	// Employment links. hospitalID zero means unscoped.
	CreateLink(ctx context.Context, hs *HospitalStaff) error
	GetLink(ctx context.Context, id int64) (*HospitalStaff, error)
	UpdateLink(ctx context.Context, hs *HospitalStaff) error
	DeleteLink(ctx context.Context, id int64) error
	ListLinks(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalStaff, int, error)

	// Statistics inputs. hospitalID zero means city-wide.
	TitleCounts(ctx context.Context, hospitalID int64) ([]*TitleCount, error)
	CountByHospital(ctx context.Context, hospitalID int64) ([]*HospitalStaffCount, error)
}
