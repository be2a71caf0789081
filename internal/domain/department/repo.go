package department

import "context"

type Repository interface {
	// Departments
	Create(ctx context.Context, d *Department) error
	Get(ctx context.Context, id int64) (*Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*Department, int, error)

	// Resources. hospitalID zero means unscoped.
	CreateResource(ctx context.Context, r *DepartmentResource) error
	GetResource(ctx context.Context, id int64) (*DepartmentResource, error)
	UpdateResource(ctx context.Context, r *DepartmentResource) error
	DeleteResource(ctx context.Context, id int64) error
	ListResources(ctx context.Context, hospitalID int64, limit, offset int) ([]*DepartmentResource, int, error)

	// Staff assignments
	CreateStaffLink(ctx context.Context, ds *DepartmentStaff) error
	GetStaffLink(ctx context.Context, id int64) (*DepartmentStaff, error)
	UpdateStaffLink(ctx context.Context, ds *DepartmentStaff) error
	DeleteStaffLink(ctx context.Context, id int64) error
	ListStaffLinks(ctx context.Context, deptID int64, limit, offset int) ([]*DepartmentStaff, int, error)
}
