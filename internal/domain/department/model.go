package department

// Department maps to the department table. Departments are city-wide
// reference data; per-hospital placement lives in hospital_department.
type Department struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	StandardCode *string `db:"standard_code" json:"standard_code,omitempty"`
}

// DepartmentResource maps to the department_resource table. One row per
// (hospital, department) pair.
type DepartmentResource struct {
	ID            int64 `db:"id" json:"id"`
	HospitalID    int64 `db:"hospital_id" json:"hospital_id"`
	DeptID        int64 `db:"dept_id" json:"dept_id"`
	BedCount      *int  `db:"bed_count" json:"bed_count,omitempty"`
	DeviceCount   *int  `db:"device_count" json:"device_count,omitempty"`
	DailyCapacity *int  `db:"daily_capacity" json:"daily_capacity,omitempty"`
}

func (r *DepartmentResource) OwningHospitalID() int64 { return r.HospitalID }

// DepartmentStaff maps to the department_staff table.
type DepartmentStaff struct {
	ID         int64   `db:"id" json:"id"`
	DeptID     int64   `db:"dept_id" json:"dept_id"`
	StaffID    int64   `db:"staff_id" json:"staff_id"`
	RoleInDept *string `db:"role_in_dept" json:"role_in_dept,omitempty"`
}
