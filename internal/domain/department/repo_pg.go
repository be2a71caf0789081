package department

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hra/hra/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// -- Departments --

func (r *repoPG) Create(ctx context.Context, d *Department) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO department (name, standard_code) VALUES ($1, $2) RETURNING id`,
		d.Name, d.StandardCode,
	).Scan(&d.ID)
	return db.MapError(err)
}

func (r *repoPG) Get(ctx context.Context, id int64) (*Department, error) {
	var d Department
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, standard_code FROM department WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.StandardCode)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &d, nil
}

func (r *repoPG) Update(ctx context.Context, d *Department) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE department SET name = $2, standard_code = $3 WHERE id = $1`,
		d.ID, d.Name, d.StandardCode)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM department WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM department`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, standard_code FROM department ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.Name, &d.StandardCode); err != nil {
			return nil, 0, err
		}
		out = append(out, &d)
	}
	return out, total, rows.Err()
}

// -- Resources --

func (r *repoPG) CreateResource(ctx context.Context, res *DepartmentResource) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO department_resource (hospital_id, dept_id, bed_count, device_count, daily_capacity)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		res.HospitalID, res.DeptID, res.BedCount, res.DeviceCount, res.DailyCapacity,
	).Scan(&res.ID)
	return db.MapError(err)
}

func (r *repoPG) GetResource(ctx context.Context, id int64) (*DepartmentResource, error) {
	var res DepartmentResource
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, hospital_id, dept_id, bed_count, device_count, daily_capacity
		FROM department_resource WHERE id = $1`, id,
	).Scan(&res.ID, &res.HospitalID, &res.DeptID, &res.BedCount, &res.DeviceCount, &res.DailyCapacity)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &res, nil
}

func (r *repoPG) UpdateResource(ctx context.Context, res *DepartmentResource) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE department_resource
		SET bed_count = $2, device_count = $3, daily_capacity = $4
		WHERE id = $1`,
		res.ID, res.BedCount, res.DeviceCount, res.DailyCapacity)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteResource(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM department_resource WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListResources(ctx context.Context, hospitalID int64, limit, offset int) ([]*DepartmentResource, int, error) {
	where := ""
	args := []interface{}{}
	if hospitalID != 0 {
		where = ` WHERE hospital_id = $1`
		args = append(args, hospitalID)
	}
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM department_resource`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	tail := ` ORDER BY id LIMIT $1 OFFSET $2`
	if hospitalID != 0 {
		tail = ` ORDER BY id LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, hospital_id, dept_id, bed_count, device_count, daily_capacity
		FROM department_resource`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*DepartmentResource
	for rows.Next() {
		var res DepartmentResource
		if err := rows.Scan(&res.ID, &res.HospitalID, &res.DeptID, &res.BedCount, &res.DeviceCount, &res.DailyCapacity); err != nil {
			return nil, 0, err
		}
		out = append(out, &res)
	}
	return out, total, rows.Err()
}

// -- Staff assignments --

func (r *repoPG) CreateStaffLink(ctx context.Context, ds *DepartmentStaff) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO department_staff (dept_id, staff_id, role_in_dept)
		VALUES ($1,$2,$3) RETURNING id`,
		ds.DeptID, ds.StaffID, ds.RoleInDept,
	).Scan(&ds.ID)
	return db.MapError(err)
}

func (r *repoPG) GetStaffLink(ctx context.Context, id int64) (*DepartmentStaff, error) {
	var ds DepartmentStaff
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, dept_id, staff_id, role_in_dept
		FROM department_staff WHERE id = $1`, id,
	).Scan(&ds.ID, &ds.DeptID, &ds.StaffID, &ds.RoleInDept)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &ds, nil
}

func (r *repoPG) UpdateStaffLink(ctx context.Context, ds *DepartmentStaff) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE department_staff SET role_in_dept = $2 WHERE id = $1`,
		ds.ID, ds.RoleInDept)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteStaffLink(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM department_staff WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListStaffLinks(ctx context.Context, deptID int64, limit, offset int) ([]*DepartmentStaff, int, error) {
	where := ""
	args := []interface{}{}
	if deptID != 0 {
		where = ` WHERE dept_id = $1`
		args = append(args, deptID)
	}
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM department_staff`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	tail := ` ORDER BY id LIMIT $1 OFFSET $2`
	if deptID != 0 {
		tail = ` ORDER BY id LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, dept_id, staff_id, role_in_dept
		FROM department_staff`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*DepartmentStaff
	for rows.Next() {
		var ds DepartmentStaff
		if err := rows.Scan(&ds.ID, &ds.DeptID, &ds.StaffID, &ds.RoleInDept); err != nil {
			return nil, 0, err
		}
		out = append(out, &ds)
	}
	return out, total, rows.Err()
}
