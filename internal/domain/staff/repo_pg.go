package staff

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

// -- Staff --

// CreateStaff assigns id = max(id)+1 in the same statement so that the
// numbering is computed under the caller's transaction.
func (r *repoPG) CreateStaff(ctx context.Context, st *Staff) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO staff (id, name, gender, title, phone, hire_date)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM staff), $1, $2, $3, $4, $5)
		RETURNING id`,
		st.Name, st.Gender, st.Title, st.Phone, st.HireDate,
	).Scan(&st.ID)
	return db.MapError(err)
}

func (r *repoPG) GetStaff(ctx context.Context, id int64) (*Staff, error) {
	var st Staff
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, name, gender, title, phone, hire_date
		FROM staff WHERE id = $1`, id,
	).Scan(&st.ID, &st.Name, &st.Gender, &st.Title, &st.Phone, &st.HireDate)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &st, nil
}

func (r *repoPG) UpdateStaff(ctx context.Context, st *Staff) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE staff SET name = $2, gender = $3, title = $4, phone = $5, hire_date = $6
		WHERE id = $1`,
		st.ID, st.Name, st.Gender, st.Title, st.Phone, st.HireDate)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteStaff(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListStaff(ctx context.Context, hospitalID int64, limit, offset int) ([]*Staff, int, error) {
	if hospitalID == 0 {
		var total int
		if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
			return nil, 0, err
		}
		rows, err := r.conn(ctx).Query(ctx, `
			SELECT id, name, gender, title, phone, hire_date
			FROM staff ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return nil, 0, err
		}
		defer rows.Close()
		return collectStaff(rows, total)
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM staff s
		JOIN hospital_staff hs ON hs.staff_id = s.id
		WHERE hs.hospital_id = $1`, hospitalID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT s.id, s.name, s.gender, s.title, s.phone, s.hire_date
		FROM staff s
		JOIN hospital_staff hs ON hs.staff_id = s.id
		WHERE hs.hospital_id = $1
		ORDER BY s.id LIMIT $2 OFFSET $3`, hospitalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectStaff(rows, total)
}

func collectStaff(rows pgx.Rows, total int) ([]*Staff, int, error) {
	var out []*Staff
	for rows.Next() {
		var st Staff
		if err := rows.Scan(&st.ID, &st.Name, &st.Gender, &st.Title, &st.Phone, &st.HireDate); err != nil {
			return nil, 0, err
		}
		out = append(out, &st)
	}
	return out, total, rows.Err()
}

func (r *repoPG) LinkedToHospital(ctx context.Context, staffID, hospitalID int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM hospital_staff WHERE staff_id = $1 AND hospital_id = $2
		)`, staffID, hospitalID).Scan(&exists)
	return exists, err
}

// -- Employment links --

func (r *repoPG) CreateLink(ctx context.Context, hs *HospitalStaff) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO hospital_staff (hospital_id, staff_id, employment_type)
		VALUES ($1,$2,$3) RETURNING id`,
		hs.HospitalID, hs.StaffID, hs.EmploymentType,
	).Scan(&hs.ID)
	return db.MapError(err)
}

func (r *repoPG) GetLink(ctx context.Context, id int64) (*HospitalStaff, error) {
	var hs HospitalStaff
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, hospital_id, staff_id, employment_type
		FROM hospital_staff WHERE id = $1`, id,
	).Scan(&hs.ID, &hs.HospitalID, &hs.StaffID, &hs.EmploymentType)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &hs, nil
}

func (r *repoPG) UpdateLink(ctx context.Context, hs *HospitalStaff) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE hospital_staff SET employment_type = $2 WHERE id = $1`,
		hs.ID, hs.EmploymentType)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteLink(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospital_staff WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListLinks(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalStaff, int, error) {
	where := ""
	args := []interface{}{}
	if hospitalID != 0 {
		where = ` WHERE hospital_id = $1`
		args = append(args, hospitalID)
	}
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM hospital_staff`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	tail := ` ORDER BY id LIMIT $1 OFFSET $2`
	if hospitalID != 0 {
		tail = ` ORDER BY id LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, hospital_id, staff_id, employment_type
		FROM hospital_staff`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*HospitalStaff
	for rows.Next() {
		var hs HospitalStaff
		if err := rows.Scan(&hs.ID, &hs.HospitalID, &hs.StaffID, &hs.EmploymentType); err != nil {
			return nil, 0, err
		}
		out = append(out, &hs)
	}
	return out, total, rows.Err()
}

// -- Statistics inputs --

func (r *repoPG) TitleCounts(ctx context.Context, hospitalID int64) ([]*TitleCount, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if hospitalID == 0 {
		rows, err = r.conn(ctx).Query(ctx, `
			SELECT COALESCE(title, ''), COUNT(*)
			FROM staff GROUP BY 1`)
	} else {
		rows, err = r.conn(ctx).Query(ctx, `
			SELECT COALESCE(s.title, ''), COUNT(*)
			FROM staff s
			JOIN hospital_staff hs ON hs.staff_id = s.id
			WHERE hs.hospital_id = $1
			GROUP BY 1`, hospitalID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*TitleCount
	for rows.Next() {
		var tc TitleCount
		if err := rows.Scan(&tc.Title, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, &tc)
	}
	return out, rows.Err()
}

func (r *repoPG) CountByHospital(ctx context.Context, hospitalID int64) ([]*HospitalStaffCount, error) {
	where := ""
	args := []interface{}{}
	if hospitalID != 0 {
		where = ` WHERE h.id = $1`
		args = append(args, hospitalID)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT h.id, h.name, COUNT(hs.id)
		FROM hospital h
		LEFT JOIN hospital_staff hs ON hs.hospital_id = h.id`+where+`
		GROUP BY h.id, h.name
		ORDER BY COUNT(hs.id) DESC, h.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*HospitalStaffCount
	for rows.Next() {
		var hc HospitalStaffCount
		if err := rows.Scan(&hc.HospitalID, &hc.HospitalName, &hc.StaffCount); err != nil {
			return nil, err
		}
		out = append(out, &hc)
	}
	return out, rows.Err()
}
