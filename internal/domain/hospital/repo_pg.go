package hospital

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

// -- Districts --

func (r *repoPG) CreateDistrict(ctx context.Context, d *District) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO district (name) VALUES ($1) RETURNING id`, d.Name,
	).Scan(&d.ID)
	return db.MapError(err)
}

func (r *repoPG) GetDistrict(ctx context.Context, id int64) (*District, error) {
	var d District
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name FROM district WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &d, nil
}

func (r *repoPG) UpdateDistrict(ctx context.Context, d *District) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE district SET name = $2 WHERE id = $1`, d.ID, d.Name)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteDistrict(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM district WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListDistricts(ctx context.Context, limit, offset int) ([]*District, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM district`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name FROM district ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*District
	for rows.Next() {
		var d District
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, 0, err
		}
		out = append(out, &d)
	}
	return out, total, rows.Err()
}

// -- Levels --

func (r *repoPG) CreateLevel(ctx context.Context, l *HospitalLevel) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO hospital_level (name, description) VALUES ($1, $2) RETURNING id`,
		l.Name, l.Description,
	).Scan(&l.ID)
	return db.MapError(err)
}

func (r *repoPG) GetLevel(ctx context.Context, id int64) (*HospitalLevel, error) {
	var l HospitalLevel
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, description FROM hospital_level WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Description)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &l, nil
}

func (r *repoPG) UpdateLevel(ctx context.Context, l *HospitalLevel) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE hospital_level SET name = $2, description = $3 WHERE id = $1`,
		l.ID, l.Name, l.Description)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteLevel(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospital_level WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListLevels(ctx context.Context, limit, offset int) ([]*HospitalLevel, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM hospital_level`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, description FROM hospital_level ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*HospitalLevel
	for rows.Next() {
		var l HospitalLevel
		if err := rows.Scan(&l.ID, &l.Name, &l.Description); err != nil {
			return nil, 0, err
		}
		out = append(out, &l)
	}
	return out, total, rows.Err()
}

// -- Hospitals --

const hospitalCols = `h.id, h.name, h.address, h.district_id, h.level_id,
	h.longitude, h.latitude, h.established_year, h.bed_total, h.outpatient_capacity,
	d.name AS district_name, l.name AS level_name,
	(SELECT COUNT(*) FROM hospital_staff hs WHERE hs.hospital_id = h.id) AS staff_count`

const hospitalFrom = ` FROM hospital h
	JOIN district d ON d.id = h.district_id
	JOIN hospital_level l ON l.id = h.level_id`

func (r *repoPG) CreateHospital(ctx context.Context, h *Hospital) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO hospital (name, address, district_id, level_id, longitude, latitude,
			established_year, bed_total, outpatient_capacity)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`,
		h.Name, h.Address, h.DistrictID, h.LevelID, h.Longitude, h.Latitude,
		h.EstablishedYear, h.BedTotal, h.OutpatientCapacity,
	).Scan(&h.ID)
	return db.MapError(err)
}

func (r *repoPG) GetHospital(ctx context.Context, id int64) (*Hospital, error) {
	h, err := scanHospital(r.conn(ctx).QueryRow(ctx,
		`SELECT `+hospitalCols+hospitalFrom+` WHERE h.id = $1`, id))
	if err != nil {
		return nil, db.MapError(err)
	}
	return h, nil
}

func (r *repoPG) UpdateHospital(ctx context.Context, h *Hospital) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE hospital SET name=$2, address=$3, district_id=$4, level_id=$5,
			longitude=$6, latitude=$7, established_year=$8, bed_total=$9,
			outpatient_capacity=$10
		WHERE id = $1`,
		h.ID, h.Name, h.Address, h.DistrictID, h.LevelID,
		h.Longitude, h.Latitude, h.EstablishedYear, h.BedTotal, h.OutpatientCapacity)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteHospital(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospital WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListHospitals(ctx context.Context, limit, offset int) ([]*Hospital, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM hospital`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+hospitalCols+hospitalFrom+` ORDER BY h.id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectHospitals(rows, total)
}

func scanHospital(row pgx.Row) (*Hospital, error) {
	var h Hospital
	err := row.Scan(
		&h.ID, &h.Name, &h.Address, &h.DistrictID, &h.LevelID,
		&h.Longitude, &h.Latitude, &h.EstablishedYear, &h.BedTotal, &h.OutpatientCapacity,
		&h.DistrictName, &h.LevelName, &h.StaffCount,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func collectHospitals(rows pgx.Rows, total int) ([]*Hospital, int, error) {
	var out []*Hospital
	for rows.Next() {
		var h Hospital
		err := rows.Scan(
			&h.ID, &h.Name, &h.Address, &h.DistrictID, &h.LevelID,
			&h.Longitude, &h.Latitude, &h.EstablishedYear, &h.BedTotal, &h.OutpatientCapacity,
			&h.DistrictName, &h.LevelName, &h.StaffCount,
		)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, &h)
	}
	return out, total, rows.Err()
}

// -- Department placements --

func (r *repoPG) CreateDepartmentLink(ctx context.Context, hd *HospitalDepartment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO hospital_department (hospital_id, dept_id, floor, room_count)
		VALUES ($1,$2,$3,$4) RETURNING id`,
		hd.HospitalID, hd.DeptID, hd.Floor, hd.RoomCount,
	).Scan(&hd.ID)
	return db.MapError(err)
}

func (r *repoPG) GetDepartmentLink(ctx context.Context, id int64) (*HospitalDepartment, error) {
	var hd HospitalDepartment
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, hospital_id, dept_id, floor, room_count
		FROM hospital_department WHERE id = $1`, id,
	).Scan(&hd.ID, &hd.HospitalID, &hd.DeptID, &hd.Floor, &hd.RoomCount)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &hd, nil
}

func (r *repoPG) UpdateDepartmentLink(ctx context.Context, hd *HospitalDepartment) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE hospital_department SET floor = $2, room_count = $3 WHERE id = $1`,
		hd.ID, hd.Floor, hd.RoomCount)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteDepartmentLink(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospital_department WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListDepartmentLinks(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalDepartment, int, error) {
	where, args := scopeClause(hospitalID)
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM hospital_department`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, hospital_id, dept_id, floor, room_count
		FROM hospital_department`+where+orderLimit(len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*HospitalDepartment
	for rows.Next() {
		var hd HospitalDepartment
		if err := rows.Scan(&hd.ID, &hd.HospitalID, &hd.DeptID, &hd.Floor, &hd.RoomCount); err != nil {
			return nil, 0, err
		}
		out = append(out, &hd)
	}
	return out, total, rows.Err()
}

// -- Service scores --

func (r *repoPG) CreateScore(ctx context.Context, s *HospitalServiceScore) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO hospital_service_score (hospital_id, hygiene_score, satisfaction_score, last_inspection_date)
		VALUES ($1,$2,$3,$4) RETURNING id`,
		s.HospitalID, s.HygieneScore, s.SatisfactionScore, s.LastInspectionDate,
	).Scan(&s.ID)
	return db.MapError(err)
}

func (r *repoPG) GetScore(ctx context.Context, id int64) (*HospitalServiceScore, error) {
	var s HospitalServiceScore
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, hospital_id, hygiene_score, satisfaction_score, last_inspection_date
		FROM hospital_service_score WHERE id = $1`, id,
	).Scan(&s.ID, &s.HospitalID, &s.HygieneScore, &s.SatisfactionScore, &s.LastInspectionDate)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &s, nil
}

func (r *repoPG) UpdateScore(ctx context.Context, s *HospitalServiceScore) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE hospital_service_score
		SET hygiene_score = $2, satisfaction_score = $3, last_inspection_date = $4
		WHERE id = $1`,
		s.ID, s.HygieneScore, s.SatisfactionScore, s.LastInspectionDate)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteScore(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospital_service_score WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListScores(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalServiceScore, int, error) {
	where, args := scopeClause(hospitalID)
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM hospital_service_score`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, hospital_id, hygiene_score, satisfaction_score, last_inspection_date
		FROM hospital_service_score`+where+orderLimit(len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectScores(rows, total)
}

func collectScores(rows pgx.Rows, total int) ([]*HospitalServiceScore, int, error) {
	var out []*HospitalServiceScore
	for rows.Next() {
		var s HospitalServiceScore
		if err := rows.Scan(&s.ID, &s.HospitalID, &s.HygieneScore, &s.SatisfactionScore, &s.LastInspectionDate); err != nil {
			return nil, 0, err
		}
		out = append(out, &s)
	}
	return out, total, rows.Err()
}

// scopeClause builds an optional hospital filter. A zero hospitalID means no
// filter.
func scopeClause(hospitalID int64) (string, []interface{}) {
	if hospitalID == 0 {
		return "", nil
	}
	return " WHERE hospital_id = $1", []interface{}{hospitalID}
}

// orderLimit appends the ordering and paging tail; n is the total number of
// bound args after limit and offset were appended.
func orderLimit(n int) string {
	if n == 2 {
		return " ORDER BY id LIMIT $1 OFFSET $2"
	}
	return " ORDER BY id LIMIT $2 OFFSET $3"
}

// -- Per-hospital sub-resources --

func (r *repoPG) DepartmentsOfHospital(ctx context.Context, hospitalID int64) ([]*HospitalDepartment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT hd.id, hd.hospital_id, hd.dept_id, hd.floor, hd.room_count, dep.name
		FROM hospital_department hd
		JOIN department dep ON dep.id = hd.dept_id
		WHERE hd.hospital_id = $1
		ORDER BY dep.name`, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*HospitalDepartment
	for rows.Next() {
		var hd HospitalDepartment
		if err := rows.Scan(&hd.ID, &hd.HospitalID, &hd.DeptID, &hd.Floor, &hd.RoomCount, &hd.DeptName); err != nil {
			return nil, err
		}
		out = append(out, &hd)
	}
	return out, rows.Err()
}

func (r *repoPG) ScoresOfHospital(ctx context.Context, hospitalID int64) ([]*HospitalServiceScore, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, hospital_id, hygiene_score, satisfaction_score, last_inspection_date
		FROM hospital_service_score
		WHERE hospital_id = $1
		ORDER BY last_inspection_date DESC NULLS LAST`, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, _, err := collectScores(rows, 0)
	return out, err
}

func (r *repoPG) EventsOfHospital(ctx context.Context, hospitalID int64) ([]*ParticipatedEvent, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT e.id, e.event_type, e.severity, e.report_time,
			he.role, he.response_time, he.affected_patient_count
		FROM hospital_event he
		JOIN emergency_event e ON e.id = he.event_id
		WHERE he.hospital_id = $1
		ORDER BY e.report_time DESC NULLS LAST`, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ParticipatedEvent
	for rows.Next() {
		var pe ParticipatedEvent
		if err := rows.Scan(&pe.EventID, &pe.EventType, &pe.Severity, &pe.ReportTime,
			&pe.Role, &pe.ResponseTime, &pe.AffectedPatientCount); err != nil {
			return nil, err
		}
		out = append(out, &pe)
	}
	return out, rows.Err()
}

func (r *repoPG) DepartmentDetail(ctx context.Context, hospitalID, deptID int64) (*DepartmentDetail, error) {
	var d DepartmentDetail
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT hd.hospital_id, hd.dept_id, dep.name, hd.floor, hd.room_count,
			COALESCE(dr.bed_count, 0), COALESCE(dr.device_count, 0), COALESCE(dr.daily_capacity, 0)
		FROM hospital_department hd
		JOIN department dep ON dep.id = hd.dept_id
		LEFT JOIN department_resource dr
			ON dr.hospital_id = hd.hospital_id AND dr.dept_id = hd.dept_id
		WHERE hd.hospital_id = $1 AND hd.dept_id = $2`, hospitalID, deptID,
	).Scan(&d.HospitalID, &d.DeptID, &d.DeptName, &d.Floor, &d.RoomCount,
		&d.BedCount, &d.DeviceCount, &d.DailyCapacity)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &d, nil
}
