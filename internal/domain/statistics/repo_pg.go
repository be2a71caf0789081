package statistics

import (
	"context"
	"fmt"
	"strings"

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

func (r *repoPG) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM hospital),
			(SELECT COUNT(*) FROM district),
			(SELECT COUNT(*) FROM department),
			(SELECT COUNT(*) FROM staff),
			(SELECT COUNT(*) FROM emergency_event),
			(SELECT COALESCE(SUM(bed_total), 0) FROM hospital),
			(SELECT COALESCE(SUM(outpatient_capacity), 0) FROM hospital),
			(SELECT COALESCE(SUM(room_count), 0) FROM hospital_department),
			(SELECT COALESCE(SUM(device_count), 0) FROM department_resource),
			(SELECT COALESCE(SUM(dr.bed_count), 0)
			 FROM department_resource dr
			 JOIN department d ON d.id = dr.dept_id
			 WHERE d.name LIKE '%ICU%' OR d.name LIKE '%重症%')`,
	).Scan(&d.HospitalCount, &d.DistrictCount, &d.DepartmentCount, &d.StaffCount,
		&d.EventCount, &d.TotalBeds, &d.TotalOutpatient, &d.TotalRooms, &d.TotalDevices, &d.ICUBeds)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repoPG) RankRows(ctx context.Context, f RankFilter) ([]*rankRow, error) {
	var (
		conds []string
		args  []interface{}
	)
	if f.DistrictID != nil {
		args = append(args, *f.DistrictID)
		conds = append(conds, fmt.Sprintf("h.district_id = $%d", len(args)))
	}
	if f.LevelID != nil {
		args = append(args, *f.LevelID)
		conds = append(conds, fmt.Sprintf("h.level_id = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT h.id, h.name, d.name, l.name, h.bed_total, h.outpatient_capacity,
			(SELECT COALESCE(SUM(hd.room_count), 0) FROM hospital_department hd WHERE hd.hospital_id = h.id),
			(SELECT COALESCE(SUM(dr.device_count), 0) FROM department_resource dr WHERE dr.hospital_id = h.id),
			(SELECT COUNT(*) FROM hospital_staff hs WHERE hs.hospital_id = h.id)
		FROM hospital h
		JOIN district d ON d.id = h.district_id
		JOIN hospital_level l ON l.id = h.level_id`+where+`
		ORDER BY h.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*rankRow
	for rows.Next() {
		var rr rankRow
		if err := rows.Scan(&rr.HospitalID, &rr.HospitalName, &rr.DistrictName, &rr.LevelName,
			&rr.BedTotal, &rr.OutpatientCapacity, &rr.RoomCount, &rr.DeviceCount, &rr.StaffCount); err != nil {
			return nil, err
		}
		out = append(out, &rr)
	}
	return out, rows.Err()
}
