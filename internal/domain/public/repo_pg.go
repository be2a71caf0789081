package public

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

func (r *repoPG) Search(ctx context.Context, req *SearchRequest, limit, offset int) ([]*HospitalSummary, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	if req.DistrictID != 0 {
		args = append(args, req.DistrictID)
		conds = append(conds, fmt.Sprintf("h.district_id = $%d", len(args)))
	}
	if req.LevelID != 0 {
		args = append(args, req.LevelID)
		conds = append(conds, fmt.Sprintf("h.level_id = $%d", len(args)))
	}
	if req.Name != "" {
		args = append(args, "%"+req.Name+"%")
		conds = append(conds, fmt.Sprintf("h.name ILIKE $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM hospital h`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx, fmt.Sprintf(`
		SELECT h.id, h.name, h.address, h.district_id, d.name, h.level_id, l.name,
			h.longitude, h.latitude, h.bed_total, h.outpatient_capacity,
			(SELECT COUNT(*) FROM hospital_staff hs WHERE hs.hospital_id = h.id)
		FROM hospital h
		JOIN district d ON d.id = h.district_id
		JOIN hospital_level l ON l.id = h.level_id
		%s ORDER BY h.id LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*HospitalSummary
	for rows.Next() {
		var hs HospitalSummary
		if err := rows.Scan(&hs.ID, &hs.Name, &hs.Address, &hs.DistrictID, &hs.DistrictName,
			&hs.LevelID, &hs.LevelName, &hs.Longitude, &hs.Latitude,
			&hs.BedTotal, &hs.OutpatientCapacity, &hs.StaffCount); err != nil {
			return nil, 0, err
		}
		out = append(out, &hs)
	}
	return out, total, rows.Err()
}
