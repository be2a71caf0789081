package event

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

// -- Events --

func (r *repoPG) CreateEvent(ctx context.Context, ev *EmergencyEvent) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO emergency_event (event_type, severity, report_time)
		VALUES ($1,$2,$3) RETURNING id`,
		ev.EventType, ev.Severity, ev.ReportTime,
	).Scan(&ev.ID)
	return db.MapError(err)
}

func (r *repoPG) GetEvent(ctx context.Context, id int64) (*EmergencyEvent, error) {
	var ev EmergencyEvent
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, event_type, severity, report_time
		FROM emergency_event WHERE id = $1`, id,
	).Scan(&ev.ID, &ev.EventType, &ev.Severity, &ev.ReportTime)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &ev, nil
}

func (r *repoPG) UpdateEvent(ctx context.Context, ev *EmergencyEvent) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE emergency_event SET event_type = $2, severity = $3, report_time = $4
		WHERE id = $1`,
		ev.ID, ev.EventType, ev.Severity, ev.ReportTime)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteEvent(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM emergency_event WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListEvents(ctx context.Context, limit, offset int) ([]*EmergencyEvent, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM emergency_event`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, event_type, severity, report_time
		FROM emergency_event
		ORDER BY report_time DESC NULLS LAST, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*EmergencyEvent
	for rows.Next() {
		var ev EmergencyEvent
		if err := rows.Scan(&ev.ID, &ev.EventType, &ev.Severity, &ev.ReportTime); err != nil {
			return nil, 0, err
		}
		out = append(out, &ev)
	}
	return out, total, rows.Err()
}

func (r *repoPG) HospitalInvolved(ctx context.Context, eventID, hospitalID int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM hospital_event WHERE event_id = $1 AND hospital_id = $2
		)`, eventID, hospitalID).Scan(&exists)
	return exists, err
}

// -- Participation links --

func (r *repoPG) CreateLink(ctx context.Context, he *HospitalEvent) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO hospital_event (hospital_id, event_id, role, response_time, affected_patient_count)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		he.HospitalID, he.EventID, he.Role, he.ResponseTime, he.AffectedPatientCount,
	).Scan(&he.ID)
	return db.MapError(err)
}

func (r *repoPG) GetLink(ctx context.Context, id int64) (*HospitalEvent, error) {
	var he HospitalEvent
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, hospital_id, event_id, role, response_time, affected_patient_count
		FROM hospital_event WHERE id = $1`, id,
	).Scan(&he.ID, &he.HospitalID, &he.EventID, &he.Role, &he.ResponseTime, &he.AffectedPatientCount)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &he, nil
}

func (r *repoPG) UpdateLink(ctx context.Context, he *HospitalEvent) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE hospital_event SET role = $2, response_time = $3, affected_patient_count = $4
		WHERE id = $1`,
		he.ID, he.Role, he.ResponseTime, he.AffectedPatientCount)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteLink(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospital_event WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ListLinks(ctx context.Context, hospitalID int64, limit, offset int) ([]*HospitalEvent, int, error) {
	where := ""
	args := []interface{}{}
	if hospitalID != 0 {
		where = ` WHERE hospital_id = $1`
		args = append(args, hospitalID)
	}
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM hospital_event`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	tail := ` ORDER BY id LIMIT $1 OFFSET $2`
	if hospitalID != 0 {
		tail = ` ORDER BY id LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, hospital_id, event_id, role, response_time, affected_patient_count
		FROM hospital_event`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*HospitalEvent
	for rows.Next() {
		var he HospitalEvent
		if err := rows.Scan(&he.ID, &he.HospitalID, &he.EventID, &he.Role, &he.ResponseTime, &he.AffectedPatientCount); err != nil {
			return nil, 0, err
		}
		out = append(out, &he)
	}
	return out, total, rows.Err()
}
