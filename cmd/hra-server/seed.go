package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hra/hra/internal/platform/db"
)

// seed loads a small demo dataset. It runs in one transaction so a partial
// load never survives, and it is idempotent enough for a fresh database.
func seed(ctx context.Context, pool *pgxpool.Pool) error {
	return db.RunInTx(ctx, pool, func(ctx context.Context) error {
		tx := db.TxFromContext(ctx)

		var districts []int64
		for _, name := range []string{"东城区", "西城区", "高新区"} {
			var id int64
			if err := tx.QueryRow(ctx,
				`INSERT INTO district (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
				return err
			}
			districts = append(districts, id)
		}

		var levels []int64
		for _, lv := range []struct{ name, desc string }{
			{"三级甲等", "Tertiary A"},
			{"二级甲等", "Secondary A"},
			{"一级", "Primary"},
		} {
			var id int64
			if err := tx.QueryRow(ctx,
				`INSERT INTO hospital_level (name, description) VALUES ($1,$2) RETURNING id`,
				lv.name, lv.desc).Scan(&id); err != nil {
				return err
			}
			levels = append(levels, id)
		}

		var hospitals []int64
		for _, h := range []struct {
			name     string
			district int64
			level    int64
			beds     int
			outp     int
		}{
			{"市第一人民医院", districts[0], levels[0], 1200, 5000},
			{"市中医院", districts[1], levels[1], 600, 2500},
			{"高新区社区医院", districts[2], levels[2], 80, 600},
		} {
			var id int64
			if err := tx.QueryRow(ctx, `
				INSERT INTO hospital (name, district_id, level_id, bed_total, outpatient_capacity)
				VALUES ($1,$2,$3,$4,$5) RETURNING id`,
				h.name, h.district, h.level, h.beds, h.outp).Scan(&id); err != nil {
				return err
			}
			hospitals = append(hospitals, id)
		}

		var depts []int64
		for _, d := range []struct{ name, code string }{
			{"内科", "IM"},
			{"外科", "SURG"},
			{"重症医学科", "ICU"},
			{"急诊科", "ED"},
		} {
			var id int64
			if err := tx.QueryRow(ctx,
				`INSERT INTO department (name, standard_code) VALUES ($1,$2) RETURNING id`,
				d.name, d.code).Scan(&id); err != nil {
				return err
			}
			depts = append(depts, id)
		}

		for _, link := range []struct {
			hospital int64
			dept     int64
			beds     int
		}{
			{hospitals[0], depts[0], 200},
			{hospitals[0], depts[2], 40},
			{hospitals[0], depts[3], 60},
			{hospitals[1], depts[0], 120},
			{hospitals[2], depts[0], 30},
		} {
			if _, err := tx.Exec(ctx, `
				INSERT INTO hospital_department (hospital_id, dept_id) VALUES ($1,$2)`,
				link.hospital, link.dept); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO department_resource (hospital_id, dept_id, bed_count, device_count, daily_capacity)
				VALUES ($1,$2,$3,$4,$5)`,
				link.hospital, link.dept, link.beds, link.beds/4, link.beds*5); err != nil {
				return err
			}
		}

		for _, st := range []struct {
			name     string
			title    string
			hospital int64
		}{
			{"张伟", "主任医师", hospitals[0]},
			{"李娜", "主治医师", hospitals[0]},
			{"王芳", "护士长", hospitals[0]},
			{"刘洋", "医师", hospitals[1]},
			{"陈静", "护士", hospitals[1]},
			{"杨光", "医师", hospitals[2]},
		} {
			var id int64
			if err := tx.QueryRow(ctx, `
				INSERT INTO staff (id, name, title)
				VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM staff), $1, $2)
				RETURNING id`, st.name, st.title).Scan(&id); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO hospital_staff (hospital_id, staff_id, employment_type)
				VALUES ($1,$2,'full_time')`, st.hospital, id); err != nil {
				return err
			}
		}

		return nil
	})
}
