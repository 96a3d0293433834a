package repository

import (
	"database/sql"
	"trendwire/internal/model"
)

type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) SaveRun(run *model.Run) error {
	return r.db.QueryRow(`
		INSERT INTO trend_run(hours_back, batch_size, article_count, batch_count, preliminary_count, trend_count, status, error_message, duration_ms)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, run.HoursBack, run.BatchSize, run.ArticleCount, run.BatchCount, run.PreliminaryCount, run.TrendCount, run.Status, run.ErrorMessage, run.DurationMS).Scan(&run.ID, &run.CreatedAt)
}

func (r *RunRepository) GetRuns(limit, offset int) ([]model.Run, error) {
	rows, err := r.db.Query(`
		SELECT id, hours_back, batch_size, article_count, batch_count, preliminary_count, trend_count, status, error_message, duration_ms, created_at
		FROM trend_run
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var run model.Run
		err := rows.Scan(&run.ID, &run.HoursBack, &run.BatchSize, &run.ArticleCount, &run.BatchCount, &run.PreliminaryCount, &run.TrendCount, &run.Status, &run.ErrorMessage, &run.DurationMS, &run.CreatedAt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func (r *RunRepository) GetRunTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM trend_run`).Scan(&total)
	return total, err
}

func (r *RunRepository) Ping() error {
	return r.db.Ping()
}
