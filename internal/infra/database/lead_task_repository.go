package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vendapro/crm-api/internal/entity"
)

type LeadTaskRepository struct {
	DB *sql.DB
}

func NewLeadTaskRepository(db *sql.DB) *LeadTaskRepository {
	return &LeadTaskRepository{DB: db}
}

const leadTaskColumns = `id, lead_id, contact, place, contact_method, environment,
	location, feedback, task_begin, task_end, status, created_at, updated_at`

func (r *LeadTaskRepository) Create(ctx context.Context, t *entity.LeadTask) error {
	query := `
		INSERT INTO lead_tasks (` + leadTaskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID,
		t.LeadID,
		t.Contact,
		t.Place,
		t.ContactMethod,
		t.Environment,
		t.Location,
		t.Feedback,
		t.TaskBegin,
		t.TaskEnd,
		t.Status,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *LeadTaskRepository) FindByID(ctx context.Context, id string) (*entity.LeadTask, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+leadTaskColumns+` FROM lead_tasks WHERE id = $1`, id)

	t, err := scanLeadTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *LeadTaskRepository) FindAll(ctx context.Context) ([]entity.LeadTask, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+leadTaskColumns+` FROM lead_tasks ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.LeadTask
	for rows.Next() {
		t, err := scanLeadTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *LeadTaskRepository) Update(ctx context.Context, t *entity.LeadTask) error {
	query := `
		UPDATE lead_tasks
		SET contact = $1, place = $2, contact_method = $3, environment = $4,
			location = $5, feedback = $6, task_begin = $7, task_end = $8,
			status = $9, updated_at = $10
		WHERE id = $11
	`

	res, err := r.DB.ExecContext(ctx, query,
		t.Contact,
		t.Place,
		t.ContactMethod,
		t.Environment,
		t.Location,
		t.Feedback,
		t.TaskBegin,
		t.TaskEnd,
		t.Status,
		t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadTaskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM lead_tasks WHERE id = $1`, id)
	return err
}

func scanLeadTask(row rowScanner) (*entity.LeadTask, error) {
	var t entity.LeadTask
	err := row.Scan(
		&t.ID,
		&t.LeadID,
		&t.Contact,
		&t.Place,
		&t.ContactMethod,
		&t.Environment,
		&t.Location,
		&t.Feedback,
		&t.TaskBegin,
		&t.TaskEnd,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
