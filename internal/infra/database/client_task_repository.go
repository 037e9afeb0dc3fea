package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vendapro/crm-api/internal/entity"
)

type ClientTaskRepository struct {
	DB *sql.DB
}

func NewClientTaskRepository(db *sql.DB) *ClientTaskRepository {
	return &ClientTaskRepository{DB: db}
}

const clientTaskColumns = `id, client_id, theme, start_datetime, end_datetime,
	project_description, notes, status, created_at, updated_at`

func (r *ClientTaskRepository) Create(ctx context.Context, t *entity.ClientTask) error {
	query := `
		INSERT INTO client_tasks (` + clientTaskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID,
		t.ClientID,
		t.Theme,
		t.StartDateTime,
		t.EndDateTime,
		t.ProjectDescription,
		t.Notes,
		t.Status,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *ClientTaskRepository) FindByID(ctx context.Context, id string) (*entity.ClientTask, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+clientTaskColumns+` FROM client_tasks WHERE id = $1`, id)

	t, err := scanClientTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *ClientTaskRepository) FindAll(ctx context.Context) ([]entity.ClientTask, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+clientTaskColumns+` FROM client_tasks ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.ClientTask
	for rows.Next() {
		t, err := scanClientTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *ClientTaskRepository) Update(ctx context.Context, t *entity.ClientTask) error {
	query := `
		UPDATE client_tasks
		SET theme = $1, start_datetime = $2, end_datetime = $3,
			project_description = $4, notes = $5, status = $6, updated_at = $7
		WHERE id = $8
	`

	res, err := r.DB.ExecContext(ctx, query,
		t.Theme,
		t.StartDateTime,
		t.EndDateTime,
		t.ProjectDescription,
		t.Notes,
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

func (r *ClientTaskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM client_tasks WHERE id = $1`, id)
	return err
}

func scanClientTask(row rowScanner) (*entity.ClientTask, error) {
	var t entity.ClientTask
	err := row.Scan(
		&t.ID,
		&t.ClientID,
		&t.Theme,
		&t.StartDateTime,
		&t.EndDateTime,
		&t.ProjectDescription,
		&t.Notes,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
