package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vendapro/crm-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadSelect = `
	SELECT l.id, l.communication_channel, l.contact_location, l.offer,
		l.status, l.created_at, l.updated_at,
		c.id, c.name, c.cnpj, c.razao_social, c.representative_name,
		c.description, c.email, c.phone, c.business_area, c.status,
		c.created_at, c.updated_at
	FROM leads l
	JOIN companies c ON c.id = l.company_id
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, company_id, communication_channel, contact_location,
			offer, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Company.ID,
		lead.CommunicationChannel,
		lead.ContactLocation,
		lead.Offer,
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, leadSelect+` WHERE l.id = $1`, id)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, leadSelect+` ORDER BY l.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var company entity.Company

	err := row.Scan(
		&lead.ID,
		&lead.CommunicationChannel,
		&lead.ContactLocation,
		&lead.Offer,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&company.ID,
		&company.Name,
		&company.CNPJ,
		&company.RazaoSocial,
		&company.RepresentativeName,
		&company.Description,
		&company.Email,
		&company.Phone,
		&company.BusinessArea,
		&company.Status,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Company = &company
	return &lead, nil
}
