package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vendapro/crm-api/internal/entity"
)

// PromotionAttemptRepository guarda o checkpoint das promoções em
// andamento, uma linha por lead.
type PromotionAttemptRepository struct {
	DB *sql.DB
}

func NewPromotionAttemptRepository(db *sql.DB) *PromotionAttemptRepository {
	return &PromotionAttemptRepository{DB: db}
}

func (r *PromotionAttemptRepository) Save(ctx context.Context, a *entity.PromotionAttempt) error {
	// Retentativa de uma promoção que já tem checkpoint reaproveita a linha.
	query := `
		INSERT INTO promotion_attempts (lead_id, company_id, company_promoted, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lead_id) DO UPDATE SET company_id = EXCLUDED.company_id
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.LeadID,
		a.CompanyID,
		a.CompanyPromoted,
		a.CreatedAt,
	)
	return err
}

func (r *PromotionAttemptRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.PromotionAttempt, error) {
	query := `
		SELECT lead_id, company_id, company_promoted, created_at
		FROM promotion_attempts
		WHERE lead_id = $1
	`

	var a entity.PromotionAttempt
	err := r.DB.QueryRowContext(ctx, query, leadID).Scan(
		&a.LeadID,
		&a.CompanyID,
		&a.CompanyPromoted,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PromotionAttemptRepository) MarkCompanyPromoted(ctx context.Context, leadID string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE promotion_attempts SET company_promoted = TRUE WHERE lead_id = $1`, leadID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *PromotionAttemptRepository) Delete(ctx context.Context, leadID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM promotion_attempts WHERE lead_id = $1`, leadID)
	return err
}
