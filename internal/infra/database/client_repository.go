package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vendapro/crm-api/internal/entity"
)

// ClientRepository lê a projeção de cliente: companies com status CLIENT,
// com a localização vinda do lead que originou a promoção.
type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientSelect = `
	SELECT c.id, c.name, c.representative_name, c.cnpj,
		COALESCE(l.contact_location, ''), c.email, c.phone
	FROM companies c
	LEFT JOIN leads l ON l.company_id = c.id
	WHERE c.status = 'CLIENT'
`

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	row := r.DB.QueryRowContext(ctx, clientSelect+` AND c.id = $1`, id)

	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	rows, err := r.DB.QueryContext(ctx, clientSelect+` ORDER BY c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Representative,
		&c.CNPJ,
		&c.Location,
		&c.Email,
		&c.Phone,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
