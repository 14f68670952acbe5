package order

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InitSchema creates the orders table if it does not exist yet.
func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			channel VARCHAR(20) NOT NULL,
			lines JSONB NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			customer JSONB NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (r *PostgresRepository) Save(ctx context.Context, o *Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}

	var customer []byte
	if o.Customer != nil {
		customer, err = json.Marshal(o.Customer)
		if err != nil {
			return err
		}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, channel, lines, total, customer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, o.ID, o.Channel, lines, o.Total, customer, o.CreatedAt)

	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, channel, lines, total, customer, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order

	for rows.Next() {
		var (
			o        Order
			lines    []byte
			customer []byte
		)
		if err := rows.Scan(
			&o.ID,
			&o.Channel,
			&lines,
			&o.Total,
			&customer,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(lines, &o.Lines); err != nil {
			return nil, err
		}
		if len(customer) > 0 {
			var details checkout.CustomerDetails
			if err := json.Unmarshal(customer, &details); err != nil {
				return nil, err
			}
			o.Customer = &details
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}
