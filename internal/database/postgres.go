package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shuklarituparn/order-service/internal/domain"
)

// Orders live in a single table: order_uid text primary key + the full
// serialized document in a jsonb payload column. Optional fields can be
// added to the document later without a schema migration.
const uniqueViolation = "23505"

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			order_uid text PRIMARY KEY,
			payload   jsonb NOT NULL
		)
	`)
	return err
}

// Insert persists a new order. A primary-key conflict surfaces as
// domain.ErrDuplicate: the constraint is the final arbiter when two
// creates race past the cache check, and it still holds after a restart
// when the cache knows nothing.
func (r *Repo) Insert(ctx context.Context, o *domain.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", o.OrderUID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO orders (order_uid, payload) VALUES ($1, $2)`,
		o.OrderUID, payload,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.OrderUID, err)
	}
	return nil
}

func (r *Repo) GetByUID(ctx context.Context, uid string) (*domain.Order, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM orders WHERE order_uid = $1`, uid,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", uid, err)
	}

	var o domain.Order
	if err := json.Unmarshal(payload, &o); err != nil {
		// Corrupt payload is a storage failure, never a not-found.
		return nil, fmt.Errorf("decode order %s: %w", uid, err)
	}
	return &o, nil
}

func (r *Repo) RecentOrderIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_uid FROM orders
		ORDER BY payload->>'date_created' DESC NULLS LAST
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
