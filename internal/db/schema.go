package db

import "github.com/jmoiron/sqlx"

// Order and ticket tables live on the sqlx side of the store; the unique
// index on (flight_id, row, seat) is the seat-inventory constraint that
// serializes racing submissions.
const orderSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tickets (
	id        BIGSERIAL PRIMARY KEY,
	"row"     INT NOT NULL,
	seat      INT NOT NULL,
	flight_id BIGINT NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
	order_id  BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_flight_row_seat
	ON tickets (flight_id, "row", seat);
`

// EnsureOrderSchema creates the transactional tables when absent.
func EnsureOrderSchema(db *sqlx.DB) error {
	_, err := db.Exec(orderSchema)
	return err
}
