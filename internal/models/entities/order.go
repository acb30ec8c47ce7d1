package entities

import "time"

// Order is the transactional envelope around one or more tickets. It has
// no mutable fields after creation.
type Order struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`

	Tickets []Ticket `db:"-"`
}

// Ticket claims one (flight, row, seat) cell. The triple is unique across
// the whole store; the index is the serialization point for racing orders.
type Ticket struct {
	ID       int64 `db:"id"`
	Row      int   `db:"row"`
	Seat     int   `db:"seat"`
	FlightID int64 `db:"flight_id"`
	OrderID  int64 `db:"order_id"`
}
