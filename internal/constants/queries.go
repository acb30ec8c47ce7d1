package constants

// "row" is a reserved word in Postgres, so it stays quoted everywhere.
const (
	InsertOrder = `
	INSERT INTO orders (user_id) VALUES ($1)
	RETURNING id, user_id, created_at
	`

	InsertTicket = `
	INSERT INTO tickets ("row", seat, flight_id, order_id)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	GetOrdersByUser = `
	SELECT id, user_id, created_at FROM orders
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2 OFFSET $3
	`

	CountOrdersByUser = `
	SELECT COUNT(*) FROM orders WHERE user_id = $1
	`

	GetTicketsByOrders = `
	SELECT id, "row", seat, flight_id, order_id FROM tickets
	WHERE order_id = ANY($1)
	ORDER BY order_id, "row", seat
	`

	GetTicketsByFlight = `
	SELECT id, "row", seat, flight_id, order_id FROM tickets
	WHERE flight_id = $1
	ORDER BY "row", seat
	`
)
