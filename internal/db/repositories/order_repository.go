package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/models/dtos"
	"skyharbor/booking/internal/models/entities"
)

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db}
}

// CreateWithTickets writes one order plus one ticket per spec in a single
// transaction. Either every row lands or none does; a unique-index
// violation on (flight, row, seat) surfaces as ErrSeatTaken. Specs must
// already be validated against the seat grid.
func (r *OrderRepository) CreateWithTickets(ctx context.Context, userID int64, specs []dtos.TicketSpec) (*entities.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback()

	var order entities.Order
	if err := tx.QueryRowxContext(ctx, constants.InsertOrder, userID).StructScan(&order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	order.Tickets = make([]entities.Ticket, 0, len(specs))
	for _, spec := range specs {
		ticket := entities.Ticket{
			Row:      spec.Row,
			Seat:     spec.Seat,
			FlightID: spec.Flight,
			OrderID:  order.ID,
		}
		err := tx.QueryRowxContext(ctx, constants.InsertTicket,
			spec.Row, spec.Seat, spec.Flight, order.ID,
		).Scan(&ticket.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, ErrSeatTaken
			}
			return nil, fmt.Errorf("insert ticket: %w", err)
		}
		order.Tickets = append(order.Tickets, ticket)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSeatTaken
		}
		return nil, fmt.Errorf("commit order: %w", err)
	}

	sortTickets(order.Tickets)
	return &order, nil
}

// ListByUser returns the caller's orders, newest first, with tickets
// attached in (row, seat) order.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]entities.Order, int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, constants.CountOrdersByUser, userID); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	offset := (page - 1) * pageSize
	var orders []entities.Order
	if err := r.db.SelectContext(ctx, &orders, constants.GetOrdersByUser, userID, pageSize, offset); err != nil {
		return nil, 0, fmt.Errorf("select orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, count, nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]*entities.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = &orders[i]
	}

	var tickets []entities.Ticket
	if err := r.db.SelectContext(ctx, &tickets, constants.GetTicketsByOrders, pq.Array(ids)); err != nil {
		return nil, 0, fmt.Errorf("select tickets: %w", err)
	}
	for _, t := range tickets {
		if o, ok := index[t.OrderID]; ok {
			o.Tickets = append(o.Tickets, t)
		}
	}

	return orders, count, nil
}

// TicketsForFlight returns every claimed seat on a flight, in (row, seat)
// order. Feeds the taken_places block of the flight detail view.
func (r *OrderRepository) TicketsForFlight(ctx context.Context, flightID int64) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	if err := r.db.SelectContext(ctx, &tickets, constants.GetTicketsByFlight, flightID); err != nil {
		return nil, fmt.Errorf("select flight tickets: %w", err)
	}
	return tickets, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func sortTickets(tickets []entities.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].Row != tickets[j].Row {
			return tickets[i].Row < tickets[j].Row
		}
		return tickets[i].Seat < tickets[j].Seat
	})
}
