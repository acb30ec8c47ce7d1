package services

import (
	"context"
	"errors"
	"fmt"

	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/metrics"
	"skyharbor/booking/internal/models/dtos"
	"skyharbor/booking/internal/models/entities"
	gormModels "skyharbor/booking/internal/models/gorm"
)

// ErrEmptyOrder is returned for a submission with no tickets.
var ErrEmptyOrder = errors.New("order must contain at least one ticket")

// DuplicateTicketError marks two identical (flight, row, seat) specs
// inside one submission. Cross-submission duplicates are caught by the
// store's uniqueness constraint instead.
type DuplicateTicketError struct {
	Spec dtos.TicketSpec
}

func (e *DuplicateTicketError) Error() string {
	return fmt.Sprintf("duplicate ticket found in input data: flight %d row %d seat %d",
		e.Spec.Flight, e.Spec.Row, e.Spec.Seat)
}

// FlightNotFoundError marks a spec referencing a flight id that does not
// exist.
type FlightNotFoundError struct {
	FlightID int64
}

func (e *FlightNotFoundError) Error() string {
	return fmt.Sprintf("flight %d not found", e.FlightID)
}

// FlightStore resolves flights with their airplane loaded.
type FlightStore interface {
	GetByID(ctx context.Context, id int64) (*gormModels.Flight, error)
}

// OrderStore commits an order and its tickets as one unit of work.
type OrderStore interface {
	CreateWithTickets(ctx context.Context, userID int64, specs []dtos.TicketSpec) (*entities.Order, error)
	ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]entities.Order, int64, error)
}

// AdmissionService validates booking submissions and commits them
// atomically. All validation happens before any write; the only error
// possible during the write is the seat uniqueness violation, which the
// order store surfaces as repositories.ErrSeatTaken.
type AdmissionService struct {
	flights FlightStore
	orders  OrderStore
	metrics *metrics.MetricsRegistry
}

func NewAdmissionService(flights FlightStore, orders OrderStore, reg *metrics.MetricsRegistry) *AdmissionService {
	return &AdmissionService{
		flights: flights,
		orders:  orders,
		metrics: reg,
	}
}

type seatKey struct {
	flight int64
	row    int
	seat   int
}

// CreateOrder runs the admission algorithm: in-submission duplicate
// detection, seat-grid validation per ticket spec, then one atomic
// order-plus-tickets write. On any failure nothing is persisted. The
// returned order carries its tickets sorted by (row, seat).
func (s *AdmissionService) CreateOrder(ctx context.Context, userID int64, specs []dtos.TicketSpec) (*entities.Order, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyOrder
	}

	seen := make(map[seatKey]struct{}, len(specs))
	for _, spec := range specs {
		key := seatKey{flight: spec.Flight, row: spec.Row, seat: spec.Seat}
		if _, dup := seen[key]; dup {
			return nil, &DuplicateTicketError{Spec: spec}
		}
		seen[key] = struct{}{}
	}

	// One lookup per distinct flight in the submission.
	flightsByID := make(map[int64]*gormModels.Flight)
	for _, spec := range specs {
		flight, ok := flightsByID[spec.Flight]
		if !ok {
			var err error
			flight, err = s.flights.GetByID(ctx, spec.Flight)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, &FlightNotFoundError{FlightID: spec.Flight}
				}
				return nil, fmt.Errorf("resolve flight %d: %w", spec.Flight, err)
			}
			flightsByID[spec.Flight] = flight
		}

		airplane := flight.Airplane
		if err := ValidateSeat(spec.Row, spec.Seat, airplane.Rows, airplane.SeatsInRow); err != nil {
			return nil, err
		}
	}

	order, err := s.orders.CreateWithTickets(ctx, userID, specs)
	if err != nil {
		if errors.Is(err, repositories.ErrSeatTaken) && s.metrics != nil {
			s.metrics.SeatConflictsTotal.Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.OrdersCreatedTotal.Inc()
		s.metrics.TicketsSoldTotal.Add(float64(len(order.Tickets)))
	}
	return order, nil
}

// ListOrders returns the caller's own orders, newest first.
func (s *AdmissionService) ListOrders(ctx context.Context, userID int64, page, pageSize int) ([]entities.Order, int64, error) {
	return s.orders.ListByUser(ctx, userID, page, pageSize)
}
