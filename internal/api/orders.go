package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
	"skyharbor/booking/internal/models/entities"
	"skyharbor/booking/internal/services"
)

// CreateOrderHandler accepts a ticket submission and runs it through the
// admission service. Validation failures come back as 400s with a
// field-tagged payload; the winner of a seat race gets a 201 and everyone
// else gets the seat-taken error.
func CreateOrderHandler(admission *services.AdmissionService, flights *repositories.FlightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		var req dtos.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		order, err := admission.CreateOrder(r.Context(), claims.UserID(), req.Tickets)
		if err != nil {
			respondAdmissionError(w, initTime, err)
			return
		}

		view, err := buildOrderViews(r, flights, []entities.Order{*order})
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build order view")
			return
		}

		common.RespondSuccess(w, initTime, "Order created", view[0], http.StatusCreated)
	}
}

// ListOrdersHandler returns the caller's own orders, paginated.
func ListOrdersHandler(admission *services.AdmissionService, flights *repositories.FlightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		page, pageSize, err := services.PaginationFromQuery(r.URL.Query())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		orders, count, err := admission.ListOrders(r.Context(), claims.UserID(), page, pageSize)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list orders")
			return
		}

		views, err := buildOrderViews(r, flights, orders)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build order views")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched orders", dtos.PageView{
			Count:    count,
			Page:     page,
			PageSize: pageSize,
			Results:  views,
		})
	}
}

func respondAdmissionError(w http.ResponseWriter, initTime time.Time, err error) {
	var dup *services.DuplicateTicketError
	var seatErr *services.SeatError
	var missing *services.FlightNotFoundError

	switch {
	case errors.Is(err, services.ErrEmptyOrder):
		common.RespondFieldErrors(w, initTime, constants.MsgEmptyTickets,
			[]dtos.FieldError{{Field: "tickets", Message: constants.MsgEmptyTickets}})
	case errors.As(err, &dup):
		common.RespondFieldErrors(w, initTime, constants.MsgDuplicateTicket,
			[]dtos.FieldError{{Field: "tickets", Message: dup.Error()}})
	case errors.As(err, &seatErr):
		common.RespondFieldErrors(w, initTime, seatErr.Error(),
			[]dtos.FieldError{{Field: seatErr.Field, Message: seatErr.Error()}})
	case errors.As(err, &missing):
		common.RespondFieldErrors(w, initTime, constants.MsgFlightNotFound,
			[]dtos.FieldError{{Field: "flight", Message: missing.Error()}})
	case errors.Is(err, repositories.ErrSeatTaken):
		common.RespondFieldErrors(w, initTime, constants.MsgSeatTaken,
			[]dtos.FieldError{{Field: "tickets", Message: constants.MsgSeatTaken}})
	default:
		common.RespondError(w, initTime, err, "Failed to create order")
	}
}

// buildOrderViews attaches flight summaries to each ticket. Flights are
// looked up once per distinct id across the whole page.
func buildOrderViews(r *http.Request, flights *repositories.FlightRepository, orders []entities.Order) ([]dtos.OrderView, error) {
	summaries := make(map[int64]dtos.FlightListView)

	views := make([]dtos.OrderView, 0, len(orders))
	for _, order := range orders {
		tickets := make([]dtos.TicketView, 0, len(order.Tickets))
		for _, t := range order.Tickets {
			summary, ok := summaries[t.FlightID]
			if !ok {
				flight, err := flights.GetByID(r.Context(), t.FlightID)
				if err != nil {
					return nil, err
				}
				summary = flightListView(*flight)
				summaries[t.FlightID] = summary
			}
			tickets = append(tickets, dtos.TicketView{
				ID:     t.ID,
				Row:    t.Row,
				Seat:   t.Seat,
				Flight: summary,
			})
		}
		views = append(views, dtos.OrderView{
			ID:        order.ID,
			Tickets:   tickets,
			CreatedAt: order.CreatedAt,
		})
	}
	return views, nil
}
