package dtos

import "time"

// TicketSpec is one requested seat inside an order submission.
type TicketSpec struct {
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

type CreateOrderRequest struct {
	Tickets []TicketSpec `json:"tickets"`
}

type TicketView struct {
	ID     int64          `json:"id"`
	Row    int            `json:"row"`
	Seat   int            `json:"seat"`
	Flight FlightListView `json:"flight"`
}

type OrderView struct {
	ID        int64        `json:"id"`
	Tickets   []TicketView `json:"tickets"`
	CreatedAt time.Time    `json:"created_at"`
}
