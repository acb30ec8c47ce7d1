package dtos

import "time"

// -------- airports ---------------------------------------------------------

type AirportRequest struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type AirportView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

// -------- airplane types ---------------------------------------------------

type AirplaneTypeRequest struct {
	Name string `json:"name"`
}

type AirplaneTypeView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// -------- airplanes --------------------------------------------------------

type AirplaneRequest struct {
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Type       int64  `json:"type"`
}

// AirplaneListView renders the type as its display name.
type AirplaneListView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Type       string `json:"type"`
	Capacity   int    `json:"capacity"`
}

// AirplaneDetailView embeds the full type object.
type AirplaneDetailView struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Rows       int              `json:"rows"`
	SeatsInRow int              `json:"seats_in_row"`
	Type       AirplaneTypeView `json:"type"`
	Capacity   int              `json:"capacity"`
}

// -------- crew -------------------------------------------------------------

type CrewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CrewView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// -------- routes -----------------------------------------------------------

type RouteRequest struct {
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

// RouteListView renders endpoints as display strings.
type RouteListView struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

// RouteDetailView embeds full airport objects.
type RouteDetailView struct {
	ID          int64       `json:"id"`
	Source      AirportView `json:"source"`
	Destination AirportView `json:"destination"`
	Distance    int         `json:"distance"`
}

// -------- flights ----------------------------------------------------------

type FlightRequest struct {
	Route         int64     `json:"route"`
	Airplane      int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []int64   `json:"crew"`
}

type FlightListView struct {
	ID            int64     `json:"id"`
	Route         string    `json:"route"`
	Airplane      string    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type SeatView struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetailView struct {
	ID            int64            `json:"id"`
	Route         RouteListView    `json:"route"`
	Airplane      AirplaneListView `json:"airplane"`
	DepartureTime time.Time        `json:"departure_time"`
	ArrivalTime   time.Time        `json:"arrival_time"`
	Crew          []CrewView       `json:"crew"`
	TakenPlaces   []SeatView       `json:"taken_places"`
}
