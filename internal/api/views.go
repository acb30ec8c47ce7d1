package api

import (
	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/models/dtos"
	"skyharbor/booking/internal/models/entities"
	gormModels "skyharbor/booking/internal/models/gorm"
)

// Mapping between stored models and the list/detail response shapes.

func airportView(a gormModels.Airport) dtos.AirportView {
	return dtos.AirportView{
		ID:             a.ID,
		Name:           a.Name,
		ClosestBigCity: a.ClosestBigCity,
	}
}

func airplaneTypeView(t gormModels.AirplaneType) dtos.AirplaneTypeView {
	return dtos.AirplaneTypeView{ID: t.ID, Name: t.Name}
}

func airplaneListView(a gormModels.Airplane) dtos.AirplaneListView {
	return dtos.AirplaneListView{
		ID:         a.ID,
		Name:       a.Name,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Type:       a.Type.Name,
		Capacity:   a.Capacity(),
	}
}

func airplaneDetailView(a gormModels.Airplane) dtos.AirplaneDetailView {
	return dtos.AirplaneDetailView{
		ID:         a.ID,
		Name:       a.Name,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Type:       airplaneTypeView(a.Type),
		Capacity:   a.Capacity(),
	}
}

func crewView(c gormModels.Crew) dtos.CrewView {
	return dtos.CrewView{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
}

func routeListView(r gormModels.Route) dtos.RouteListView {
	return dtos.RouteListView{
		ID:          r.ID,
		Source:      common.FormatAirport(r.Source),
		Destination: common.FormatAirport(r.Destination),
		Distance:    r.Distance,
	}
}

func routeDetailView(r gormModels.Route) dtos.RouteDetailView {
	return dtos.RouteDetailView{
		ID:          r.ID,
		Source:      airportView(r.Source),
		Destination: airportView(r.Destination),
		Distance:    r.Distance,
	}
}

func flightListView(f gormModels.Flight) dtos.FlightListView {
	return dtos.FlightListView{
		ID:            f.ID,
		Route:         common.FormatRoute(f.Route),
		Airplane:      common.FormatAirplane(f.Airplane),
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
	}
}

func flightDetailView(f gormModels.Flight, taken []entities.Ticket) dtos.FlightDetailView {
	crew := make([]dtos.CrewView, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, crewView(c))
	}

	seats := make([]dtos.SeatView, 0, len(taken))
	for _, t := range taken {
		seats = append(seats, dtos.SeatView{Row: t.Row, Seat: t.Seat})
	}

	return dtos.FlightDetailView{
		ID:            f.ID,
		Route:         routeListView(f.Route),
		Airplane:      airplaneListView(f.Airplane),
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Crew:          crew,
		TakenPlaces:   seats,
	}
}

func userView(u gormModels.User) dtos.UserView {
	return dtos.UserView{ID: u.ID, Email: u.Email, Role: string(u.Role)}
}
