package common

import (
	"fmt"
	"time"

	gormModels "skyharbor/booking/internal/models/gorm"
)

// Display strings shown in list payloads. Plain functions rather than
// methods on the models; the formatting is presentation glue only.

func FormatAirport(a gormModels.Airport) string {
	return fmt.Sprintf("City: %s; Airport: %s", a.ClosestBigCity, a.Name)
}

func FormatAirplane(a gormModels.Airplane) string {
	return fmt.Sprintf("Airplane: %s", a.Name)
}

func FormatRoute(r gormModels.Route) string {
	return fmt.Sprintf("Route from: %s to %s; Distance: %d",
		r.Source.ClosestBigCity, r.Destination.ClosestBigCity, r.Distance)
}

func FormatFlight(f gormModels.Flight) string {
	return fmt.Sprintf("Route: %s; Time: %s - %s",
		FormatRoute(f.Route),
		f.DepartureTime.Format(time.RFC3339),
		f.ArrivalTime.Format(time.RFC3339))
}
