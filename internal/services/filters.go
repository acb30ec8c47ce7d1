package services

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"skyharbor/booking/internal/db/repositories"
)

// ErrBadFilter marks malformed query parameters. Handlers answer it with
// a 400, never a 500.
var ErrBadFilter = errors.New("invalid filter parameter")

const (
	defaultPageSize = 20
	maxPageSize     = 100
	dateLayout      = "2006-01-02"
)

// parseIDList splits a comma-separated id list ("1,2,3") into int64s.
func parseIDList(param, raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrBadFilter, param, raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RouteFilterFromQuery reads ?source= and ?destination= id lists.
func RouteFilterFromQuery(q url.Values) (repositories.RouteFilter, error) {
	var filter repositories.RouteFilter

	if raw := q.Get("source"); raw != "" {
		ids, err := parseIDList("source", raw)
		if err != nil {
			return filter, err
		}
		filter.SourceIDs = ids
	}
	if raw := q.Get("destination"); raw != "" {
		ids, err := parseIDList("destination", raw)
		if err != nil {
			return filter, err
		}
		filter.DestinationIDs = ids
	}
	return filter, nil
}

// AirplaneFilterFromQuery reads ?name= substring and ?types= id list.
func AirplaneFilterFromQuery(q url.Values) (repositories.AirplaneFilter, error) {
	filter := repositories.AirplaneFilter{Name: q.Get("name")}

	if raw := q.Get("types"); raw != "" {
		ids, err := parseIDList("types", raw)
		if err != nil {
			return filter, err
		}
		filter.TypeIDs = ids
	}
	return filter, nil
}

// FlightFilterFromQuery reads ?route=, ?departure_time= and
// ?arrival_time= (calendar dates, YYYY-MM-DD).
func FlightFilterFromQuery(q url.Values) (repositories.FlightFilter, error) {
	var filter repositories.FlightFilter

	if raw := q.Get("route"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: route=%q", ErrBadFilter, raw)
		}
		filter.RouteID = &id
	}
	if raw := q.Get("departure_time"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, fmt.Errorf("%w: departure_time=%q", ErrBadFilter, raw)
		}
		filter.DepartureDate = &date
	}
	if raw := q.Get("arrival_time"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, fmt.Errorf("%w: arrival_time=%q", ErrBadFilter, raw)
		}
		filter.ArrivalDate = &date
	}
	return filter, nil
}

// PaginationFromQuery reads ?page= and ?page_size= with defaults 1 and 20.
func PaginationFromQuery(q url.Values) (page, pageSize int, err error) {
	page, pageSize = 1, defaultPageSize

	if raw := q.Get("page"); raw != "" {
		p, convErr := strconv.Atoi(raw)
		if convErr != nil || p < 1 {
			return 0, 0, fmt.Errorf("%w: page=%q", ErrBadFilter, raw)
		}
		page = p
	}
	if raw := q.Get("page_size"); raw != "" {
		ps, convErr := strconv.Atoi(raw)
		if convErr != nil || ps < 1 {
			return 0, 0, fmt.Errorf("%w: page_size=%q", ErrBadFilter, raw)
		}
		if ps > maxPageSize {
			ps = maxPageSize
		}
		pageSize = ps
	}
	return page, pageSize, nil
}
