package services

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("source", "1,2")
	q.Set("destination", "3")

	filter, err := RouteFilterFromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, filter.SourceIDs)
	assert.Equal(t, []int64{3}, filter.DestinationIDs)
}

func TestRouteFilterFromQueryEmpty(t *testing.T) {
	filter, err := RouteFilterFromQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, filter.SourceIDs)
	assert.Nil(t, filter.DestinationIDs)
}

func TestRouteFilterFromQueryMalformed(t *testing.T) {
	q := url.Values{}
	q.Set("source", "1,abc")

	_, err := RouteFilterFromQuery(q)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadFilter))
}

func TestAirplaneFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("name", "boeing")
	q.Set("types", "4,5")

	filter, err := AirplaneFilterFromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "boeing", filter.Name)
	assert.Equal(t, []int64{4, 5}, filter.TypeIDs)
}

func TestFlightFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("route", "7")
	q.Set("departure_time", "2024-06-01")

	filter, err := FlightFilterFromQuery(q)
	require.NoError(t, err)
	require.NotNil(t, filter.RouteID)
	assert.Equal(t, int64(7), *filter.RouteID)
	require.NotNil(t, filter.DepartureDate)
	assert.Equal(t, "2024-06-01", filter.DepartureDate.Format("2006-01-02"))
	assert.Nil(t, filter.ArrivalDate)
}

func TestFlightFilterFromQueryBadDate(t *testing.T) {
	q := url.Values{}
	q.Set("departure_time", "01-06-2024")

	_, err := FlightFilterFromQuery(q)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadFilter))
}

func TestPaginationFromQueryDefaults(t *testing.T) {
	page, pageSize, err := PaginationFromQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)
}

func TestPaginationFromQueryCapsPageSize(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")
	q.Set("page_size", "500")

	page, pageSize, err := PaginationFromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, pageSize)
}

func TestPaginationFromQueryRejectsNonPositive(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc"} {
		q := url.Values{}
		q.Set("page", raw)

		_, _, err := PaginationFromQuery(q)
		assert.True(t, errors.Is(err, ErrBadFilter), "page=%q", raw)
	}
}
