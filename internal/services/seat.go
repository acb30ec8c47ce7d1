package services

import "fmt"

// SeatError reports a row or seat outside the airplane's grid. It carries
// the violated field so the API layer can tag the error payload.
type SeatError struct {
	Field string // "row" or "seat"
	Bound string // "rows" or "seats_in_row"
	Limit int
}

func (e *SeatError) Error() string {
	return fmt.Sprintf("%s number must be in available range: (1, %s): (1, %d)",
		e.Field, e.Bound, e.Limit)
}

// ValidateSeat checks that a 1-based (row, seat) pair lies within the
// rows x seatsInRow grid. Each dimension is checked independently; the
// first violation wins. Pure function, shared by the request-validation
// and persistence guards.
func ValidateSeat(row, seat, rows, seatsInRow int) error {
	if row < 1 || row > rows {
		return &SeatError{Field: "row", Bound: "rows", Limit: rows}
	}
	if seat < 1 || seat > seatsInRow {
		return &SeatError{Field: "seat", Bound: "seats_in_row", Limit: seatsInRow}
	}
	return nil
}
