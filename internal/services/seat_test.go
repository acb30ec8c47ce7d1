package services

import "testing"

func TestValidateSeat(t *testing.T) {
	const rows, seatsInRow = 10, 6

	cases := []struct {
		name    string
		row     int
		seat    int
		wantErr string
	}{
		{"first seat", 1, 1, ""},
		{"last seat", 10, 6, ""},
		{"middle", 5, 3, ""},
		{"row zero", 0, 1, "row number must be in available range: (1, rows): (1, 10)"},
		{"row too high", 11, 1, "row number must be in available range: (1, rows): (1, 10)"},
		{"row negative", -3, 1, "row number must be in available range: (1, rows): (1, 10)"},
		{"seat zero", 1, 0, "seat number must be in available range: (1, seats_in_row): (1, 6)"},
		{"seat too high", 1, 7, "seat number must be in available range: (1, seats_in_row): (1, 6)"},
		{"both invalid reports row first", 0, 0, "row number must be in available range: (1, rows): (1, 10)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSeat(tc.row, tc.seat, rows, seatsInRow)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tc.wantErr)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("expected %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestValidateSeatTagsField(t *testing.T) {
	err := ValidateSeat(99, 1, 10, 6)
	seatErr, ok := err.(*SeatError)
	if !ok {
		t.Fatalf("expected *SeatError, got %T", err)
	}
	if seatErr.Field != "row" {
		t.Errorf("expected field row, got %q", seatErr.Field)
	}

	err = ValidateSeat(1, 99, 10, 6)
	seatErr, ok = err.(*SeatError)
	if !ok {
		t.Fatalf("expected *SeatError, got %T", err)
	}
	if seatErr.Field != "seat" {
		t.Errorf("expected field seat, got %q", seatErr.Field)
	}
}
