package constants

const (
	MsgEmptyTickets     = "Order must contain at least one ticket"
	MsgDuplicateTicket  = "Duplicate ticket found in input data"
	MsgSeatTaken        = "Seat is already taken for this flight"
	MsgFlightNotFound   = "Flight not found"
	MsgBadFilter        = "Invalid filter parameter"
	MsgSameAirports     = "Flight to the same city"
	MsgShortDistance    = "Distance must be greater than 0"
	MsgRouteExists      = "Route between these airports already exists"
	MsgEmailTaken       = "Email is already registered"
	MsgBadCredentials   = "Invalid email or password"
	MsgMissingToken     = "Unauthorized. Missing bearer token"
	MsgInvalidToken     = "Unauthorized. Invalid token"
	MsgStaffOnly        = "Forbidden. Staff permissions required"
	MsgNotFound         = "Resource not found"
	MsgInvalidBody      = "Invalid request body"
)
