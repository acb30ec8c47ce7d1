package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAirports      CachePrefix = "AIRPORTS_"
	CachePrefixAirplaneTypes CachePrefix = "AIRPLANE_TYPES_"
)
