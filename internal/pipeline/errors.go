package pipeline

import "fmt"

type Kind int

const (
	// KindQuery is a non-2xx current conditions answer.
	KindQuery Kind = iota
	// KindNetwork covers transport and decoding failures.
	KindNetwork
	// KindPermission means the position request was refused.
	KindPermission
	// KindUnavailable means no position capability exists at all.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindNetwork:
		return "network"
	case KindPermission:
		return "permission"
	case KindUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const (
	MsgLocationNotFound  = "Location not found"
	MsgCoordinatesFailed = "Failed to fetch location data"
	MsgLocationFallback  = "Error getting your location"
	MsgPermissionDenied  = "Location access denied. Please allow location access or search manually."
	MsgUnsupported       = "Geolocation is not supported by your browser"
)

// FetchError is what the pipeline shows on the error surface. Message is
// the exact user-facing text.
type FetchError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
