package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for request and stream correlation ids.
var NewULID = func() string {
	return ulid.Make().String()
}
