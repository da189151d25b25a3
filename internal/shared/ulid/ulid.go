package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Each aggregation run is tagged with one so
// that log lines of concurrent days can be tied back to the run.
var NewULID = func() string {
	return ulid.Make().String()
}
