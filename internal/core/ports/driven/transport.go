package driven

import (
	"context"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// Upstream operation names.
const (
	OpGetSessionList = "getSessionList"
	OpGetMasterList  = "getMasterList"
	OpGetBill        = "getBill"
	OpGetBillText    = "getBillText"
	OpSearch         = "search"
)

// Params are query parameters for one operation.
// Values are coerced to strings by the transport.
type Params map[string]any

// Transport issues requests against the upstream legislative API.
type Transport interface {
	// Request performs exactly one GET for operation with params and returns
	// the parsed top-level object.
	// Fails with *domain.TransportError on HTTP failure and with
	// *domain.APIStatusError when the payload status is not "OK".
	Request(ctx context.Context, operation string, params Params) (domain.Payload, error)
}
