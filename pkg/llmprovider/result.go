package llmprovider

import "fmt"

// Outcome tags a Result.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeSoftFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSoftFailure:
		return "soft_failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// FailureReason classifies a soft failure.
type FailureReason string

const (
	ReasonStatus          FailureReason = "non_2xx_status"
	ReasonTimeout         FailureReason = "timeout"
	ReasonMalformed       FailureReason = "malformed_response"
	ReasonEmptyCompletion FailureReason = "missing_completion"
	ReasonTransport       FailureReason = "transport"
	ReasonCanceled        FailureReason = "canceled"
	ReasonRateLimited     FailureReason = "rate_limited"
)

// Result is what every Provider returns: either a Response or a soft failure.
type Result struct {
	Outcome  Outcome
	Response *Response
	Reason   FailureReason
	Err      error
}

// Succeeded wraps a successful response.
func Succeeded(resp *Response) Result {
	return Result{Outcome: OutcomeSuccess, Response: resp}
}

// SoftFail wraps a recoverable failure.
func SoftFail(reason FailureReason, err error) Result {
	return Result{Outcome: OutcomeSoftFailure, Reason: reason, Err: err}
}

// OK reports whether the result carries a usable completion.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess && r.Response != nil && r.Response.Content != ""
}
