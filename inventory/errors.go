package inventory

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
)

// Category classifies a listing failure. CategoryUnsupported is the
// one local category; everything else originates from a backend call.
type Category string

const (
	CategoryUnsupported  Category = "unsupported"
	CategoryAuth         Category = "auth"
	CategoryAccessDenied Category = "access-denied"
	CategoryThrottled    Category = "throttled"
	CategoryNotFound     Category = "not-found"
	CategoryNetwork      Category = "network"
	CategoryInternal     Category = "internal"
	CategoryUnknown      Category = "unknown"
)

// Error is the failure outcome of one listing attempt. The wrapped
// cause keeps the originating service call in its message.
type Error struct {
	Service  string
	Region   string
	Category Category
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v (service=%s region=%s)", e.Category, e.Err, e.Service, e.Region)
}

func (e *Error) Unwrap() error { return e.Err }

// classify wraps a backend fault into an Error. This is the single
// point where raw SDK faults are mapped onto the taxonomy.
func classify(service, region string, err error) *Error {
	return &Error{Service: service, Region: region, Category: categorize(err), Err: err}
}

// apiFault reports whether err is an API-level error response, as
// opposed to a transport or local failure.
func apiFault(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr)
}

// categorize maps AWS error codes onto the taxonomy.
// ref: https://docs.aws.amazon.com/AWSEC2/latest/APIReference/errors-overview.html
func categorize(err error) Category {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AuthFailure", "UnrecognizedClientException", "InvalidClientTokenId",
			"ExpiredToken", "ExpiredTokenException", "RequestExpired", "SignatureDoesNotMatch":
			return CategoryAuth
		case "UnauthorizedOperation", "AccessDenied", "AccessDeniedException", "NotAuthorized":
			return CategoryAccessDenied
		case "Throttling", "ThrottlingException", "RequestLimitExceeded",
			"TooManyRequestsException", "SlowDown":
			return CategoryThrottled
		case "ResourceNotFoundException", "NoSuchBucket", "DBInstanceNotFound":
			return CategoryNotFound
		}
		if apiErr.ErrorFault() == smithy.FaultServer {
			return CategoryInternal
		}
		return CategoryUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return CategoryNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryNetwork
	}
	return CategoryUnknown
}
