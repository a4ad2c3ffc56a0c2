package bidding

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/bidon-io/bidon-proxy/errortypes"
)

// ErrorResponse is the JSON error shape returned to SDK callers.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    uint16 `json:"code"`
	Message string `json:"message"`
}

// TranslateError maps a request-processing failure to an HTTP status and
// the error body. A transport failure whose status message itself carries a
// structured {"error":{code,message}} payload surfaces that embedded error;
// otherwise the grpc code is mapped through a fixed status table.
func TranslateError(err error) (int, ErrorResponse) {
	statusCode, message := classify(err)
	return statusCode, ErrorResponse{Error: ErrorDetails{
		Code:    uint16(statusCode),
		Message: message,
	}}
}

func classify(err error) (int, string) {
	var transport *errortypes.Transport
	if errors.As(err, &transport) {
		if embedded, ok := embeddedError(transport.Message); ok {
			return int(embedded.Error.Code), embedded.Error.Message
		}
		return httpStatusFromGRPC(codes.Code(transport.GRPCCode)), transport.Message
	}

	var upstream *errortypes.UpstreamHTTP
	if errors.As(err, &upstream) {
		return upstream.StatusCode, fmt.Sprintf("Upstream HTTP service error: %s", upstream.Message)
	}

	var validation *errortypes.Validation
	if errors.As(err, &validation) {
		return http.StatusBadRequest, fmt.Sprintf("Invalid request: %s", validation.Message)
	}

	var serialization *errortypes.Serialization
	if errors.As(err, &serialization) {
		return http.StatusBadRequest, fmt.Sprintf("Serialization error: %s", serialization.Message)
	}

	return http.StatusInternalServerError, fmt.Sprintf("Internal server error: %s", err.Error())
}

func embeddedError(message string) (ErrorResponse, bool) {
	var embedded ErrorResponse
	if err := json.Unmarshal([]byte(message), &embedded); err != nil {
		return ErrorResponse{}, false
	}
	if embedded.Error.Code < 100 || embedded.Error.Code > 599 {
		return ErrorResponse{}, false
	}
	return embedded, true
}

// httpStatusFromGRPC maps grpc codes to their closest HTTP equivalents.
// Source: https://github.com/googleapis/googleapis/blob/master/google/rpc/code.proto
func httpStatusFromGRPC(code codes.Code) int {
	switch code {
	case codes.Canceled:
		return 499
	case codes.Unknown:
		return http.StatusInternalServerError
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.Aborted:
		return http.StatusConflict
	case codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Internal:
		return http.StatusInternalServerError
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DataLoss:
		return http.StatusInternalServerError
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
