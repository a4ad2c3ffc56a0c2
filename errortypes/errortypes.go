package errortypes

// Transport should be used when the upstream bidding engine RPC failed or
// timed out. GRPCCode holds the numeric gRPC status code of the failure so
// callers can derive an equivalent HTTP status.
type Transport struct {
	Message  string
	GRPCCode int
}

func (err *Transport) Error() string {
	return err.Message
}

func (err *Transport) Code() int {
	return TransportErrorCode
}

func (err *Transport) Severity() Severity {
	return SeverityFatal
}

// UpstreamHTTP should be used when an upstream service reachable over plain
// HTTP returned a non-success status.
type UpstreamHTTP struct {
	Message    string
	StatusCode int
}

func (err *UpstreamHTTP) Error() string {
	return err.Message
}

func (err *UpstreamHTTP) Code() int {
	return UpstreamHTTPErrorCode
}

func (err *UpstreamHTTP) Severity() Severity {
	return SeverityFatal
}

// Validation should be used when an inbound payload fails schema or semantic
// validation, e.g. a malformed demand entry or a response missing a mandatory
// mediation extension.
type Validation struct {
	Message string
}

func (err *Validation) Error() string {
	return err.Message
}

func (err *Validation) Code() int {
	return ValidationErrorCode
}

func (err *Validation) Severity() Severity {
	return SeverityFatal
}

// Serialization should be used when encoding or decoding wire bytes fails.
type Serialization struct {
	Message string
}

func (err *Serialization) Error() string {
	return err.Message
}

func (err *Serialization) Code() int {
	return SerializationErrorCode
}

func (err *Serialization) Severity() Severity {
	return SeverityFatal
}

// Unexpected is the catch-all for conditions not otherwise classified.
type Unexpected struct {
	Message string
}

func (err *Unexpected) Error() string {
	return err.Message
}

func (err *Unexpected) Code() int {
	return UnexpectedErrorCode
}

func (err *Unexpected) Severity() Severity {
	return SeverityFatal
}
