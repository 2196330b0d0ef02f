package domain

// FailureCode is a transport-level failure reported instead of content.
// The values follow the shell's network error enumeration.
type FailureCode int

const (
	// NetOK means no failure; the response carries content.
	NetOK FailureCode = 0
	// NetFailed is a generic, unclassified failure.
	NetFailed FailureCode = -2
	// NetFileNotFound means the resource does not exist.
	NetFileNotFound FailureCode = -6
)

// String returns the shell's name for the code.
func (c FailureCode) String() string {
	switch c {
	case NetOK:
		return "OK"
	case NetFailed:
		return "FAILED"
	case NetFileNotFound:
		return "FILE_NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Outcome names the terminal state a request reached.
type Outcome uint8

const (
	// OutcomeContent is a successfully compiled resource.
	OutcomeContent Outcome = iota
	// OutcomeBypassContent is a vendored resource served verbatim.
	OutcomeBypassContent
	// OutcomeBootstrapScript is the synthesized renderer setup script.
	OutcomeBootstrapScript
	// OutcomeCompileErrorContent is a compile failure rendered as plain text content.
	OutcomeCompileErrorContent
	// OutcomeNotFound is a missing source or artifact.
	OutcomeNotFound
	// OutcomeTransportFailure is any other failure; no content is returned.
	OutcomeTransportFailure
)

var outcomeNames = [...]string{
	OutcomeContent:             "content",
	OutcomeBypassContent:       "bypass-content",
	OutcomeBootstrapScript:     "bootstrap-script",
	OutcomeCompileErrorContent: "compile-error-content",
	OutcomeNotFound:            "not-found",
	OutcomeTransportFailure:    "transport-failure",
}

// String returns a stable name for logs and span attributes.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Response is what the dispatcher hands back to the transport: content, or a failure code.
type Response struct {
	Outcome  Outcome
	Data     []byte
	MimeType string
	Failure  FailureCode
}

// IsFailure reports whether the response carries a failure code instead of content.
func (r Response) IsFailure() bool {
	return r.Failure != NetOK
}

// ContentResponse builds a successful response.
func ContentResponse(outcome Outcome, data []byte, mimeType string) Response {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return Response{Outcome: outcome, Data: data, MimeType: mimeType}
}

// NotFoundResponse builds a not-found failure.
func NotFoundResponse() Response {
	return Response{Outcome: OutcomeNotFound, Failure: NetFileNotFound}
}

// TransportFailureResponse builds a generic failure.
func TransportFailureResponse() Response {
	return Response{Outcome: OutcomeTransportFailure, Failure: NetFailed}
}
