package docbot

// Status classifies the outcome of a search.
type Status int

// Search outcomes.
const (
	// StatusOK means at least one page produced a snippet.
	StatusOK Status = iota
	// StatusEmpty means the site was reachable but nothing matched the query.
	StatusEmpty
	// StatusFailed means the base page could not be retrieved.
	StatusFailed
)

// String returns a short label for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Messages shown in place of a reply. They are only produced by
// Result.String so scraped content can never be mistaken for an outcome.
const (
	FailedMessage   = "Failed to retrieve documentation."
	NotFoundMessage = "No relevant documentation found."
)

// Result is the outcome of a search.
type Result struct {
	Status Status

	// Reply is the markdown reply. Only set when Status is StatusOK.
	Reply string

	// Pages are the ranked pages that contributed to Reply.
	Pages []*Page

	// Err is the cause of a StatusFailed result.
	Err error
}

// Found reports whether the result carries a reply.
func (r *Result) Found() bool {
	return r != nil && r.Status == StatusOK
}

// String returns the reply, or the fixed message for empty and failed results.
func (r *Result) String() string {
	if r == nil {
		return FailedMessage
	}
	switch r.Status {
	case StatusOK:
		return r.Reply
	case StatusEmpty:
		return NotFoundMessage
	default:
		return FailedMessage
	}
}
