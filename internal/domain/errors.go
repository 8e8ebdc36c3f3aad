package domain

import "errors"

// Failure taxonomy of the resolution pipeline. Component-level failures are
// recovered locally into these typed signals; no other error crosses the
// resolver's boundary, so the transport layer can map each one to a
// clarifying user-facing prompt.
var (
	// ErrNoAmount means neither digits, the AI, nor word-numbers yielded a
	// positive amount.
	ErrNoAmount = errors.New("no amount found in message")

	// ErrAIUnavailable covers network errors, timeouts and non-2xx replies
	// from the analysis provider.
	ErrAIUnavailable = errors.New("ai analysis unavailable")

	// ErrAIMalformed means the provider replied but the payload was not
	// parseable JSON even after fence stripping.
	ErrAIMalformed = errors.New("ai response malformed")

	// ErrTranscriptionFailed means voice audio could not be converted to
	// text. There is nothing to resolve, so it is surfaced immediately.
	ErrTranscriptionFailed = errors.New("voice transcription failed")
)
