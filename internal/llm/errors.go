package llm

import "fmt"

// RemoteGenerationError wraps any failure of the remote override: transport,
// non-2xx status, or an unparseable body. Callers always recover from it by
// falling back to the deterministic engine; it never reaches the HTTP
// boundary as a hard error.
type RemoteGenerationError struct {
	Stage string // "request", "response", "parse"
	Err   error
}

func (e *RemoteGenerationError) Error() string {
	return fmt.Sprintf("remote generation failed at %s: %v", e.Stage, e.Err)
}

func (e *RemoteGenerationError) Unwrap() error {
	return e.Err
}

var errNoChoices = fmt.Errorf("completion response contained no choices")
