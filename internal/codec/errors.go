package codec

import "fmt"

// DecodeError means a request document was not valid JSON or did not match
// its schema. Path is the JSON pointer of the offending value when schema
// validation failed, e.g. "/answer/ratio/0".
type DecodeError struct {
	Schema string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decode %s at %s: %v", e.Schema, e.Path, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Schema, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
