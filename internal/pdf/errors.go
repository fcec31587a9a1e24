package pdf

import "fmt"

// FormatError reports a non-numeric offer amount.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("offer amount %q is not numeric", e.Value)
}

// RenderError reports a failure of the HTML to PDF conversion engine or of
// writing the resulting document to the archive.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render offer letter: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
