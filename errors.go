package mxml_marks

import (
	"errors"
	"fmt"
)

// InterchangeError is the base error for notation interchange
// irregularities. Part and measure context is attached by outer layers once
// known; rendering includes it only when set.
type InterchangeError struct {
	Message       string
	PartName      string
	MeasureNumber string
}

func (e *InterchangeError) Error() string {
	msg := e.Message
	if e.MeasureNumber != "" || e.PartName != "" {
		msg = fmt.Sprintf("In part (%s), measure (%s): %s",
			e.PartName, e.MeasureNumber, msg)
	}
	return msg
}

// ExportError reports a failure while serializing marks out.
type ExportError struct {
	InterchangeError
}

func (e *ExportError) Unwrap() error {
	return &e.InterchangeError
}

// ImportError reports a failure while building marks from parsed input.
type ImportError struct {
	InterchangeError
}

func (e *ImportError) Unwrap() error {
	return &e.InterchangeError
}

// Warning carries a recoverable irregularity. Pipelines collect warnings and
// keep going instead of failing on them.
type Warning struct {
	InterchangeError
}

func (w *Warning) Unwrap() error {
	return &w.InterchangeError
}

func NewExportError(format string, args ...interface{}) *ExportError {
	return &ExportError{InterchangeError{Message: fmt.Sprintf(format, args...)}}
}

func NewImportError(format string, args ...interface{}) *ImportError {
	return &ImportError{InterchangeError{Message: fmt.Sprintf(format, args...)}}
}

func NewWarning(format string, args ...interface{}) *Warning {
	return &Warning{InterchangeError{Message: fmt.Sprintf(format, args...)}}
}

// Annotate sets part and measure context on err if it carries an
// InterchangeError anywhere in its chain, and returns err unchanged either
// way. Outer fmt.Errorf wrappers format their message eagerly, so the
// attached context renders through the carrier itself (extract it with
// errors.As), not through an already-built wrapper string.
func Annotate(err error, partName string, measureNumber string) error {
	var carrier *InterchangeError
	if errors.As(err, &carrier) {
		carrier.PartName = partName
		carrier.MeasureNumber = measureNumber
	}
	return err
}
