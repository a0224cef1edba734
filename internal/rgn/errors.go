package rgn

import (
	"errors"
	"fmt"
)

var (
	// ErrDataFormat is wrapped by every DataFormatError.
	ErrDataFormat = errors.New("rgn: malformed record")
	// ErrInvalidOrder is wrapped by every InvalidOrderError.
	ErrInvalidOrder = errors.New("rgn: invalid order")
	// ErrUnknownPoint is wrapped by every UnknownPointError.
	ErrUnknownPoint = errors.New("rgn: unknown point")
	// ErrOrderMismatch is wrapped by every OrderMismatchError.
	ErrOrderMismatch = errors.New("rgn: order mismatch")
	// ErrEmptyDataset is returned by Parse, together with a usable empty
	// network, when there are no records. It is not fatal.
	ErrEmptyDataset = errors.New("rgn: empty dataset")
)

// DataFormatError indicates a record that cannot become a SurveyPoint.
type DataFormatError struct {
	Line   int    // 1-based source position, 0 if unknown
	Name   string // record name, if it had one
	Field  string
	Reason string
	Err    error // underlying parse or range error, may be nil
}

func (e *DataFormatError) Error() string {
	where := ""
	switch {
	case e.Line > 0 && e.Name != "":
		where = fmt.Sprintf("record %d (%s)", e.Line, e.Name)
	case e.Line > 0:
		where = fmt.Sprintf("record %d", e.Line)
	case e.Name != "":
		where = fmt.Sprintf("record %s", e.Name)
	default:
		where = "record"
	}
	msg := fmt.Sprintf("%s: %s: %s", where, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataFormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDataFormat, e.Err}
	}
	return []error{ErrDataFormat}
}

// InvalidOrderError indicates an order outside 1..4.
type InvalidOrderError struct {
	Order int
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid order %d (must be 1-4)", e.Order)
}

func (e *InvalidOrderError) Unwrap() error { return ErrInvalidOrder }

// UnknownPointError indicates a lookup by a name the network does not hold.
type UnknownPointError struct {
	Name string
}

func (e *UnknownPointError) Error() string {
	return fmt.Sprintf("unknown VG %q", e.Name)
}

func (e *UnknownPointError) Unwrap() error { return ErrUnknownPoint }

// OrderMismatchError indicates a point added to the group of another order.
type OrderMismatchError struct {
	Name  string
	Point Order
	Group Order
}

func (e *OrderMismatchError) Error() string {
	return fmt.Sprintf("VG %q has order %d, cannot join order %d group", e.Name, e.Point, e.Group)
}

func (e *OrderMismatchError) Unwrap() error { return ErrOrderMismatch }
