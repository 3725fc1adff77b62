package splice

import (
	"fmt"
	"time"
)

// OrderingError indicates the segments were passed in the wrong order for the
// requested direction: the base series must not start after the extension.
type OrderingError struct {
	BaseStart      time.Time
	ExtensionStart time.Time
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("incorrect order: base starts %s, after extension start %s",
		e.BaseStart.Format("2006-01-02"), e.ExtensionStart.Format("2006-01-02"))
}

// InsufficientOverlapError indicates the two series share fewer timestamps
// than the configured minimum.
type InsufficientOverlapError struct {
	Got  int
	Want int
}

func (e *InsufficientOverlapError) Error() string {
	return fmt.Sprintf("number of overlapping samples must be %d or more, now is %d", e.Want, e.Got)
}

// DegenerateDataError indicates one of the series contains more exact-zero
// observations in the overlap region than the configured ceiling. Structural
// zeros usually mean the provider had no data on the shared scale.
type DegenerateDataError struct {
	BaseZeros      int
	ExtensionZeros int
	Max            int
}

func (e *DegenerateDataError) Error() string {
	return fmt.Sprintf("too many zeros in overlap region: base has %d, extension has %d, at most %d allowed",
		e.BaseZeros, e.ExtensionZeros, e.Max)
}
