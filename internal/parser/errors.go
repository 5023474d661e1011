package parser

import (
	"fmt"
)

// ErrInvalidCoordinate indicates coordinate out of valid bounds
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrMissingGroup indicates the document lacks one of the declared feature groups
type ErrMissingGroup struct {
	Group string
}

func (e *ErrMissingGroup) Error() string {
	return fmt.Sprintf("document is missing feature group %q", e.Group)
}

// ErrInvalidDocument indicates the document or one of its groups does not have
// the feature-collection shape
type ErrInvalidDocument struct {
	Group  string
	Reason string
}

func (e *ErrInvalidDocument) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("invalid feature group %q: %s", e.Group, e.Reason)
	}
	return fmt.Sprintf("invalid document: %s", e.Reason)
}

// ErrMissingProperty indicates a required property is absent or null
type ErrMissingProperty struct {
	Property string
}

func (e *ErrMissingProperty) Error() string {
	return fmt.Sprintf("missing required property %q", e.Property)
}

// ErrInvalidGeometry indicates geometry does not match the group's shape
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
}
