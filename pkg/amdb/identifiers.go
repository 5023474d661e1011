package amdb

import (
	"fmt"
	"strings"
)

// unknownSentinel is the token AMDB producers write in place of a missing value.
const unknownSentinel = "$UNK"

// runwaySeparator joins the two runway designators of a composite runway identifier.
const runwaySeparator = "."

// FormatError reports a textual identifier that does not have the expected shape.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed identifier %q: %s", e.Value, e.Reason)
}

// normalizeString maps the empty string and the $UNK sentinel to nil. Only
// attributes documented to use the sentinel go through it.
func normalizeString(s *string) *string {
	if s == nil || *s == "" || *s == unknownSentinel {
		return nil
	}
	v := *s
	return &v
}

// normalizeValue is normalizeString for attributes the document always carries.
func normalizeValue(s string) *string {
	return normalizeString(&s)
}

// splitList splits a sentinel-normalized list attribute on commas or semicolons.
func splitList(s *string) []string {
	s = normalizeString(s)
	if s == nil {
		return nil
	}
	fields := strings.FieldsFunc(*s, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// RunwayID identifies a physical runway by the designators of its two ends,
// written "09L.27R" in the document.
type RunwayID struct {
	First  string
	Second string
}

// ParseRunwayID splits a composite runway identifier on its separator. The
// result must be exactly two non-empty designators.
func ParseRunwayID(s string) (RunwayID, error) {
	parts := strings.Split(s, runwaySeparator)
	switch {
	case len(parts) < 2:
		return RunwayID{}, &FormatError{Value: s, Reason: "missing runway separator " + runwaySeparator}
	case len(parts) > 2:
		return RunwayID{}, &FormatError{Value: s, Reason: fmt.Sprintf("expected 2 runway designators, got %d", len(parts))}
	case parts[0] == "" || parts[1] == "":
		return RunwayID{}, &FormatError{Value: s, Reason: "empty runway designator"}
	}
	return RunwayID{First: parts[0], Second: parts[1]}, nil
}

// String joins the designators back into document form.
func (r RunwayID) String() string {
	return r.First + runwaySeparator + r.Second
}

// HoldingPointTarget is what a holding position protects: a taxiway
// (TaxiwayTarget) or a runway (RunwayTarget).
type HoldingPointTarget interface {
	fmt.Stringer
	holdingPointTarget()
}

// TaxiwayTarget is a holding point target naming a taxiway.
type TaxiwayTarget string

func (t TaxiwayTarget) String() string { return string(t) }
func (TaxiwayTarget) holdingPointTarget() {}

// RunwayTarget is a holding point target naming a runway.
type RunwayTarget RunwayID

func (t RunwayTarget) String() string { return RunwayID(t).String() }
func (RunwayTarget) holdingPointTarget() {}

// ParseHoldingPointTarget resolves a reference by its shape: text containing
// the runway separator is a runway identifier, anything else is a taxiway.
// An empty reference is an error.
func ParseHoldingPointTarget(s string) (HoldingPointTarget, error) {
	if s == "" {
		return nil, &FormatError{Value: s, Reason: "empty holding point reference"}
	}
	if !strings.Contains(s, runwaySeparator) {
		return TaxiwayTarget(s), nil
	}
	id, err := ParseRunwayID(s)
	if err != nil {
		return nil, err
	}
	return RunwayTarget(id), nil
}
