package parser

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// PointFeature is a point geometry paired with group-specific properties.
type PointFeature[P any] struct {
	Geometry   PointGeometry
	Properties P
}

// LineStringFeature is a path geometry paired with group-specific properties.
type LineStringFeature[P any] struct {
	Geometry   LineStringGeometry
	Properties P
}

// PolygonFeature is an area geometry paired with group-specific properties.
type PolygonFeature[P any] struct {
	Geometry   PolygonGeometry
	Properties P
}

// rawFeature is a feature whose geometry coordinates and properties are still undecoded
type rawFeature struct {
	Geometry   *rawGeometry    `json:"geometry"`
	Properties json.RawMessage `json:"properties"`
}

// DecodePointFeature decodes a single feature of a point group.
func DecodePointFeature[P any](data json.RawMessage, opts ParseOptions) (PointFeature[P], error) {
	var f PointFeature[P]
	raw, err := splitFeature(data)
	if err != nil {
		return f, err
	}
	if f.Geometry, err = decodePointGeometry(*raw.Geometry); err != nil {
		return f, err
	}
	if opts.ValidateGeometry {
		if err := ValidatePoint(f.Geometry); err != nil {
			return f, err
		}
	}
	f.Properties, err = decodeProperties[P](raw.Properties)
	return f, err
}

// DecodeLineStringFeature decodes a single feature of a path group.
func DecodeLineStringFeature[P any](data json.RawMessage, opts ParseOptions) (LineStringFeature[P], error) {
	var f LineStringFeature[P]
	raw, err := splitFeature(data)
	if err != nil {
		return f, err
	}
	if f.Geometry, err = decodeLineStringGeometry(*raw.Geometry); err != nil {
		return f, err
	}
	if opts.ValidateGeometry {
		if err := ValidateLineString(f.Geometry); err != nil {
			return f, err
		}
	}
	f.Properties, err = decodeProperties[P](raw.Properties)
	return f, err
}

// DecodePolygonFeature decodes a single feature of an area group.
func DecodePolygonFeature[P any](data json.RawMessage, opts ParseOptions) (PolygonFeature[P], error) {
	var f PolygonFeature[P]
	raw, err := splitFeature(data)
	if err != nil {
		return f, err
	}
	if f.Geometry, err = decodePolygonGeometry(*raw.Geometry); err != nil {
		return f, err
	}
	if opts.ValidateGeometry {
		if err := ValidatePolygon(f.Geometry); err != nil {
			return f, err
		}
	}
	f.Properties, err = decodeProperties[P](raw.Properties)
	return f, err
}

func splitFeature(data json.RawMessage) (rawFeature, error) {
	var raw rawFeature
	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("feature: %w", err)
	}
	if raw.Geometry == nil {
		return raw, &ErrInvalidGeometry{Reason: "feature has no geometry"}
	}
	if len(raw.Properties) == 0 || string(raw.Properties) == "null" {
		return raw, &ErrMissingProperty{Property: "properties"}
	}
	return raw, nil
}

// decodeProperties checks that every required property is present and non-null,
// then decodes the record. Pointer fields are optional, everything else is required.
func decodeProperties[P any](data json.RawMessage) (P, error) {
	var props P

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return props, fmt.Errorf("properties: %w", err)
	}
	for _, name := range requiredProperties(reflect.TypeOf(props)) {
		v, ok := present[name]
		if !ok || string(v) == "null" {
			return props, &ErrMissingProperty{Property: name}
		}
	}

	if err := json.Unmarshal(data, &props); err != nil {
		return props, fmt.Errorf("properties: %w", err)
	}
	return props, nil
}

var requiredCache sync.Map // reflect.Type -> []string

// requiredProperties lists the JSON names of the non-pointer fields of a
// property struct.
func requiredProperties(t reflect.Type) []string {
	if cached, ok := requiredCache.Load(t); ok {
		return cached.([]string)
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Type.Kind() == reflect.Pointer {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
	}

	requiredCache.Store(t, names)
	return names
}
