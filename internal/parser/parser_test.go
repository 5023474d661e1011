package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeOf[T any]() reflect.Type {
	var v T
	return reflect.TypeOf(v)
}

// minimalDocument returns a document with every group present and empty,
// with extra groups spliced in.
func minimalDocument(extra map[string]string) []byte {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range Groups {
		if i > 0 {
			b.WriteString(",")
		}
		body, ok := extra[name]
		if !ok {
			body = `{"type": "FeatureCollection", "features": []}`
		}
		b.WriteString(`"` + name + `": ` + body)
	}
	b.WriteString("}")
	return []byte(b.String())
}

func TestDecode(t *testing.T) {
	doc, err := Decode(minimalDocument(map[string]string{
		GroupRunwayElement: `{"type": "FeatureCollection", "features": [{"id": "a"}, {"id": "b"}, {"id": "c"}]}`,
	}))
	require.NoError(t, err)

	rwy := doc.Group(GroupRunwayElement)
	assert.Equal(t, "runwayelement", rwy.Name)
	assert.Equal(t, "FeatureCollection", rwy.Type)
	require.Len(t, rwy.Features, 3)
	assert.JSONEq(t, `{"id": "a"}`, string(rwy.Features[0]))
	assert.JSONEq(t, `{"id": "c"}`, string(rwy.Features[2]))

	assert.Empty(t, doc.Group(GroupWater).Features)
	assert.Equal(t, 3, doc.FeatureCount())
	assert.Contains(t, doc.String(), "32 groups, 3 features")
}

func TestDecodeIgnoresUnknownGroups(t *testing.T) {
	data := minimalDocument(nil)
	data = append([]byte(`{"aerodromeexport": {"features": [1]},`), data[1:]...)

	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.FeatureCount())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		check func(t *testing.T, err error)
	}{
		{
			name: "not json",
			data: []byte(`{`),
			check: func(t *testing.T, err error) {
				var derr *ErrInvalidDocument
				assert.ErrorAs(t, err, &derr)
			},
		},
		{
			name: "array at top level",
			data: []byte(`[]`),
			check: func(t *testing.T, err error) {
				var derr *ErrInvalidDocument
				assert.ErrorAs(t, err, &derr)
			},
		},
		{
			name: "null document",
			data: []byte(`null`),
			check: func(t *testing.T, err error) {
				var derr *ErrInvalidDocument
				require.ErrorAs(t, err, &derr)
				assert.Contains(t, derr.Reason, "not an object")
			},
		},
		{
			name: "missing group",
			data: []byte(`{"aerodromereferencepoint": {"type": "FeatureCollection", "features": []}}`),
			check: func(t *testing.T, err error) {
				var merr *ErrMissingGroup
				require.ErrorAs(t, err, &merr)
				assert.Equal(t, GroupApronElement, merr.Group)
			},
		},
		{
			name: "group without features",
			data: minimalDocument(map[string]string{GroupHotspot: `{"type": "FeatureCollection"}`}),
			check: func(t *testing.T, err error) {
				var derr *ErrInvalidDocument
				require.ErrorAs(t, err, &derr)
				assert.Equal(t, GroupHotspot, derr.Group)
				assert.Equal(t, "missing features array", derr.Reason)
			},
		},
		{
			name: "group is not an object",
			data: minimalDocument(map[string]string{GroupStopway: `"stopway"`}),
			check: func(t *testing.T, err error) {
				var derr *ErrInvalidDocument
				require.ErrorAs(t, err, &derr)
				assert.Equal(t, GroupStopway, derr.Group)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(tt.data)
			require.Error(t, err)
			assert.Nil(t, doc)
			tt.check(t, err)
		})
	}
}

func TestGroups(t *testing.T) {
	assert.Len(t, Groups, 32)

	seen := make(map[string]bool, len(Groups))
	for _, name := range Groups {
		assert.False(t, seen[name], "duplicate group %s", name)
		assert.Equal(t, strings.ToLower(name), name)
		seen[name] = true
	}
	assert.Equal(t, GroupAerodromeReferencePoint, Groups[0])
}
