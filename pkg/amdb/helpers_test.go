package amdb

import (
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const fixturePath = "testdata/airport.json"

// fixture returns the raw bytes of the test airport document.
func fixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	return data
}

// fixtureDoc returns the test airport document as a mutable tree.
func fixtureDoc(t *testing.T) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(fixture(t), &doc))
	return doc
}

func encode(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

// features returns the feature list of a group in doc.
func features(t *testing.T, doc map[string]any, group string) []any {
	t.Helper()
	coll, ok := doc[group].(map[string]any)
	require.True(t, ok, "group %s", group)
	list, ok := coll["features"].([]any)
	require.True(t, ok, "features of %s", group)
	return list
}

// setFeatures replaces the features of group. No features encodes as an
// empty array, never null.
func setFeatures(doc map[string]any, group string, list ...any) {
	if list == nil {
		list = []any{}
	}
	doc[group] = map[string]any{"type": "FeatureCollection", "features": list}
}

// properties returns the property object of feature i of group.
func properties(t *testing.T, doc map[string]any, group string, i int) map[string]any {
	t.Helper()
	f, ok := features(t, doc, group)[i].(map[string]any)
	require.True(t, ok)
	props, ok := f["properties"].(map[string]any)
	require.True(t, ok)
	return props
}

// geometry returns the geometry object of feature i of group.
func geometry(t *testing.T, doc map[string]any, group string, i int) map[string]any {
	t.Helper()
	f, ok := features(t, doc, group)[i].(map[string]any)
	require.True(t, ok)
	g, ok := f["geometry"].(map[string]any)
	require.True(t, ok)
	return g
}

func parseDoc(t *testing.T, doc map[string]any, opts ParseOptions) (*Airport, error) {
	t.Helper()
	return NewParser().ParseBytes(encode(t, doc), opts)
}

func strPtr(s string) *string {
	return &s
}
