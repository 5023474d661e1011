package amdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"absent", nil, nil},
		{"empty", strPtr(""), nil},
		{"sentinel", strPtr("$UNK"), nil},
		{"value", strPtr("A1"), strPtr("A1")},
		{"sentinel lookalike", strPtr("$UNKNOWN"), strPtr("$UNKNOWN")},
		{"lowercase sentinel", strPtr("$unk"), strPtr("$unk")},
		{"whitespace kept", strPtr(" A1 "), strPtr(" A1 ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeString(tt.in))
		})
	}
}

func TestNormalizeStringCopies(t *testing.T) {
	in := "A1"
	out := normalizeString(&in)
	require.NotNil(t, out)
	in = "B2"
	assert.Equal(t, "A1", *out)
}

func TestNormalizeValue(t *testing.T) {
	assert.Nil(t, normalizeValue(""))
	assert.Nil(t, normalizeValue("$UNK"))
	assert.Equal(t, strPtr("B"), normalizeValue("B"))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want []string
	}{
		{"absent", nil, nil},
		{"sentinel", strPtr("$UNK"), nil},
		{"single", strPtr("A320"), []string{"A320"}},
		{"semicolons", strPtr("A320;B738"), []string{"A320", "B738"}},
		{"mixed separators", strPtr("A320;B738, A321"), []string{"A320", "B738", "A321"}},
		{"empty items", strPtr(";;A320,,"), []string{"A320"}},
		{"only separators", strPtr(" ; , "), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.in))
		})
	}
}

func TestParseRunwayID(t *testing.T) {
	tests := []struct {
		in      string
		want    RunwayID
		wantErr string
	}{
		{in: "09L.27R", want: RunwayID{First: "09L", Second: "27R"}},
		{in: "RWY1.RWY2", want: RunwayID{First: "RWY1", Second: "RWY2"}},
		{in: "0927", wantErr: "missing runway separator"},
		{in: "", wantErr: "missing runway separator"},
		{in: "09.27.36", wantErr: "expected 2 runway designators, got 3"},
		{in: "09.", wantErr: "empty runway designator"},
		{in: ".27", wantErr: "empty runway designator"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRunwayID(tt.in)
			if tt.wantErr != "" {
				var ferr *FormatError
				require.True(t, errors.As(err, &ferr))
				assert.Equal(t, tt.in, ferr.Value)
				assert.Contains(t, ferr.Reason, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseHoldingPointTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    HoldingPointTarget
		wantErr bool
	}{
		{in: "RWY1.RWY2", want: RunwayTarget{First: "RWY1", Second: "RWY2"}},
		{in: "09.27", want: RunwayTarget{First: "09", Second: "27"}},
		{in: "A", want: TaxiwayTarget("A")},
		{in: "A1 B2", want: TaxiwayTarget("A1 B2")},
		{in: "A.", wantErr: true},
		{in: "A.B.C", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHoldingPointTarget(tt.in)
			if tt.wantErr {
				var ferr *FormatError
				assert.ErrorAs(t, err, &ferr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestHoldingPointTargetSwitch(t *testing.T) {
	target, err := ParseHoldingPointTarget("09.27")
	require.NoError(t, err)

	switch v := target.(type) {
	case RunwayTarget:
		assert.Equal(t, "09", v.First)
		assert.Equal(t, "27", v.Second)
	case TaxiwayTarget:
		t.Fatalf("got taxiway target %q", v)
	}
}
