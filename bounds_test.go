package genni

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBoundsValidate(t *testing.T) {
	b := DefaultBounds()
	require.NoError(t, b.Validate())
	assert.Equal(t, int64(1000), b.XR.Len())
	assert.Equal(t, int64(90_000), b.XL.Len())
	assert.Equal(t, int64(9_000), b.YL.Len())
}

func TestBoundsValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Bounds)
		want   error
	}{
		{"reversed", func(b *Bounds) { b.XR = Range{5, 4} }, ErrInvalidRange},
		{"negative", func(b *Bounds) { b.XL = Range{-1, 5} }, ErrInvalidRange},
		{"xr too wide", func(b *Bounds) { b.XR = Range{0, 1000} }, ErrWidth},
		{"yl too wide", func(b *Bounds) { b.YL = Range{1000, 10_000} }, ErrWidth},
		{"xl too wide", func(b *Bounds) { b.XL = Range{10_000, 100_000} }, ErrWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultBounds()
			tt.modify(&b)
			assert.ErrorIs(t, b.Validate(), tt.want)
		})
	}
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, int64(1), Range{3, 3}.Len())
	assert.Equal(t, int64(0), Range{4, 3}.Len())
}

func TestLoadBounds(t *testing.T) {
	doc := `
xr: {min: 870, max: 879}
yr: {min: 540, max: 549}
xl: {min: 39870, max: 39879}
yl: {min: 9560, max: 9569}
`
	b, err := LoadBounds(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, Bounds{
		XR: Range{870, 879},
		YR: Range{540, 549},
		XL: Range{39870, 39879},
		YL: Range{9560, 9569},
	}, b)
}

func TestLoadBoundsKeepsDefaults(t *testing.T) {
	b, err := LoadBounds(strings.NewReader("xl: {min: 20000, max: 20009}\n"))
	require.NoError(t, err)
	want := DefaultBounds()
	want.XL = Range{20000, 20009}
	assert.Equal(t, want, b)

	b, err = LoadBounds(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultBounds(), b)
}

func TestLoadBoundsErrors(t *testing.T) {
	_, err := LoadBounds(strings.NewReader("xr: [1, 2"))
	assert.Error(t, err)

	_, err = LoadBounds(strings.NewReader("yr: {min: 0, max: 5000}\n"))
	assert.ErrorIs(t, err, ErrWidth)
}
