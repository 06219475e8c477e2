package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveText_SpecialSlots(t *testing.T) {
	row := DataRow{"name": "Ada", "group": "Eng"}

	assert.Equal(t, "Ada", ResolveText(TextItem{ID: "title", Text: "ignored"}, row))
	assert.Equal(t, "Eng", ResolveText(TextItem{ID: "subtitle", Text: "ignored"}, row))
}

func TestResolveText_LiteralText(t *testing.T) {
	row := DataRow{"name": "Ada", "group": "Eng", "caption": "unused"}

	assert.Equal(t, "Hello", ResolveText(TextItem{ID: "caption", Text: "Hello"}, row))
	assert.Equal(t, "", ResolveText(TextItem{ID: "caption"}, row))
}

func TestResolveText_MissingRowKeys(t *testing.T) {
	assert.Equal(t, "", ResolveText(TextItem{ID: "title", Text: "fallback is not used"}, DataRow{}))
	assert.Equal(t, "", ResolveText(TextItem{ID: "subtitle"}, nil))
}

func TestTextItemRGB(t *testing.T) {
	cases := []struct {
		value   int
		r, g, b uint8
	}{
		{0xFF00FF, 255, 0, 255},
		{0x000000, 0, 0, 0},
		{0xFFFFFF, 255, 255, 255},
		{0x123456, 0x12, 0x34, 0x56},
	}
	for _, tc := range cases {
		r, g, b := TextItem{ColorValue: tc.value}.RGB()
		assert.Equal(t, tc.r, r)
		assert.Equal(t, tc.g, g)
		assert.Equal(t, tc.b, b)
	}
}

func TestMeasuredHeightFallback(t *testing.T) {
	assert.Equal(t, 20.0, TextItem{FontSizePt: 20}.MeasuredHeight())

	h := 26.5
	assert.Equal(t, 26.5, TextItem{FontSizePt: 20, MeasuredHeightPt: &h}.MeasuredHeight())
}

func TestRequestValidate(t *testing.T) {
	valid := Request{
		CanvasSize: CanvasSize{Width: 1000, Height: 1000},
		TextItems:  []TextItem{},
		ExcelData:  []DataRow{},
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.CanvasSize.Width = 0
	assert.Error(t, bad.Validate())

	bad = valid
	bad.CanvasSize.Height = -5
	assert.Error(t, bad.Validate())

	bad = valid
	bad.TextItems = nil
	assert.Error(t, bad.Validate())

	bad = valid
	bad.ExcelData = nil
	assert.Error(t, bad.Validate())
}
