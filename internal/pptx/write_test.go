package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinyPNG is a 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89, 0x00, 0x00, 0x00,
	0x0D, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
}

func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(content)
	}
	return parts
}

func TestWriteTo_PackageSkeleton(t *testing.T) {
	p := New(8.27, 11.69)
	p.AddSlide()

	data, err := p.ProduceBytes()
	require.NoError(t, err)

	parts := readParts(t, data)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	} {
		assert.Contains(t, parts, name)
	}

	// A4 portrait in EMU.
	assert.Contains(t, parts["ppt/presentation.xml"], `<p:sldSz cx="7562088" cy="10689336"/>`)
}

func TestWriteTo_SlideListing(t *testing.T) {
	p := New(10, 7.5)
	p.AddSlide()
	p.AddSlide()
	p.AddSlide()

	data, err := p.ProduceBytes()
	require.NoError(t, err)

	parts := readParts(t, data)
	assert.Contains(t, parts, "ppt/slides/slide3.xml")

	pres := parts["ppt/presentation.xml"]
	assert.Contains(t, pres, `<p:sldId id="256" r:id="rId2"/>`)
	assert.Contains(t, pres, `<p:sldId id="258" r:id="rId4"/>`)

	ct := parts["[Content_Types].xml"]
	assert.Equal(t, 3, strings.Count(ct, "presentationml.slide+xml"))
}

func TestTextBoxRendering(t *testing.T) {
	p := New(10, 7.5)
	s := p.AddSlide()
	s.AddTextBox(Rect{Left: 1, Top: 2, Width: 3, Height: 0.5}, "Ada & <Eng>", TextStyle{
		FontFamily: "Malgun Gothic",
		SizePt:     20,
		Bold:       true,
		Color:      RGB{R: 255, G: 0, B: 255},
	})

	data, err := p.ProduceBytes()
	require.NoError(t, err)
	slide := readParts(t, data)["ppt/slides/slide1.xml"]

	assert.Contains(t, slide, `<a:t>Ada &amp; &lt;Eng&gt;</a:t>`)
	assert.Contains(t, slide, `sz="2000"`)
	assert.Contains(t, slide, `b="1"`)
	assert.Contains(t, slide, `<a:srgbClr val="FF00FF"/>`)
	assert.Contains(t, slide, `<a:latin typeface="Malgun Gothic"/>`)
	assert.Contains(t, slide, `<a:bodyPr wrap="square" lIns="0" tIns="0" rIns="0" bIns="0" anchor="ctr"/>`)
	assert.Contains(t, slide, `<a:pPr algn="ctr"/>`)
	// 1in offset, 3in extent.
	assert.Contains(t, slide, `<a:off x="914400" y="1828800"/>`)
	assert.Contains(t, slide, `<a:ext cx="2743200" cy="457200"/>`)
}

func TestSharedImageAcrossSlides(t *testing.T) {
	p := New(10, 7.5)
	ref := p.AddImage(tinyPNG, "png")

	s1 := p.AddSlide()
	s1.AddPicture(ref, Rect{Width: 5, Height: 3.75})
	s1.AddPicture(ref, Rect{Left: 5, Width: 5, Height: 3.75})
	s2 := p.AddSlide()
	s2.AddPicture(ref, Rect{Width: 10, Height: 7.5})

	data, err := p.ProduceBytes()
	require.NoError(t, err)
	parts := readParts(t, data)

	// One media part backs all three placements.
	assert.Contains(t, parts, "ppt/media/image1.png")
	assert.NotContains(t, parts, "ppt/media/image2.png")

	// Both placements on slide 1 share one relationship.
	rels1 := parts["ppt/slides/_rels/slide1.xml.rels"]
	assert.Equal(t, 1, strings.Count(rels1, "media/image1.png"))
	assert.Equal(t, 2, strings.Count(parts["ppt/slides/slide1.xml"], `r:embed="rId2"`))

	assert.Contains(t, parts["ppt/slides/_rels/slide2.xml.rels"], "media/image1.png")
	assert.Contains(t, parts["[Content_Types].xml"], `<Default Extension="png" ContentType="image/png"/>`)
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "FF00FF", RGB{255, 0, 255}.Hex())
	assert.Equal(t, "000000", RGB{}.Hex())
	assert.Equal(t, "0A0B0C", RGB{10, 11, 12}.Hex())
}

func TestWriteToByteCount(t *testing.T) {
	p := New(10, 7.5)
	p.AddSlide()

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
}
