// Package pptx writes PresentationML (.pptx) documents. It is a small
// pure-Go writer: slides are plain shape lists and the package emits
// the OOXML part tree directly, with no external document library.
package pptx

import (
	"fmt"
	"math"
)

// emuPerInch is the EMU (English Metric Unit) count per inch used by
// all OOXML drawing coordinates.
const emuPerInch = 914400

// Rect is an axis-aligned box on a slide, in inches from the top-left.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// RGB is a 24-bit text color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB string.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// TextStyle describes run-level formatting for a text box. The box
// itself always has zero insets, word wrap, a middle vertical anchor
// and one center-aligned paragraph.
type TextStyle struct {
	FontFamily string
	SizePt     float64
	Bold       bool
	Color      RGB
}

// ImageRef identifies a registered media part within a Presentation.
type ImageRef int

type mediaPart struct {
	data        []byte
	ext         string
	contentType string
}

type picture struct {
	ref ImageRef
	box Rect
}

type textbox struct {
	box   Rect
	text  string
	style TextStyle
}

// shape is one z-ordered element on a slide; exactly one field is set.
type shape struct {
	pic *picture
	txt *textbox
}

// Slide collects shapes in z-order for one slide.
type Slide struct {
	shapes []shape
}

// Presentation is an in-memory slide document. The zero value is not
// usable; construct with New.
type Presentation struct {
	widthEMU  int64
	heightEMU int64
	slides    []*Slide
	media     []mediaPart
}

// New creates an empty presentation with the given slide size in
// inches.
func New(widthInches, heightInches float64) *Presentation {
	return &Presentation{
		widthEMU:  emu(widthInches),
		heightEMU: emu(heightInches),
	}
}

// AddImage registers image bytes as a shared media part and returns a
// reference for placement. The same part backs every placement of the
// returned ref, however many slides use it. Format is an image format
// name as reported by image decoding ("png", "jpeg", "gif", ...).
func (p *Presentation) AddImage(data []byte, format string) ImageRef {
	ext, contentType := mediaType(format)
	p.media = append(p.media, mediaPart{data: data, ext: ext, contentType: contentType})
	return ImageRef(len(p.media) - 1)
}

// AddSlide appends a blank slide and returns it for shape placement.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

// SlideCount returns the number of slides added so far.
func (p *Presentation) SlideCount() int { return len(p.slides) }

// AddPicture places a registered image stretched to box.
func (s *Slide) AddPicture(ref ImageRef, box Rect) {
	s.shapes = append(s.shapes, shape{pic: &picture{ref: ref, box: box}})
}

// AddTextBox places a text box with a single centered paragraph.
func (s *Slide) AddTextBox(box Rect, text string, style TextStyle) {
	s.shapes = append(s.shapes, shape{txt: &textbox{box: box, text: text, style: style}})
}

func emu(inches float64) int64 {
	return int64(math.Round(inches * emuPerInch))
}

func mediaType(format string) (ext, contentType string) {
	switch format {
	case "jpeg":
		return "jpeg", "image/jpeg"
	case "gif":
		return "gif", "image/gif"
	case "bmp":
		return "bmp", "image/bmp"
	case "tiff":
		return "tiff", "image/tiff"
	default:
		return "png", "image/png"
	}
}
