// Package deck assembles the slide deck for one generation request:
// one A4 slide per group of four data rows, each row rendered as a
// card in a 2x2 grid.
package deck

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/youruser/cardpress/internal/cards"
	imagepkg "github.com/youruser/cardpress/internal/image"
	"github.com/youruser/cardpress/internal/layout"
	"github.com/youruser/cardpress/internal/logging"
	"github.com/youruser/cardpress/internal/pptx"
)

// DefaultFontFamily is used when a text item names no family or the
// name is empty after normalization.
const DefaultFontFamily = "Malgun Gothic"

// QR overlay placement within a card.
const (
	qrSizeInches  = 0.6
	qrInsetInches = 0.1
	qrPixels      = 400 // rendered edge length before placement
)

// Builder turns requests into .pptx documents. Builders are stateless
// aside from configuration and safe for concurrent use.
type Builder struct {
	geom        layout.Geometry
	defaultFont string
}

// NewBuilder returns a Builder with the calibrated default geometry.
func NewBuilder() *Builder {
	return &Builder{
		geom:        layout.DefaultGeometry(),
		defaultFont: DefaultFontFamily,
	}
}

// NewBuilderWithGeometry returns a Builder using custom mapping
// constants.
func NewBuilderWithGeometry(g layout.Geometry) *Builder {
	return &Builder{geom: g, defaultFont: DefaultFontFamily}
}

// sharedImage is a media part generated once per request and placed on
// every populated card.
type sharedImage struct {
	ref pptx.ImageRef
	ok  bool
}

// Build generates the document for one request. The only fatal error
// is document serialization; a broken background image or QR payload
// degrades to a card without that element.
func (b *Builder) Build(req cards.Request) ([]byte, error) {
	prs := pptx.New(layout.PageWidthInches, layout.PageHeightInches)

	background := b.prepareBackground(req, prs)
	qr := b.prepareQR(req, prs)

	for _, chunk := range chunkRows(req.ExcelData, layout.CardsPerPage) {
		slide := prs.AddSlide()
		b.addCards(slide, chunk, req, background, qr)
	}

	out, err := prs.ProduceBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return out, nil
}

// prepareBackground decodes, crops and re-encodes the background image
// once; every placement across all slides shares the returned ref.
// Any failure is logged and generation continues without a background.
func (b *Builder) prepareBackground(req cards.Request, prs *pptx.Presentation) sharedImage {
	if req.BackgroundImageBytes == "" {
		return sharedImage{}
	}

	img, format, err := imagepkg.DecodeBase64(req.BackgroundImageBytes)
	if err != nil {
		logging.Logger().Warn("background image unusable, continuing without it", "err", err)
		return sharedImage{}
	}

	cropped := imagepkg.FitToRatio(img, targetRatio(req))
	data, format, err := imagepkg.EncodeFormat(cropped, format)
	if err != nil {
		logging.Logger().Warn("background image unusable, continuing without it", "err", err)
		return sharedImage{}
	}
	return sharedImage{ref: prs.AddImage(data, format), ok: true}
}

// prepareQR renders the optional QR overlay once for the whole deck.
func (b *Builder) prepareQR(req cards.Request, prs *pptx.Presentation) sharedImage {
	if req.QRText == "" {
		return sharedImage{}
	}
	data, err := imagepkg.GenerateQRPNG(req.QRText, qrPixels)
	if err != nil {
		logging.Logger().Warn("qr code generation failed, continuing without it", "err", err)
		return sharedImage{}
	}
	return sharedImage{ref: prs.AddImage(data, "png"), ok: true}
}

// targetRatio picks the crop ratio for the background: the declared
// canvas aspect ratio when positive, else one page quadrant's ratio.
func targetRatio(req cards.Request) float64 {
	if req.CanvasAspectRatio > 0 {
		return req.CanvasAspectRatio
	}
	return layout.CardAspectRatio()
}

// addCards fills one slide. Quadrants are populated in top-left,
// top-right, bottom-left, bottom-right order; slots past the chunk's
// row count stay empty.
func (b *Builder) addCards(slide *pptx.Slide, chunk []cards.DataRow, req cards.Request, background, qr sharedImage) {
	for slot, row := range chunk {
		card := layout.CardRect(slot)

		if background.ok {
			slide.AddPicture(background.ref, pptx.Rect{
				Left: card.Left, Top: card.Top, Width: card.Width, Height: card.Height,
			})
		}
		if qr.ok {
			slide.AddPicture(qr.ref, pptx.Rect{
				Left:   card.Left + card.Width - qrSizeInches - qrInsetInches,
				Top:    card.Top + card.Height - qrSizeInches - qrInsetInches,
				Width:  qrSizeInches,
				Height: qrSizeInches,
			})
		}

		for _, item := range req.TextItems {
			box := b.geom.TextBoxRect(item, req.CanvasSize).Offset(card.Left, card.Top)
			r, g, bl := item.RGB()
			slide.AddTextBox(
				pptx.Rect{Left: box.Left, Top: box.Top, Width: box.Width, Height: box.Height},
				cards.ResolveText(item, row),
				pptx.TextStyle{
					FontFamily: b.fontFamily(item),
					SizePt:     item.FontSizePt,
					Bold:       item.FontWeightBold,
					Color:      pptx.RGB{R: r, G: g, B: bl},
				},
			)
		}
	}
}

// fontFamily normalizes a requested family name to NFC, falling back
// to the default family when none was requested.
func (b *Builder) fontFamily(item cards.TextItem) string {
	name := norm.NFC.String(item.FontFamily)
	if name == "" {
		return b.defaultFont
	}
	return name
}

// chunkRows splits rows into consecutive groups of at most size.
func chunkRows(rows []cards.DataRow, size int) [][]cards.DataRow {
	var chunks [][]cards.DataRow
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}
