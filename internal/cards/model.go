package cards

// CenterPosition is a text item's center offset from the canvas center,
// in canvas pixels, with y increasing upward.
type CenterPosition struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

// TextItem is one text template shared by every generated card.
type TextItem struct {
	ID               string         `json:"id"`
	Text             string         `json:"text"`
	CenterPosition   CenterPosition `json:"centerPosition"`
	FontSizePt       float64        `json:"fontSizePt"`
	MeasuredHeightPt *float64       `json:"measuredHeightPt,omitempty"`
	ColorValue       int            `json:"colorValue"`
	FontWeightBold   bool           `json:"fontWeightBold"`
	FontFamily       string         `json:"fontFamily,omitempty"`
}

// CanvasSize is the pixel size of the design-time canvas.
type CanvasSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DataRow holds one card's data; keys "name" and "group" feed the
// "title" and "subtitle" slots.
type DataRow map[string]string

// Request is the full /generate-ppt request body.
type Request struct {
	BackgroundImageBytes string     `json:"backgroundImageBytes,omitempty"`
	CanvasSize           CanvasSize `json:"canvasSize"`
	CanvasAspectRatio    float64    `json:"canvasAspectRatio,omitempty"`
	TextItems            []TextItem `json:"textItems"`
	ExcelData            []DataRow  `json:"excelData"`
	QRText               string     `json:"qrText,omitempty"`
}

// MeasuredHeight returns the measured text height in points, falling
// back to the font size when no measurement was supplied.
func (t TextItem) MeasuredHeight() float64 {
	if t.MeasuredHeightPt != nil {
		return *t.MeasuredHeightPt
	}
	return t.FontSizePt
}

// RGB unpacks the packed 0xRRGGBB color value into byte components.
func (t TextItem) RGB() (r, g, b uint8) {
	return uint8((t.ColorValue >> 16) & 0xFF), uint8((t.ColorValue >> 8) & 0xFF), uint8(t.ColorValue & 0xFF)
}
