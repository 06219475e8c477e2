package cards

import "errors"

// Validate rejects requests that cannot produce a document. It runs at
// the transport boundary so the generation code can assume a sane
// canvas. An empty excelData list is valid and yields a zero-slide
// document.
func (r Request) Validate() error {
	if r.CanvasSize.Width <= 0 || r.CanvasSize.Height <= 0 {
		return errors.New("canvasSize width and height must be positive")
	}
	if r.TextItems == nil {
		return errors.New("textItems is required")
	}
	if r.ExcelData == nil {
		return errors.New("excelData is required")
	}
	return nil
}
