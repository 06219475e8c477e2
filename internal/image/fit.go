package imagepkg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ratioTolerance is how close a source ratio must be to the target
// before cropping is skipped entirely; below this the crop would be
// imperceptible.
const ratioTolerance = 0.01

// FitToRatio center-crops img to the target width/height ratio. Only
// one axis is ever reduced and no resampling happens; the input is
// returned unchanged when its ratio is already within tolerance.
func FitToRatio(img image.Image, targetRatio float64) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || targetRatio <= 0 {
		return img
	}

	srcRatio := float64(w) / float64(h)
	if math.Abs(srcRatio-targetRatio) < ratioTolerance {
		return img
	}

	if srcRatio > targetRatio {
		// Source is relatively wider: trim left and right.
		newW := int(math.Round(targetRatio * float64(h)))
		return imaging.CropAnchor(img, newW, h, imaging.Center)
	}
	// Source is relatively taller: trim top and bottom.
	newH := int(math.Round(float64(w) / targetRatio))
	return imaging.CropAnchor(img, w, newH, imaging.Center)
}
