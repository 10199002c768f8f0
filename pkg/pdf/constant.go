package pdf

const (
	ContentType = "application/pdf"

	fontFamily     = "Helvetica"
	utf8FontFamily = "ReportSans"
	pageMarginMM   = 15.0
	rowHeightMM    = 8.0
	lineHeightMM   = 6.0
	maxImageWidth  = 180.0
	maxImageHeight = 220.0
)

// Table header fill.
var headerFill = [3]int{0, 123, 255}

var supportedImageTypes = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
}
