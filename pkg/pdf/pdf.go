package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"unicode/utf8"

	gofpdf "github.com/go-pdf/fpdf"

	"diagnosis-srv/internal/model"
)

// Produce renders doc. Header, table and notes pages flow on the first sheet;
// every image page starts a new sheet.
func (p *producerImpl) Produce(doc model.Document) (*Artifact, error) {
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("pdf: document %d has no pages", doc.ReportID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)
	pdf.SetCompression(!p.config.NoCompress)
	pdf.SetTitle(doc.Title, true)
	if p.config.Author != "" {
		pdf.SetAuthor(p.config.Author, true)
	}
	pdf.SetCreator("diagnosis-srv", true)

	w := &writer{pdf: pdf, family: fontFamily}
	if p.config.FontPath != "" {
		for _, style := range []string{"", "B", "I"} {
			pdf.AddUTF8Font(utf8FontFamily, style, p.config.FontPath)
		}
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("pdf: failed to load font %s: %w", p.config.FontPath, err)
		}
		w.family = utf8FontFamily
	} else {
		w.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddPage()

	for i, page := range doc.Pages {
		switch page.Kind {
		case model.PageHeader:
			w.header(page)
		case model.PageTable:
			w.table(page)
		case model.PageNotes:
			w.notes(page)
		case model.PageImage:
			w.image(fmt.Sprintf("visualization_%d", i), page)
		default:
			return nil, fmt.Errorf("pdf: unsupported page kind %q", page.Kind)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: failed to write document %d: %w", doc.ReportID, err)
	}

	return &Artifact{
		Name:          ArtifactName(doc.ReportID),
		ContentType:   ContentType,
		Data:          buf.Bytes(),
		Substitutions: w.lossy,
	}, nil
}

type writer struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string // nil when a UTF-8 font is registered
	lossy  int
}

// text prepares s for the current font. With the core fonts, runes outside
// cp1252 print as '.' and are counted in lossy.
func (w *writer) text(s string) string {
	if w.tr == nil {
		return s
	}
	for _, r := range s {
		if r >= utf8.RuneSelf && w.tr(string(r)) == "." {
			w.lossy++
		}
	}
	return w.tr(s)
}

func (w *writer) contentWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	return pageW - left - right
}

func (w *writer) sectionTitle(title string) {
	w.pdf.SetFont(w.family, "B", 13)
	w.pdf.SetTextColor(33, 37, 41)
	w.pdf.CellFormat(0, rowHeightMM, w.text(title), "", 1, "L", false, 0, "")
	w.pdf.Ln(1)
}

func (w *writer) header(page model.Page) {
	w.pdf.SetFont(w.family, "B", 18)
	w.pdf.SetTextColor(33, 37, 41)
	w.pdf.CellFormat(0, 12, w.text(page.Title), "", 1, "C", false, 0, "")
	w.pdf.Ln(2)

	for _, f := range page.Fields {
		w.pdf.SetFont(w.family, "B", 11)
		w.pdf.CellFormat(40, lineHeightMM, w.text(f.Label+":"), "", 0, "L", false, 0, "")
		w.pdf.SetFont(w.family, "", 11)
		w.pdf.CellFormat(0, lineHeightMM, w.text(f.Value), "", 1, "L", false, 0, "")
	}
	w.pdf.Ln(4)
}

func (w *writer) table(page model.Page) {
	w.sectionTitle(page.Title)
	if page.Table == nil || len(page.Table.Columns) == 0 {
		return
	}

	colW := w.contentWidth() / float64(len(page.Table.Columns))

	w.pdf.SetFont(w.family, "B", 10)
	w.pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	w.pdf.SetTextColor(255, 255, 255)
	for _, col := range page.Table.Columns {
		w.pdf.CellFormat(colW, rowHeightMM, w.text(col), "1", 0, "C", true, 0, "")
	}
	w.pdf.Ln(-1)

	w.pdf.SetFont(w.family, "", 10)
	for _, row := range page.Table.Rows {
		for i, cell := range row.Cells {
			w.pdf.SetTextColor(33, 37, 41)
			// Prediction cells take the severity accent
			if i == 1 && row.Severity != "" {
				c := row.Severity.Accent()
				w.pdf.SetTextColor(c.R, c.G, c.B)
			}
			w.pdf.CellFormat(colW, rowHeightMM, w.text(cell), "1", 0, "C", false, 0, "")
		}
		w.pdf.Ln(-1)
	}
	w.pdf.Ln(4)
}

func (w *writer) notes(page model.Page) {
	w.sectionTitle(page.Title)
	w.pdf.SetFont(w.family, "", 11)
	w.pdf.SetTextColor(33, 37, 41)
	w.pdf.MultiCell(0, lineHeightMM, w.text(page.Text), "", "L", false)
	w.pdf.Ln(4)
}

func (w *writer) image(name string, page model.Page) {
	w.pdf.AddPage()
	w.sectionTitle(page.Title)

	if page.Image == nil || !page.Image.IsEncoded() || !w.embed(name, *page.Image) {
		notice := page.Notice
		if notice == "" {
			notice = "Image could not be loaded"
		}
		w.pdf.SetFont(w.family, "I", 11)
		w.pdf.SetTextColor(108, 117, 125)
		w.pdf.MultiCell(0, lineHeightMM, w.text(notice), "", "L", false)
	}
}

// embed draws img scaled to the content box. It returns false when the
// image cannot be decoded, leaving the document usable.
func (w *writer) embed(name string, img model.Image) bool {
	imageType, ok := supportedImageTypes[img.MIMEType]
	if !ok {
		return false
	}
	raw, err := img.Decode()
	if err != nil {
		return false
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return false
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	info := w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if w.pdf.Err() || info == nil {
		w.pdf.ClearError()
		return false
	}

	width, height := fit(info.Width(), info.Height(), maxImageWidth, maxImageHeight)
	left, _, _, _ := w.pdf.GetMargins()
	w.pdf.ImageOptions(name, left, w.pdf.GetY(), width, height, true, opts, 0, "")
	return true
}

// fit scales (width, height) to the largest size within the box keeping the aspect ratio.
func fit(width, height, maxW, maxH float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return maxW, 0
	}
	scale := maxW / width
	if height*scale > maxH {
		scale = maxH / height
	}
	return width * scale, height * scale
}
