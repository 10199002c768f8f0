package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"diagnosis-srv/internal/model"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		img.SetGray(x, x%4, color.Gray{Y: 200})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testDocument(images ...model.Image) model.Document {
	doc := model.Document{
		ReportID: 7,
		Title:    "Brain Tumor Classification Report",
		Pages: []model.Page{
			{Kind: model.PageHeader, Title: "Brain Tumor Classification Report", Fields: []model.Field{
				{Label: "Patient Username", Value: "alice"},
				{Label: "Filename", Value: "scan_7.png"},
			}},
			{Kind: model.PageTable, Title: "Predictions", Table: &model.Table{
				Columns: []string{"Model", "Prediction", "Confidence"},
				Rows: []model.TableRow{
					{Cells: []string{"Model A", "Glioma", "92"}, Severity: model.SeverityCritical},
					{Cells: []string{"Model B", "No Tumor", "90"}, Severity: model.SeverityNormal},
				},
			}},
			{Kind: model.PageNotes, Title: "Doctor Notes", Text: "N/A"},
		},
	}
	for i := range images {
		img := images[i]
		doc.Pages = append(doc.Pages, model.Page{
			Kind:   model.PageImage,
			Title:  "Model A Visualization",
			Image:  &img,
			Notice: noticeFor(img),
		})
	}
	return doc
}

func noticeFor(img model.Image) string {
	if img.IsEncoded() {
		return ""
	}
	return "Image could not be loaded"
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	r := bytes.NewReader(data)
	require.NoError(t, pdfapi.Validate(r, nil))
	_, err := r.Seek(0, 0)
	require.NoError(t, err)
	n, err := pdfapi.PageCount(r, nil)
	require.NoError(t, err)
	return n
}

func TestProduce(t *testing.T) {
	p := New(Config{NoCompress: true})

	t.Run("no images", func(t *testing.T) {
		a, err := p.Produce(testDocument())
		require.NoError(t, err)
		assert.Equal(t, "report_7.pdf", a.Name)
		assert.Equal(t, "application/pdf", a.ContentType)
		assert.Equal(t, 1, pageCount(t, a.Data))
		assert.True(t, bytes.Contains(a.Data, []byte("Predictions")))
		assert.True(t, bytes.Contains(a.Data, []byte("Glioma")))
		assert.True(t, bytes.Contains(a.Data, []byte("Doctor Notes")))
	})

	t.Run("embedded and unavailable images", func(t *testing.T) {
		doc := testDocument(model.EncodedImage("image/png", testPNG(t)), model.UnavailableImage())
		a, err := p.Produce(doc)
		require.NoError(t, err)
		assert.Equal(t, 3, pageCount(t, a.Data))
		assert.True(t, bytes.Contains(a.Data, []byte("Image could not be loaded")))
	})

	t.Run("undecodable image falls back to notice", func(t *testing.T) {
		doc := testDocument(model.EncodedImage("image/png", []byte("\x89PNG\r\n\x1a\ngarbage")))
		a, err := p.Produce(doc)
		require.NoError(t, err)
		assert.Equal(t, 2, pageCount(t, a.Data))
		assert.True(t, bytes.Contains(a.Data, []byte("Image could not be loaded")))
	})

	t.Run("unsupported type falls back to notice", func(t *testing.T) {
		doc := testDocument(model.EncodedImage("image/webp", []byte("RIFF")))
		a, err := p.Produce(doc)
		require.NoError(t, err)
		assert.Equal(t, 2, pageCount(t, a.Data))
	})
}

func TestProduce_Errors(t *testing.T) {
	p := New(Config{})

	_, err := p.Produce(model.Document{ReportID: 1})
	assert.Error(t, err)

	_, err = p.Produce(model.Document{ReportID: 1, Pages: []model.Page{{Kind: "chart", Title: "x"}}})
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	w, h := fit(100, 50, 180, 220)
	assert.InDelta(t, 180, w, 0.001)
	assert.InDelta(t, 90, h, 0.001)

	w, h = fit(50, 200, 180, 220)
	assert.InDelta(t, 55, w, 0.001)
	assert.InDelta(t, 220, h, 0.001)
}

func TestProduce_CountsUnrepresentableText(t *testing.T) {
	p := New(Config{})

	doc := testDocument()
	doc.Pages[2].Text = "Café, naïve"
	a, err := p.Produce(doc)
	require.NoError(t, err)
	assert.Zero(t, a.Substitutions)

	doc.Pages[2].Text = "Пациент"
	a, err = p.Produce(doc)
	require.NoError(t, err)
	assert.Equal(t, 7, a.Substitutions)
	assert.Equal(t, 1, pageCount(t, a.Data))
}

func TestProduce_MissingFont(t *testing.T) {
	p := New(Config{FontPath: "/nonexistent/fonts/report.ttf"})
	_, err := p.Produce(testDocument())
	assert.Error(t, err)
}
