package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report"
)

// Compile assembles the ordered page list of a report export.
// Missing data is rendered as placeholders; only a structurally broken document is an error.
func (uc *implUseCase) Compile(ctx context.Context, sc model.Scope, input report.CompileInput) (model.Document, error) {
	rpt := input.Report

	// Both fetches run concurrently and are joined before any image page is composed
	var imgA, imgB model.Image
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		imgA = uc.fetch(gctx, sc, rpt.VisualizationA)
		return nil
	})
	g.Go(func() error {
		imgB = uc.fetch(gctx, sc, rpt.VisualizationB)
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Compile: Failed to fetch visualizations of report %d: %v", rpt.ID, err)
		return model.Document{}, report.ErrCompilationFailed
	}

	pages := []model.Page{
		uc.headerPage(rpt),
		uc.summaryPage(rpt),
		breakdownPage(uc.config.ModelAName, rpt.ModelA),
		breakdownPage(uc.config.ModelBName, rpt.ModelB),
		notesPage(input.NotesOverride, rpt.ClinicianNotes),
	}
	if p, ok := visualizationPage(uc.config.ModelAName, rpt.VisualizationA, imgA); ok {
		pages = append(pages, p)
	}
	if p, ok := visualizationPage(uc.config.ModelBName, rpt.VisualizationB, imgB); ok {
		pages = append(pages, p)
	}

	doc := model.Document{
		ReportID: rpt.ID,
		Title:    report.DocumentTitle,
		Pages:    pages,
	}
	if err := validateDocument(doc); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Compile: Invalid document for report %d: %v", rpt.ID, err)
		return model.Document{}, report.ErrCompilationFailed
	}

	return doc, nil
}

func (uc *implUseCase) fetch(ctx context.Context, sc model.Scope, path string) model.Image {
	if strings.TrimSpace(path) == "" {
		return model.AbsentImage()
	}
	return uc.vis.FetchAndEncode(ctx, sc, path)
}

func (uc *implUseCase) headerPage(rpt model.Report) model.Page {
	patient := rpt.PatientUsername
	if patient == "" {
		patient = report.UnknownPatient
	}

	date := report.NotAvailable
	if !rpt.CreatedAt.IsZero() {
		date = rpt.CreatedAt.In(uc.config.Location).Format(report.DateLayout)
	}

	return model.Page{
		Kind:  model.PageHeader,
		Title: report.DocumentTitle,
		Fields: []model.Field{
			{Label: "Patient Username", Value: patient},
			{Label: "Filename", Value: orNotAvailable(rpt.Filename)},
			{Label: "Date", Value: date},
		},
	}
}

func (uc *implUseCase) summaryPage(rpt model.Report) model.Page {
	return model.Page{
		Kind:  model.PageTable,
		Title: report.SummaryTitle,
		Table: &model.Table{
			Columns: []string{"Model", "Prediction", "Confidence"},
			Rows: []model.TableRow{
				predictionRow(uc.config.ModelAName, rpt.ModelA),
				predictionRow(uc.config.ModelBName, rpt.ModelB),
			},
		},
	}
}

func predictionRow(modelName string, res model.ModelResult) model.TableRow {
	return model.TableRow{
		Cells: []string{
			modelName,
			orNotAvailable(res.PredictedCategory),
			formatConfidence(res.Confidence, res.PredictedCategory),
		},
		Severity: model.Classify(res.PredictedCategory),
	}
}

func breakdownPage(modelName string, res model.ModelResult) model.Page {
	rows := make([]model.TableRow, 0, len(model.CanonicalCategories))
	for _, cat := range model.CanonicalCategories {
		rows = append(rows, model.TableRow{
			Cells: []string{cat, formatConfidence(res.Confidence, cat)},
		})
	}

	return model.Page{
		Kind:  model.PageTable,
		Title: report.BreakdownTitle(modelName),
		Table: &model.Table{
			Columns: []string{"Category", "Confidence"},
			Rows:    rows,
		},
	}
}

func notesPage(override, stored string) model.Page {
	text := report.NotAvailable
	switch {
	case strings.TrimSpace(override) != "":
		text = override
	case strings.TrimSpace(stored) != "":
		text = stored
	}

	return model.Page{
		Kind:  model.PageNotes,
		Title: report.NotesTitle,
		Text:  text,
	}
}

// visualizationPage returns false when the report has no path for the image.
// A present path always yields a page; anything but an encoded image renders the notice.
func visualizationPage(modelName, path string, img model.Image) (model.Page, bool) {
	if strings.TrimSpace(path) == "" {
		return model.Page{}, false
	}

	p := model.Page{
		Kind:  model.PageImage,
		Title: report.VisualizationTitle(modelName),
	}
	if !img.IsEncoded() {
		img = model.UnavailableImage()
		p.Notice = report.ImageNotice
	}
	p.Image = &img
	return p, true
}

func formatConfidence(m model.ConfidenceMap, cat model.Category) string {
	v, ok := m.Lookup(cat)
	if !ok {
		return report.NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNotAvailable(s string) string {
	if s == "" {
		return report.NotAvailable
	}
	return s
}

func validateDocument(doc model.Document) error {
	if len(doc.Pages) == 0 {
		return fmt.Errorf("document has no pages")
	}
	for i, p := range doc.Pages {
		if p.Title == "" {
			return fmt.Errorf("page %d has no title", i)
		}
		switch p.Kind {
		case model.PageHeader, model.PageNotes:
		case model.PageTable:
			if p.Table == nil {
				return fmt.Errorf("table page %d has no table", i)
			}
			for j, row := range p.Table.Rows {
				if len(row.Cells) != len(p.Table.Columns) {
					return fmt.Errorf("table page %d row %d has %d cells, want %d", i, j, len(row.Cells), len(p.Table.Columns))
				}
			}
		case model.PageImage:
			if p.Image == nil {
				return fmt.Errorf("image page %d has no image", i)
			}
		default:
			return fmt.Errorf("page %d has unknown kind %q", i, p.Kind)
		}
	}
	return nil
}
