package model

// Severity is the display tier of a category.
type Severity string

const (
	SeverityCritical      Severity = "critical"
	SeverityElevated      Severity = "elevated"
	SeverityNormal        Severity = "normal"
	SeverityInformational Severity = "informational"
	SeverityNeutral       Severity = "neutral"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B int
}

type severityStyle struct {
	badge  string
	accent RGB
}

var severityStyles = map[Severity]severityStyle{
	SeverityCritical:      {badge: "danger", accent: RGB{220, 53, 69}},
	SeverityElevated:      {badge: "warning", accent: RGB{255, 193, 7}},
	SeverityNormal:        {badge: "success", accent: RGB{40, 167, 69}},
	SeverityInformational: {badge: "info", accent: RGB{23, 162, 184}},
	SeverityNeutral:       {badge: "secondary", accent: RGB{108, 117, 125}},
}

// Classify maps a category label to its severity tier. Unknown labels are Neutral.
func Classify(category string) Severity {
	switch category {
	case CategoryGlioma:
		return SeverityCritical
	case CategoryMeningioma:
		return SeverityElevated
	case CategoryNoTumor:
		return SeverityNormal
	case CategoryPituitary:
		return SeverityInformational
	default:
		return SeverityNeutral
	}
}

// Badge returns the UI badge variant.
func (s Severity) Badge() string {
	if st, ok := severityStyles[s]; ok {
		return st.badge
	}
	return severityStyles[SeverityNeutral].badge
}

// Accent returns the color used to emphasize the tier in exported documents.
func (s Severity) Accent() RGB {
	if st, ok := severityStyles[s]; ok {
		return st.accent
	}
	return severityStyles[SeverityNeutral].accent
}
