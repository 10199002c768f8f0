package pdf

// Config holds the PDF producer settings.
type Config struct {
	// Author is written to the document metadata when set.
	Author string
	// NoCompress disables stream compression so text stays searchable in the raw bytes.
	NoCompress bool
	// FontPath is a UTF-8 TrueType font used for all text. Without it the
	// core Helvetica font is used and text is limited to cp1252.
	FontPath string
}

// Artifact is a serialized export ready to be stored.
type Artifact struct {
	Name          string
	ContentType   string
	Data          []byte
	Substitutions int // characters the font could not represent
}

type producerImpl struct {
	config Config
}
