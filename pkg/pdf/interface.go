package pdf

import (
	"fmt"

	"diagnosis-srv/internal/model"
)

// IProducer serializes compiled documents to PDF.
// Implementations are safe for concurrent use.
type IProducer interface {
	Produce(doc model.Document) (*Artifact, error)
}

// New creates a new PDF producer. Returns the interface.
func New(cfg Config) IProducer {
	return &producerImpl{config: cfg}
}

// ArtifactName returns the file name of a report export.
func ArtifactName(reportID int64) string {
	return fmt.Sprintf("report_%d.pdf", reportID)
}
