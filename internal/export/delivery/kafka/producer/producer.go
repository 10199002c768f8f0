package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"diagnosis-srv/internal/export"
	kafkaDelivery "diagnosis-srv/internal/export/delivery/kafka"
	pkgKafka "diagnosis-srv/pkg/kafka"
)

// PublishExportEvent publishes an export lifecycle event keyed by job id
func (p *implProducer) PublishExportEvent(ctx context.Context, event export.ExportEvent) error {
	msg := kafkaDelivery.ExportEventMessage{
		Event:      event.Event,
		JobID:      event.JobID,
		ReportID:   event.ReportID,
		UserID:     event.UserID,
		State:      string(event.State),
		ObjectName: event.ObjectName,
		SizeBytes:  event.Size,
		Error:      event.Error,
		OccurredAt: event.OccurredAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal export event: %w", err)
	}

	header := pkgKafka.Header{Key: kafkaDelivery.HeaderEventType, Value: event.Event}
	if err := p.producer.Publish([]byte(event.JobID), body, header); err != nil {
		return fmt.Errorf("failed to publish export event: %w", err)
	}

	p.l.Infof(ctx, "Published %s for export %s", event.Event, event.JobID)
	return nil
}
