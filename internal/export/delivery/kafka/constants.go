package kafka

const (
	// TopicExportEvents carries export.ready and export.failed events.
	TopicExportEvents = "diagnosis.export.events"
)

// HeaderEventType holds the event name of each message.
const HeaderEventType = "event_type"
