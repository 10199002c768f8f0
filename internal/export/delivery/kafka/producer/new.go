package producer

import (
	"diagnosis-srv/internal/export"
	pkgKafka "diagnosis-srv/pkg/kafka"
	"diagnosis-srv/pkg/log"
)

// Producer interface for export domain
type Producer interface {
	export.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new export event producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
