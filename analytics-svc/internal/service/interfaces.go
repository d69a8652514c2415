package service

import (
	"context"

	"fooddash/analytics-svc/internal/domain"
	"fooddash/analytics-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(msg domain.EventMessage) error
	RecordRating(msg domain.EventMessage) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(msg domain.EventMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
