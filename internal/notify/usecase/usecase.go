package usecase

import (
	"context"

	"worship-backend/internal/notify/domain"
)

// AdminSendInput is a direct broadcast: explicit targeting plus message fields.
type AdminSendInput struct {
	Target   domain.Target
	Category domain.Category
	Title    string
	Body     string
	Link     string
}

// NotifyUsecase runs the resolve-collect-dispatch pipeline for inbound domain
// events and administrative broadcasts.
type NotifyUsecase interface {
	EmitEvent(ctx context.Context, event domain.Event) (*domain.Summary, error)
	AdminSend(ctx context.Context, input AdminSendInput) (*domain.Summary, error)
}
