package usecase

import (
	"context"
	"fmt"

	"worship-backend/internal/apperr"
	"worship-backend/internal/notify/domain"
)

// notifyUsecase implements NotifyUsecase interface
type notifyUsecase struct {
	resolver   *Resolver
	collector  *Collector
	dispatcher *Dispatcher
}

// NewNotifyUsecase creates a new instance of notifyUsecase
func NewNotifyUsecase(resolver *Resolver, collector *Collector, dispatcher *Dispatcher) NotifyUsecase {
	return &notifyUsecase{
		resolver:   resolver,
		collector:  collector,
		dispatcher: dispatcher,
	}
}

// EmitEvent resolves the event's notification plan and fans it out.
func (u *notifyUsecase) EmitEvent(ctx context.Context, event domain.Event) (*domain.Summary, error) {
	plan, err := PlanForEvent(event)
	if err != nil {
		return nil, err
	}
	return u.send(ctx, plan.Target, plan.Category, plan.Title, plan.Body, event.Link)
}

// AdminSend dispatches a manually composed message to an explicit target.
func (u *notifyUsecase) AdminSend(ctx context.Context, input AdminSendInput) (*domain.Summary, error) {
	if input.Title == "" || input.Body == "" {
		return nil, fmt.Errorf("%w: title and body are required", apperr.ErrValidation)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, input.Category)
	}
	return u.send(ctx, input.Target, input.Category, input.Title, input.Body, input.Link)
}

func (u *notifyUsecase) send(ctx context.Context, target domain.Target, category domain.Category, title, body, link string) (*domain.Summary, error) {
	userIDs, err := u.resolver.Resolve(target)
	if err != nil {
		return nil, err
	}

	tokens, err := u.collector.CollectTokens(userIDs, category)
	if err != nil {
		return nil, err
	}

	outcome, err := u.dispatcher.Dispatch(ctx, tokens, title, body, link, category)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		DispatchID: outcome.ID,
		Category:   category,
		Recipients: len(userIDs),
		Tokens:     len(tokens),
		Success:    outcome.Success,
		Failure:    outcome.Failure,
	}, nil
}
