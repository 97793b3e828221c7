package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"worship-backend/internal/apperr"
	"worship-backend/internal/notify/domain"
	"worship-backend/pkg/fcm"
)

// DispatchOutcome is the result of one dispatch: a correlation id carried in
// the data payload plus the gateway's aggregate counts.
type DispatchOutcome struct {
	ID      string
	Success int
	Failure int
}

// Dispatcher sends one multicast push per call. Failed tokens are not
// inspected or retried; stale tokens self-correct via re-registration.
type Dispatcher struct {
	sender  fcm.Sender
	baseURL string
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(sender fcm.Sender, baseURL string) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		baseURL: baseURL,
	}
}

// Dispatch sends title/body to every token in one multicast call. An empty
// token set returns zero counts without contacting the gateway, since an
// empty multicast is an invalid request.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, title, body, link string, category domain.Category) (DispatchOutcome, error) {
	if len(tokens) == 0 {
		return DispatchOutcome{}, nil
	}

	dispatchID := uuid.New().String()

	// The data payload mirrors the visible notification so clients that only
	// surface the data channel can still route and display it.
	notification := fcm.Notification{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"title":       title,
			"body":        body,
			"link":        d.resolveLink(link),
			"category":    string(category),
			"dispatch_id": dispatchID,
		},
	}

	result, err := d.sender.SendMulticast(ctx, tokens, notification)
	if err != nil {
		return DispatchOutcome{}, fmt.Errorf("%w: %v", apperr.ErrGateway, err)
	}

	log.Printf("[Dispatch] %s: category=%s tokens=%d success=%d failure=%d", dispatchID, category, len(tokens), result.Success, result.Failure)

	return DispatchOutcome{
		ID:      dispatchID,
		Success: result.Success,
		Failure: result.Failure,
	}, nil
}

func (d *Dispatcher) resolveLink(link string) string {
	if link != "" {
		return link
	}
	if d.baseURL != "" {
		return d.baseURL
	}
	return "/"
}
