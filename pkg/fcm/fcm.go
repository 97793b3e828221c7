package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Notification contains the payload for one multicast push.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string // Custom data payload for client-side routing
}

// Result holds the aggregate outcome of one multicast call. Individual
// token failures are not retained.
type Result struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// Sender is the push gateway contract: one multicast call per dispatch,
// token list and payload in, aggregate counts out.
type Sender interface {
	SendMulticast(ctx context.Context, tokens []string, notification Notification) (Result, error)
}

// Client wraps Firebase Cloud Messaging functionality
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// SendMulticast sends a push notification to multiple device tokens in a
// single multicast request and returns the gateway's aggregate counts.
func (c *Client) SendMulticast(ctx context.Context, tokens []string, notification Notification) (Result, error) {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: notification.Title,
				Body:  notification.Body,
				Icon:  "/icon-192.svg",
			},
		},
	}

	response, err := c.messagingClient.SendEachForMulticast(ctx, message)
	if err != nil {
		return Result{}, fmt.Errorf("failed to send FCM multicast message: %w", err)
	}

	log.Printf("[FCM] Multicast sent: %d success, %d failures", response.SuccessCount, response.FailureCount)

	return Result{
		Success: response.SuccessCount,
		Failure: response.FailureCount,
	}, nil
}
