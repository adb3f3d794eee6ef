package notifier

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notifier pushes order and dispute events to the notification service,
// which fans them out as SMS and email. Delivery is fire-and-forget: a
// failed push is logged and dropped, never surfaced to the caller.
type Notifier struct {
	client *resty.Client
}

func New(baseURL string) *Notifier {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Notifier{client: client}
}

func (n *Notifier) Notify(event Event) {
	if n == nil {
		return
	}
	go func() {
		resp, err := n.client.R().
			SetBody(event).
			Post("/api/v1/notifications")
		if err != nil {
			log.Printf("notification failed: %v\n", err)
			return
		}
		if resp.IsError() {
			log.Printf("notification returned status %d\n", resp.StatusCode())
		}
	}()
}
