package utils

import (
	"elearn/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyEvent posts an event payload to the configured webhook endpoint.
// Delivery is best-effort; failures are logged and never block the caller.
func NotifyEvent(event string, payload interface{}) {
	if config.AppConfig.EventWebhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":  event,
			"data":   payload,
			"sentAt": time.Now().UTC(),
		}).
		Post(config.AppConfig.EventWebhookURL)

	if err != nil {
		log.Printf("Error delivering %s webhook: %v", event, err)
		return
	}

	if resp.StatusCode() >= 400 {
		log.Printf("Webhook endpoint rejected %s event: %d", event, resp.StatusCode())
	}
}
