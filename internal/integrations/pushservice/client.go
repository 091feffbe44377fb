package pushservice

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
)

// Client клиент push-уведомлений администратора (канал ntfy)
type Client struct {
	url        string
	channel    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента push-уведомлений
func NewClient(url, channel string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:     strings.TrimRight(url, "/"),
		channel: channel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyNewBooking отправляет уведомление о новой заявке.
// Fire-and-forget: успех заявки не зависит от доставки, ошибки только логируются.
func (c *Client) NotifyNewBooking(ctx context.Context, b *domain.Booking) {
	var body strings.Builder
	body.WriteString(b.FullName)
	body.WriteString(fmt.Sprintf("\nPatente: %s", b.LicenseType))
	body.WriteString(fmt.Sprintf("\nEmail: %s", b.Email))
	body.WriteString(fmt.Sprintf("\nMese: %s", b.PreferredMonth))
	if b.PreferredPeriod != nil {
		body.WriteString(fmt.Sprintf(" (%s)", *b.PreferredPeriod))
	}
	if b.Note != nil && *b.Note != "" {
		body.WriteString(fmt.Sprintf("\nNote: %s", *b.Note))
	}

	headers := map[string]string{
		"Title":    "Nuova Prenotazione Esame",
		"Priority": "high",
		"Tags":     "car,new",
	}

	if err := c.publish(ctx, headers, body.String()); err != nil {
		c.log.Error("NotifyNewBooking: failed to send notification for booking id=%d: %v", b.ID, err)
		return
	}
	c.log.Info("NotifyNewBooking: notification sent for booking id=%d", b.ID)
}

// NotifyConfirmed отправляет уведомление о подтверждённой заявке.
// Также fire-and-forget, никогда не входит в двухфазное подтверждение.
func (c *Client) NotifyConfirmed(ctx context.Context, b *domain.Booking) {
	headers := map[string]string{
		"Title":    "Prenotazione Confermata",
		"Priority": "default",
		"Tags":     "white_check_mark",
	}

	body := fmt.Sprintf("%s - %s", b.FullName, b.PreferredMonth)

	if err := c.publish(ctx, headers, body); err != nil {
		c.log.Error("NotifyConfirmed: failed to send notification for booking id=%d: %v", b.ID, err)
		return
	}
	c.log.Info("NotifyConfirmed: notification sent for booking id=%d", b.ID)
}

func (c *Client) publish(ctx context.Context, headers map[string]string, body string) error {
	url := fmt.Sprintf("%s/%s", c.url, c.channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return nil
}
