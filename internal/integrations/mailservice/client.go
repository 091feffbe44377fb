package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент почтового сервиса подтверждений (Resend за edge-функцией)
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового сервиса
func NewClient(url, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет письмо с подтверждением записи на экзамен.
// Ошибка доставки оборачивается в ErrDeliveryFailed с человекочитаемой
// причиной - администратор видит её и решает, подтверждать ли без письма.
func (c *Client) SendConfirmation(ctx context.Context, email ConfirmationEmail) error {
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		c.log.Info("SendConfirmation: email sent to=%s, month=%s", email.To, email.MesePreferito)
		return nil
	}

	// Пытаемся вытащить причину из тела ответа
	var errResp ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, errResp.Error)
	}

	return fmt.Errorf("%w: unexpected status code %d: %s", ErrDeliveryFailed, resp.StatusCode, string(raw))
}
