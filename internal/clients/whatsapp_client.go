package clients

import (
	"context"

	"github.com/vaidashi/fastfood-api/pkg/logger"
)

type sendTextBody struct {
	Number     string `json:"number"`
	Text       string `json:"text"`
	TimeTyping int    `json:"time_typing"`
}

// WhatsAppClient sends text messages through the WhatsApp gateway
type WhatsAppClient struct {
	http *jsonClient
}

// NewWhatsAppClient creates a gateway client authenticated with token
func NewWhatsAppClient(baseURL, token string, opts Options, logger logger.Logger) *WhatsAppClient {
	if opts.Headers == nil {
		opts.Headers = map[string]string{}
	}
	if token != "" {
		opts.Headers["Authorization"] = "Bearer " + token
	}

	return &WhatsAppClient{http: newJSONClient("whatsapp", baseURL, opts, logger)}
}

// SendText delivers text to number
func (c *WhatsAppClient) SendText(ctx context.Context, number, text string) error {
	return c.http.post(ctx, "/sendText", sendTextBody{
		Number:     number,
		Text:       text,
		TimeTyping: 1,
	}, nil)
}
