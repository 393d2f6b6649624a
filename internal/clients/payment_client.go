package clients

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vaidashi/fastfood-api/internal/service"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

type paymentBody struct {
	OrderID  string          `json:"orderId"`
	Broker   string          `json:"broker"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// PaymentClient asks the payment service to charge orders
type PaymentClient struct {
	http   *jsonClient
	logger logger.Logger
}

// NewPaymentClient creates a client for the payment service at baseURL
func NewPaymentClient(baseURL string, opts Options, logger logger.Logger) *PaymentClient {
	return &PaymentClient{
		http:   newJSONClient("payment", baseURL, opts, logger),
		logger: logger,
	}
}

// RequestPayment registers the order with the payment service
func (c *PaymentClient) RequestPayment(ctx context.Context, req service.PaymentRequest) error {
	err := c.http.post(ctx, "/payment/", paymentBody{
		OrderID:  req.OrderID,
		Broker:   req.Broker,
		Quantity: req.Quantity,
		Amount:   req.Amount,
	}, nil)

	if err != nil {
		c.logger.Error("Failed to request payment after retries", "error", err, "orderID", req.OrderID)
		return err
	}

	return nil
}
