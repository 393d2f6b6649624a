package clients

import (
	"context"

	"github.com/vaidashi/fastfood-api/internal/service"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

type productionBody struct {
	OrderID          string `json:"orderId"`
	Protocol         int64  `json:"protocol"`
	OrderDescription string `json:"orderDescription"`
}

// ProductionClient schedules orders with the kitchen service
type ProductionClient struct {
	http   *jsonClient
	logger logger.Logger
}

func NewProductionClient(baseURL string, opts Options, logger logger.Logger) *ProductionClient {
	return &ProductionClient{
		http:   newJSONClient("production", baseURL, opts, logger),
		logger: logger,
	}
}

// RequestProduction queues the order for preparation
func (c *ProductionClient) RequestProduction(ctx context.Context, req service.ProductionRequest) error {
	err := c.http.post(ctx, "/production/", productionBody{
		OrderID:          req.OrderID,
		Protocol:         req.Protocol,
		OrderDescription: req.Description,
	}, nil)

	if err != nil {
		c.logger.Error("Failed to request production after retries", "error", err, "orderID", req.OrderID)
		return err
	}

	return nil
}
