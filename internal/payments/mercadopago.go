package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"

	"github.com/sharpfade/barbershop-api/internal/config"
	"github.com/sharpfade/barbershop-api/internal/models"
)

// Provider creates MercadoPago checkout preferences for retail orders.
// Without an access token it runs disabled: orders are still created,
// just without a payment link.
type Provider struct {
	client preference.Client
}

func NewProvider(cfg *config.Config) *Provider {
	if cfg.MercadoPagoAccessToken == "" {
		zap.L().Warn("mercadopago access token not set, checkout links disabled")
		return &Provider{}
	}

	mpCfg, err := mpconfig.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		zap.L().Error("mercadopago config failed, checkout links disabled", zap.Error(err))
		return &Provider{}
	}

	return &Provider{client: preference.NewClient(mpCfg)}
}

// CreatePreference registers the order with MercadoPago and returns the
// preference ID and the checkout URL the client is redirected to.
func (p *Provider) CreatePreference(ctx context.Context, order *models.Order) (string, string, error) {
	if p.client == nil {
		return "", "", nil
	}

	items := make([]preference.ItemRequest, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, preference.ItemRequest{
			ID:        fmt.Sprintf("%d", it.ProductID),
			Title:     it.Product.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	resp, err := p.client.Create(ctx, preference.Request{
		Items:             items,
		ExternalReference: order.Number,
	})
	if err != nil {
		return "", "", fmt.Errorf("create preference for order %s: %w", order.Number, err)
	}

	return resp.ID, resp.InitPoint, nil
}
