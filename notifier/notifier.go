package notifier

import (
	"context"

	"github.com/CardozoMartin/distri-back/models"
)

// Notifier receives order lifecycle events. Every call is best-effort:
// implementations log failures and never propagate them, so the order
// engine never blocks or rolls back on notification problems.
type Notifier interface {
	OrderCreated(ctx context.Context, cart *models.Cart)
	StatusChanged(ctx context.Context, cartID string, from, to models.Status, cart *models.Cart)
	Delivered(ctx context.Context, cartID string, cart *models.Cart)
	PaymentProcessed(ctx context.Context, cartID, method string, cart *models.Cart)
	OrderAccepted(ctx context.Context, customer *models.CartCustomer, cart *models.Cart)
	OrderCancelled(ctx context.Context, customer *models.CartCustomer, cart *models.Cart)
}

// Multi fans an event out to several notifiers (email plus WhatsApp).
type Multi []Notifier

func (m Multi) OrderCreated(ctx context.Context, cart *models.Cart) {
	for _, n := range m {
		n.OrderCreated(ctx, cart)
	}
}

func (m Multi) StatusChanged(ctx context.Context, cartID string, from, to models.Status, cart *models.Cart) {
	for _, n := range m {
		n.StatusChanged(ctx, cartID, from, to, cart)
	}
}

func (m Multi) Delivered(ctx context.Context, cartID string, cart *models.Cart) {
	for _, n := range m {
		n.Delivered(ctx, cartID, cart)
	}
}

func (m Multi) PaymentProcessed(ctx context.Context, cartID, method string, cart *models.Cart) {
	for _, n := range m {
		n.PaymentProcessed(ctx, cartID, method, cart)
	}
}

func (m Multi) OrderAccepted(ctx context.Context, customer *models.CartCustomer, cart *models.Cart) {
	for _, n := range m {
		n.OrderAccepted(ctx, customer, cart)
	}
}

func (m Multi) OrderCancelled(ctx context.Context, customer *models.CartCustomer, cart *models.Cart) {
	for _, n := range m {
		n.OrderCancelled(ctx, customer, cart)
	}
}

// Nop discards every event. Used when no channel is configured.
type Nop struct{}

func (Nop) OrderCreated(context.Context, *models.Cart)                                    {}
func (Nop) StatusChanged(context.Context, string, models.Status, models.Status, *models.Cart) {}
func (Nop) Delivered(context.Context, string, *models.Cart)                               {}
func (Nop) PaymentProcessed(context.Context, string, string, *models.Cart)                {}
func (Nop) OrderAccepted(context.Context, *models.CartCustomer, *models.Cart)             {}
func (Nop) OrderCancelled(context.Context, *models.CartCustomer, *models.Cart)            {}
