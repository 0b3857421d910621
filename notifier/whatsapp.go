package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
)

// WhatsAppNotifier delivers accept/cancel decisions to the customer's
// phone through the Twilio WhatsApp API. Lifecycle events that the shop
// only emails (created, paid, delivered, status changes) are ignored.
type WhatsAppNotifier struct {
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	logger     *zap.Logger
	baseURL    string
}

// NewWhatsAppNotifier builds a Twilio-backed WhatsApp notifier.
func NewWhatsAppNotifier(accountSID, authToken, fromNumber string, logger *zap.Logger) (*WhatsAppNotifier, error) {
	if accountSID == "" {
		return nil, fmt.Errorf("TWILIO_ACCOUNT_SID not set")
	}
	if authToken == "" {
		return nil, fmt.Errorf("TWILIO_AUTH_TOKEN not set")
	}
	if fromNumber == "" {
		return nil, fmt.Errorf("TWILIO_WHATSAPP_FROM not set")
	}

	return &WhatsAppNotifier{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		baseURL:    "https://api.twilio.com",
	}, nil
}

func (n *WhatsAppNotifier) OrderCreated(context.Context, *models.Cart) {}

func (n *WhatsAppNotifier) StatusChanged(context.Context, string, models.Status, models.Status, *models.Cart) {
}

func (n *WhatsAppNotifier) Delivered(context.Context, string, *models.Cart) {}

func (n *WhatsAppNotifier) PaymentProcessed(context.Context, string, string, *models.Cart) {}

func (n *WhatsAppNotifier) OrderAccepted(ctx context.Context, customer *models.CartCustomer, cart *models.Cart) {
	if customer == nil {
		return
	}
	msg := fmt.Sprintf("Hola %s, tu pedido ha sido aceptado. ¡Gracias por tu compra!", customerName(customer))
	n.deliver(ctx, customer, msg)
}

func (n *WhatsAppNotifier) OrderCancelled(ctx context.Context, customer *models.CartCustomer, cart *models.Cart) {
	if customer == nil {
		return
	}
	msg := fmt.Sprintf("Hola %s, lamentamos informarte que tu pedido ha sido cancelado.", customerName(customer))
	n.deliver(ctx, customer, msg)
}

func (n *WhatsAppNotifier) deliver(ctx context.Context, customer *models.CartCustomer, msg string) {
	phone := NormalizePhone(customer.Phone)
	if phone == "" {
		n.logger.Warn("whatsapp notification skipped, customer has no phone",
			zap.String("customer_id", customer.ID))
		return
	}

	apiURL := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, n.accountSID)

	formData := url.Values{}
	formData.Set("To", "whatsapp:+"+phone)
	formData.Set("From", "whatsapp:"+n.fromNumber)
	formData.Set("Body", msg)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL,
		strings.NewReader(formData.Encode()))
	if err != nil {
		n.logger.Warn("whatsapp request build failed", zap.Error(err))
		return
	}

	req.SetBasicAuth(n.accountSID, n.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Warn("whatsapp request failed", zap.String("to", phone), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		n.logger.Warn("whatsapp send rejected",
			zap.String("to", phone),
			zap.String("status", resp.Status),
			zap.ByteString("response", respBody))
		return
	}

	n.logger.Info("whatsapp notification sent", zap.String("to", phone))
}

// NormalizePhone strips non-digits and converts Argentine local numbers
// to international WhatsApp format (3812032666 -> 5493812032666).
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	if phone == "" {
		return ""
	}

	if len(phone) == 10 && !strings.HasPrefix(phone, "54") {
		phone = "549" + phone
	}
	return phone
}
