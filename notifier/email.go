package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
)

// sendMailFunc matches smtp.SendMail so tests can intercept delivery.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier delivers order events to the customer's email over SMTP.
type EmailNotifier struct {
	host     string
	port     string
	username string
	password string
	logger   *zap.Logger
	send     sendMailFunc
}

// NewEmailNotifier builds an SMTP-backed notifier. All four settings are
// required.
func NewEmailNotifier(host, port, username, password string, logger *zap.Logger) (*EmailNotifier, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST not set")
	}
	if port == "" {
		return nil, fmt.Errorf("SMTP_PORT not set")
	}
	if username == "" {
		return nil, fmt.Errorf("SMTP_USER not set")
	}
	if password == "" {
		return nil, fmt.Errorf("SMTP_PASS not set")
	}

	return &EmailNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger,
		send:     smtp.SendMail,
	}, nil
}

func (n *EmailNotifier) OrderCreated(ctx context.Context, cart *models.Cart) {
	customer := cart.Recipient()
	if customer == nil {
		return
	}
	subject := "Pedido recibido"
	body := fmt.Sprintf("Hola %s, recibimos tu pedido por un total de $%.2f. Te avisaremos cuando sea aceptado.",
		customerName(customer), cart.Total)
	n.deliver(customer, subject, body)
}

func (n *EmailNotifier) StatusChanged(ctx context.Context, cartID string, from, to models.Status, cart *models.Cart) {
	customer := cart.Recipient()
	if customer == nil {
		return
	}
	subject := "Actualización de tu pedido"
	body := fmt.Sprintf("Hola %s, tu pedido %s pasó de %s a %s.",
		customerName(customer), cartID, from, to)
	n.deliver(customer, subject, body)
}

func (n *EmailNotifier) Delivered(ctx context.Context, cartID string, cart *models.Cart) {
	customer := cart.Recipient()
	if customer == nil {
		return
	}
	subject := "Pedido entregado"
	body := fmt.Sprintf("Hola %s, tu pedido %s fue entregado. ¡Gracias por tu compra!",
		customerName(customer), cartID)
	n.deliver(customer, subject, body)
}

func (n *EmailNotifier) PaymentProcessed(ctx context.Context, cartID, method string, cart *models.Cart) {
	customer := cart.Recipient()
	if customer == nil {
		return
	}
	subject := "Pago confirmado"
	body := fmt.Sprintf("Hola %s, registramos el pago de tu pedido %s (%s) por $%.2f.",
		customerName(customer), cartID, method, cart.Total)
	n.deliver(customer, subject, body)
}

func (n *EmailNotifier) OrderAccepted(ctx context.Context, customer *models.CartCustomer, cart *models.Cart) {
	if customer == nil {
		return
	}
	subject := "Pedido Aceptado"
	body := fmt.Sprintf("Hola %s, tu pedido con ID %s ha sido aceptado. ¡Gracias por tu compra!",
		customerName(customer), cart.ID.Hex())
	n.deliver(customer, subject, body)
}

func (n *EmailNotifier) OrderCancelled(ctx context.Context, customer *models.CartCustomer, cart *models.Cart) {
	if customer == nil {
		return
	}
	subject := "Pedido Cancelado"
	body := fmt.Sprintf("Hola %s, lamentamos informarte que tu pedido con ID %s ha sido cancelado. Por favor, contacta con nosotros para más información.",
		customerName(customer), cart.ID.Hex())
	n.deliver(customer, subject, body)
}

func (n *EmailNotifier) deliver(customer *models.CartCustomer, subject, body string) {
	if customer.Email == "" {
		n.logger.Warn("email notification skipped, customer has no email",
			zap.String("customer_id", customer.ID))
		return
	}

	addr := fmt.Sprintf("%s:%s", n.host, n.port)
	auth := smtp.PlainAuth("", n.username, n.password, n.host)

	msg := []byte(
		"From: " + n.username + "\r\n" +
			"To: " + customer.Email + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	if err := n.send(addr, auth, n.username, []string{customer.Email}, msg); err != nil {
		n.logger.Warn("smtp send failed",
			zap.String("to", customer.Email),
			zap.String("subject", subject),
			zap.Error(err))
		return
	}

	n.logger.Info("email notification sent",
		zap.String("message_id", "smtp-"+uuid.NewString()),
		zap.String("to", customer.Email),
		zap.String("subject", subject),
		zap.Time("sent_at", time.Now()))
}

func customerName(customer *models.CartCustomer) string {
	if customer.Name == "" {
		return "Cliente"
	}
	return customer.Name
}
