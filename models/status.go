package models

// Status is the fulfillment status of a cart. The string values are the
// ones the storefront already speaks, so they stay on the wire as-is.
type Status string

const (
	StatusPending           Status = "pendiente"
	StatusProcessingPayment Status = "procesando_pago"
	StatusPreparing         Status = "preparando"
	StatusPaid              Status = "Pagado"
	StatusDelivered         Status = "entregado"
	StatusCancelled         Status = "cancelado"
)

// Valid reports whether s is a known fulfillment status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessingPayment, StatusPreparing,
		StatusPaid, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// DeliveryEligible reports whether a cart in this status may be marked
// delivered.
func (s Status) DeliveryEligible() bool {
	switch s {
	case StatusProcessingPayment, StatusPaid, StatusPreparing:
		return true
	}
	return false
}

// ApprovalStatus is the admin accept/reject decision on an order. It is
// orthogonal to the fulfillment Status and terminal once it leaves pending.
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "pending"
	ApprovalAccepted  ApprovalStatus = "accepted"
	ApprovalCancelled ApprovalStatus = "cancelled"
)

// Decided reports whether the approval decision has already been made.
func (a ApprovalStatus) Decided() bool {
	return a == ApprovalAccepted || a == ApprovalCancelled
}
