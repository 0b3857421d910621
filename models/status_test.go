package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusProcessingPayment, StatusPreparing,
		StatusPaid, StatusDelivered, StatusCancelled,
	} {
		assert.True(t, s.Valid(), "status %s", s)
	}

	assert.False(t, Status("enviado").Valid())
	assert.False(t, Status("").Valid())
	// Case matters: the paid marker is capitalized on the wire.
	assert.False(t, Status("pagado").Valid())
}

func TestDeliveryEligible(t *testing.T) {
	assert.True(t, StatusPaid.DeliveryEligible())
	assert.True(t, StatusPreparing.DeliveryEligible())
	assert.True(t, StatusProcessingPayment.DeliveryEligible())

	assert.False(t, StatusPending.DeliveryEligible())
	assert.False(t, StatusDelivered.DeliveryEligible())
	assert.False(t, StatusCancelled.DeliveryEligible())
}

func TestApprovalDecided(t *testing.T) {
	assert.False(t, ApprovalPending.Decided())
	assert.True(t, ApprovalAccepted.Decided())
	assert.True(t, ApprovalCancelled.Decided())
}

func TestCartLineSubtotal(t *testing.T) {
	line := CartLine{Price: 1500, Quantity: 3}
	assert.Equal(t, 4500.0, line.Subtotal())
}

func TestCartRecipient(t *testing.T) {
	empty := &Cart{}
	assert.Nil(t, empty.Recipient())

	cart := &Cart{Customer: []CartCustomer{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, "a", cart.Recipient().ID)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryBeer))
	assert.True(t, ValidCategory(CategoryFlavoredWater))
	assert.False(t, ValidCategory("licor"))
	assert.False(t, ValidCategory(""))
}
