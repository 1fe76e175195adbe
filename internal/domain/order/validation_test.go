// internal/domain/order/validation_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() CustomerInfo {
	return CustomerInfo{
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Address:    "12 Market Street, Sector 4",
		City:       "Pune",
		PostalCode: "411001",
	}
}

func TestValidateCustomerInfoValid(t *testing.T) {
	assert.NoError(t, ValidateCustomerInfo(validCustomer()))
}

func TestValidateCustomerInfoFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CustomerInfo)
		field  string
	}{
		{name: "short name", mutate: func(c *CustomerInfo) { c.Name = "A" }, field: "name"},
		{name: "name with digits", mutate: func(c *CustomerInfo) { c.Name = "Asha123" }, field: "name"},
		{name: "invalid email", mutate: func(c *CustomerInfo) { c.Email = "not-an-email" }, field: "email"},
		{name: "short phone", mutate: func(c *CustomerInfo) { c.Phone = "12345" }, field: "phone"},
		{name: "phone with letters", mutate: func(c *CustomerInfo) { c.Phone = "98765abcde" }, field: "phone"},
		{name: "short address", mutate: func(c *CustomerInfo) { c.Address = "short" }, field: "address"},
		{name: "city with digits", mutate: func(c *CustomerInfo) { c.City = "Pune42" }, field: "city"},
		{name: "short postal code", mutate: func(c *CustomerInfo) { c.PostalCode = "411" }, field: "postal_code"},
		{name: "postal code with letters", mutate: func(c *CustomerInfo) { c.PostalCode = "41100a" }, field: "postal_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validCustomer()
			tt.mutate(&info)

			err := ValidateCustomerInfo(info)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidateCustomerInfoCollectsAllFailures(t *testing.T) {
	err := ValidateCustomerInfo(CustomerInfo{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"name", "email", "phone", "address", "city", "postal_code"} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusProcessing, OrderStatusCompleted, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
