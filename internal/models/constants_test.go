package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentTypeName(t *testing.T) {
	tests := []struct {
		code int64
		want string
	}{
		{1, "Credit Card"},
		{2, "Cash"},
		{3, "No Charge"},
		{4, "Dispute"},
		{5, "Unknown"},
		{0, "Unknown"},
		{99, "Unknown"},
		{-1, "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PaymentTypeName(tt.code), "code %d", tt.code)
	}
}
