package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_IsPending(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusPending}).IsPending())
	assert.False(t, (&Order{Status: OrderStatusApproved}).IsPending())
	assert.False(t, (&Order{Status: OrderStatusRejected}).IsPending())
	assert.False(t, (&Order{Status: "shipped"}).IsPending())
}
