package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPriority(t *testing.T) {
	for _, p := range []TicketPriority{"", TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent} {
		assert.True(t, ValidPriority(p), string(p))
	}
	for _, p := range []TicketPriority{"LOW", "critical", "whenever"} {
		assert.False(t, ValidPriority(p), string(p))
	}
}

func TestValidRequestType(t *testing.T) {
	assert.True(t, ValidRequestType(RequestTypeTicket))
	assert.True(t, ValidRequestType(RequestTypeServiceRequest))
	assert.False(t, ValidRequestType("Incident"))
	assert.False(t, ValidRequestType(""))
}
