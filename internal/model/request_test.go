package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestID(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "req-001"},
		{7, "req-007"},
		{10, "req-010"},
		{99, "req-099"},
		{100, "req-100"},
		{1234, "req-1234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewRequestID(tt.n))
	}
}

func TestValidRequestType(t *testing.T) {
	assert.True(t, ValidRequestType(RequestTypePurchase))
	assert.True(t, ValidRequestType(RequestTypeLeave))
	assert.True(t, ValidRequestType(RequestTypeOvertime))
	assert.False(t, ValidRequestType("invalid"))
	assert.False(t, ValidRequestType(""))
	assert.False(t, ValidRequestType("Purchase"))
}
