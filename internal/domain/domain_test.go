package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRequest_Validate(t *testing.T) {
	assert.NoError(t, MoveRequest{Source: "a.txt", Destination: "/docs/b.txt"}.Validate())
	assert.ErrorIs(t, MoveRequest{Source: "a.txt"}.Validate(), ErrEmptyDestination)
	assert.ErrorIs(t, MoveRequest{Source: "a.txt", Destination: "  "}.Validate(), ErrEmptyDestination)
}

func TestResponse_OK(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{199, false},
		{200, true},
		{201, true},
		{299, true},
		{302, false},
		{500, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Response{StatusCode: tt.status}.OK(), tt.status)
	}
}

func TestOutcome(t *testing.T) {
	assert.True(t, Success("ok").IsSuccess())
	assert.True(t, Failure("disk full").Sent())
	assert.False(t, Aborted().Sent())
	assert.False(t, TransportError("ECONNRESET").IsSuccess())

	assert.Equal(t, "success(ok)", Success("ok").String())
	assert.Equal(t, "transport_error(ECONNRESET)", TransportError("ECONNRESET").String())
	assert.Equal(t, "aborted", Aborted().String())
}
