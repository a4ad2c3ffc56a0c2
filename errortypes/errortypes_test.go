package errortypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCode(t *testing.T) {
	testCases := []struct {
		description string
		err         error
		expected    int
	}{
		{"transport", &Transport{Message: "x"}, TransportErrorCode},
		{"upstream http", &UpstreamHTTP{Message: "x"}, UpstreamHTTPErrorCode},
		{"validation", &Validation{Message: "x"}, ValidationErrorCode},
		{"serialization", &Serialization{Message: "x"}, SerializationErrorCode},
		{"unexpected", &Unexpected{Message: "x"}, UnexpectedErrorCode},
		{"plain error", errors.New("x"), UnknownErrorCode},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, ReadCode(tc.err))
		})
	}
}

func TestAggregateErrors(t *testing.T) {
	assert.Empty(t, NewAggregateErrors("nothing", nil).Error())

	one := NewAggregateErrors("config", []error{errors.New("port missing")})
	assert.Equal(t, "config (1 error):\n  1: port missing\n", one.Error())

	two := NewAggregateErrors("config", []error{errors.New("a"), errors.New("b")})
	assert.Equal(t, "config (2 errors):\n  1: a\n  2: b\n", two.Error())
}
