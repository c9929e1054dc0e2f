package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Source string `validate:"required,oneof=kudago yandex_afisha"`
	Limit  int    `validate:"omitempty,min=1,max=1000"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Source: "kudago"}))
	assert.NoError(t, v.Validate(&sample{Source: "yandex_afisha", Limit: 50}))
	assert.Error(t, v.Validate(&sample{}))
	assert.Error(t, v.Validate(&sample{Source: "eventbrite"}))
	assert.Error(t, v.Validate(&sample{Source: "kudago", Limit: 5000}))
}
