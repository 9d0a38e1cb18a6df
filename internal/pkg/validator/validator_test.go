package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Email    string
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(credentials{Username: "root", Password: "pw"}))

	errs := Validate(credentials{Username: "root"})
	assert.Equal(t, map[string]string{"Password": "required"}, errs)

	errs = Validate(credentials{})
	assert.Len(t, errs, 2)
}
