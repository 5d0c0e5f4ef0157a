package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,displayname"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signup{Email: "nope", Password: "short", Name: "A"})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"email":    "must be a valid email",
		"password": "must be at least 8 characters long",
		"name":     "must be between 2 and 100 characters long",
	}, ToDetails(err))
}

func TestToDetails_Required(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signup{})
	require.Error(t, err)
	d := ToDetails(err)
	assert.Equal(t, "is required", d["email"])
	assert.Equal(t, "is required", d["password"])
	assert.Equal(t, "is required", d["name"])
}

func TestToDetails_Valid(t *testing.T) {
	Init()
	assert.NoError(t, binding.Validator.ValidateStruct(&signup{Email: "a@b.com", Password: "Password123!", Name: "Asha"}))
	assert.Nil(t, ToDetails(nil))
}

func TestToDetails_BadJSON(t *testing.T) {
	var v map[string]any
	err := json.Unmarshal([]byte(`{"email":`), &v)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("x")))
}
