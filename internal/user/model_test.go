package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

func TestParseField(t *testing.T) {
	for _, f := range user.Fields() {
		parsed, err := user.ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := user.ParseField("id")
	require.ErrorIs(t, err, user.ErrUnknownField)
}

func TestField_IsNumeric(t *testing.T) {
	assert.True(t, user.FieldAge.IsNumeric())
	assert.True(t, user.FieldPhone.IsNumeric())
	assert.False(t, user.FieldName.IsNumeric())
	assert.False(t, user.FieldEmail.IsNumeric())
	assert.False(t, user.FieldPassword.IsNumeric())
}

func TestTemplate(t *testing.T) {
	tpl := user.Template()
	assert.Equal(t, user.User{}, tpl)
	assert.False(t, tpl.HasID())
}

func TestValidationMessages(t *testing.T) {
	err := user.Validate(user.User{Age: -1})
	require.Error(t, err)

	messages := user.ValidationMessages(err)
	assert.Contains(t, messages, "Field 'Name' is required")
	assert.Contains(t, messages, "Field 'Email' is required")
	assert.Contains(t, messages, "Field 'Password' is required")
	assert.Contains(t, messages, "Field 'Age' must be greater than or equal to 0")

	require.NoError(t, user.Validate(user.User{Name: "Ana", Email: "ana@example.com", Password: "x"}))
	assert.Nil(t, user.ValidationMessages(nil))
}
