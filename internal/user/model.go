package user

import (
	"errors"
	"fmt"
)

// User is the record managed by the console. ID is assigned by the users
// service; an empty ID means the record was never persisted.
type User struct {
	ID       string `json:"id,omitempty" yaml:"id"`
	Name     string `json:"name" yaml:"name" validate:"required"`
	Age      int    `json:"age" yaml:"age" validate:"gte=0"`
	Email    string `json:"email" yaml:"email" validate:"required"`
	Password string `json:"password" yaml:"password" validate:"required"`
	Phone    int64  `json:"phone" yaml:"phone"`
}

// HasID reports whether the record can be sent as an update.
func (u User) HasID() bool {
	return u.ID != ""
}

// Template returns the empty record used to reset edit drafts.
func Template() User {
	return User{
		Name:     "",
		Age:      0,
		Email:    "",
		Password: "",
		Phone:    0,
	}
}

// Field names an editable attribute of User.
type Field string

const (
	FieldName     Field = "name"
	FieldAge      Field = "age"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldPhone    Field = "phone"
)

var ErrUnknownField = errors.New("unknown user field")

// Fields lists the editable fields in form order.
func Fields() []Field {
	return []Field{FieldName, FieldAge, FieldEmail, FieldPassword, FieldPhone}
}

// ParseField resolves a form input name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// IsNumeric reports whether input for the field is coerced to a number.
func (f Field) IsNumeric() bool {
	return f == FieldAge || f == FieldPhone
}

// Label is the human readable field name.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldAge:
		return "Age"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldPhone:
		return "Phone"
	default:
		return string(f)
	}
}
