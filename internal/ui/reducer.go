package ui

import "github.com/vasiliy-maslov/user-admin/internal/user"

type ActionType int

const (
	ActionChangeValue ActionType = iota
	ActionClear
)

// Action is a draft mutation. Text carries the value of text fields, Number
// the already coerced value of numeric ones.
type Action struct {
	Type   ActionType
	Field  user.Field
	Text   string
	Number int64
}

// Reduce returns the draft that results from applying action to state.
// ChangeValue touches only the named field; Clear yields the empty template.
func Reduce(state user.User, action Action) user.User {
	switch action.Type {
	case ActionChangeValue:
		next := state
		switch action.Field {
		case user.FieldName:
			next.Name = action.Text
		case user.FieldAge:
			next.Age = int(action.Number)
		case user.FieldEmail:
			next.Email = action.Text
		case user.FieldPassword:
			next.Password = action.Text
		case user.FieldPhone:
			next.Phone = action.Number
		}
		return next
	case ActionClear:
		return user.Template()
	default:
		return state
	}
}
