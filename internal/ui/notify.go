package ui

// Level classifies a user-visible notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is an alert shown to the person using the console.
type Notice struct {
	Level   Level
	Message string
}

// Notifier delivers notices to whatever front-end is driving the controllers.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

var discardNotifier = NotifierFunc(func(Notice) {})

const (
	msgMissingID     = "User ID is required to update the user."
	msgUpdateSuccess = "User updated successfully!"
	msgUpdateFailure = "Failed to update user. Please try again."
)
