package errdefs

type ErrorType int

const (
	ErrTypeNotLinux ErrorType = iota
	ErrTypeEngineNotFound
	ErrTypeEngineLaunchFailed
	ErrTypeNoCommandFile
	ErrTypeNoWaylandDisplay
	ErrTypeGeneric
)

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

var (
	ErrEngineNotFound   = NewCustomError(ErrTypeEngineNotFound, "linux-wallpaperengine binary not found")
	ErrNoCommandFile    = NewCustomError(ErrTypeNoCommandFile, "no saved wallpaper command found")
	ErrNoWaylandDisplay = NewCustomError(ErrTypeNoWaylandDisplay, "no wayland display available")
)
