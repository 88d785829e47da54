package events

type Level uint8

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one reported condition. Step attributes the event to a pipeline
// stage, Source to a file or key.
type Event struct {
	Level   Level
	Step    string
	Source  string
	Message string
	Error   error
}

type Handler interface {
	Handle(event Event)
}

// NoopHandler discards every event.
type NoopHandler struct{}

func (NoopHandler) Handle(Event) {}

// Func adapts a plain function to a Handler.
type Func func(Event)

func (f Func) Handle(event Event) { f(event) }
