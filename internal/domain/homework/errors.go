// internal/domain/homework/errors.go
package homework

import "errors"

// ErrorKind classifies failures so the poll loop can handle them at a single site.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfig
	KindConnectivity
	KindDataFormat
	KindUnknownStatus
	KindSend
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindConnectivity:
		return "connectivity"
	case KindDataFormat:
		return "data_format"
	case KindUnknownStatus:
		return "unknown_status"
	case KindSend:
		return "send"
	default:
		return "unknown"
	}
}

// description is the user-facing prefix used in chat error reports.
func (k ErrorKind) description() string {
	switch k {
	case KindConfig:
		return "Некорректные переменные среды"
	case KindConnectivity:
		return "Ошибка подключения"
	case KindDataFormat:
		return "Некорректный формат данных"
	case KindUnknownStatus:
		return "Некорректный статус работы"
	case KindSend:
		return "Ошибка отправки сообщения"
	default:
		return "Непредвиденная ошибка"
	}
}

// Error is a failure tagged with its ErrorKind.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// NewError builds a tagged error. msg and err are both optional.
func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	out := e.Kind.description()
	if e.Msg != "" {
		out += ": " + e.Msg
	}
	if e.Err != nil {
		out += ": " + e.Err.Error()
	}
	return out
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the ErrorKind from err, looking through wrapping.
func KindOf(err error) ErrorKind {
	var hwErr *Error
	if errors.As(err, &hwErr) {
		return hwErr.Kind
	}
	return KindUnknown
}
