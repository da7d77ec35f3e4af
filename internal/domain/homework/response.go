// internal/domain/homework/response.go
package homework

import "fmt"

const (
	fieldHomeworks    = "homeworks"
	fieldCurrentDate  = "current_date"
	fieldHomeworkName = "homework_name"
	fieldStatus       = "status"
)

// Response is a structurally valid API payload.
type Response struct {
	Homeworks   []any
	CurrentDate any
}

// ValidateResponse checks the decoded payload shape before any status logic runs.
// A malformed payload is rejected as a whole.
func ValidateResponse(payload any) (*Response, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, NewError(KindDataFormat, fmt.Sprintf("ожидался объект, получено %T", payload), nil)
	}

	rawHomeworks, ok := m[fieldHomeworks]
	if !ok || rawHomeworks == nil {
		return nil, NewError(KindDataFormat, "нет поля homeworks", nil)
	}
	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return nil, NewError(KindDataFormat, fmt.Sprintf("поле homeworks должно быть списком, получено %T", rawHomeworks), nil)
	}

	currentDate, ok := m[fieldCurrentDate]
	if !ok || currentDate == nil {
		return nil, NewError(KindDataFormat, "нет поля current_date", nil)
	}

	return &Response{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

// ParseHomework extracts name and status from one "homeworks" entry.
// The status value itself is not checked here; Tracker.Observe does that.
func ParseHomework(entry any) (Record, error) {
	m, ok := entry.(map[string]any)
	if !ok {
		return Record{}, NewError(KindDataFormat, fmt.Sprintf("запись о работе должна быть объектом, получено %T", entry), nil)
	}

	name, ok := m[fieldHomeworkName].(string)
	if !ok {
		return Record{}, NewError(KindDataFormat, "нет поля homework_name", nil)
	}
	status, ok := m[fieldStatus].(string)
	if !ok {
		return Record{}, NewError(KindDataFormat, fmt.Sprintf("нет поля status у работы %q", name), nil)
	}

	return Record{Name: name, Status: Status(status)}, nil
}
