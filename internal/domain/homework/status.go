// internal/domain/homework/status.go
package homework

import "fmt"

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the canned sentence for a status.
// Only the three statuses above are part of the upstream contract; anything else is an error.
func Verdict(s Status) (string, error) {
	v, ok := verdicts[s]
	if !ok {
		return "", NewError(KindUnknownStatus, fmt.Sprintf("неизвестный статус работы %q", string(s)), nil)
	}
	return v, nil
}

// Record is one parsed entry of the "homeworks" list.
type Record struct {
	Name   string
	Status Status
}

// FormatStatusChange builds the chat message sent when a homework changes status.
func FormatStatusChange(name, verdict string) string {
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict)
}
