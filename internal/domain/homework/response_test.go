package homework

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestValidateResponseAcceptsValidPayloads(t *testing.T) {
	cases := map[string]string{
		"empty list": `{"homeworks": [], "current_date": 1000}`,
		"one entry":  `{"homeworks": [{"homework_name": "A", "status": "reviewing"}], "current_date": 1000}`,
		"extra keys": `{"homeworks": [], "current_date": "2024-01-01", "other": true}`,
	}

	for name, raw := range cases {
		payload := decode(t, raw)
		resp, err := ValidateResponse(payload)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		// Validating the same payload again must not fail either.
		if _, err := ValidateResponse(payload); err != nil {
			t.Fatalf("%s: revalidation failed: %v", name, err)
		}
		if resp.CurrentDate == nil {
			t.Fatalf("%s: expected current_date to be kept", name)
		}
	}
}

func TestValidateResponseRejectsMalformedPayloads(t *testing.T) {
	cases := map[string]string{
		"list payload":         `[{"homeworks": []}]`,
		"scalar payload":       `42`,
		"null payload":         `null`,
		"missing homeworks":    `{"current_date": 1000}`,
		"null homeworks":       `{"homeworks": null, "current_date": 1000}`,
		"homeworks not a list": `{"homeworks": {"a": 1}, "current_date": 1000}`,
		"missing current_date": `{"homeworks": []}`,
		"null current_date":    `{"homeworks": [], "current_date": null}`,
		"no date with entries": `{"homeworks": [{"homework_name": "A", "status": "approved"}]}`,
	}

	for name, raw := range cases {
		_, err := ValidateResponse(decode(t, raw))
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if KindOf(err) != KindDataFormat {
			t.Fatalf("%s: expected data format kind, got %s", name, KindOf(err))
		}
	}
}

func TestParseHomework(t *testing.T) {
	rec, err := ParseHomework(decode(t, `{"homework_name": "A", "status": "approved", "id": 5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "A" || rec.Status != StatusApproved {
		t.Fatalf("unexpected record: %+v", rec)
	}

	// Unknown statuses pass parsing; the tracker rejects them.
	rec, err = ParseHomework(decode(t, `{"homework_name": "B", "status": "unknown_status"}`))
	if err != nil || rec.Status != Status("unknown_status") {
		t.Fatalf("expected raw status to be kept, got %+v, %v", rec, err)
	}

	bad := []string{
		`{"status": "approved"}`,
		`{"homework_name": "A"}`,
		`{"homework_name": 1, "status": "approved"}`,
		`{"homework_name": "A", "status": null}`,
		`"A"`,
	}
	for _, raw := range bad {
		if _, err := ParseHomework(decode(t, raw)); KindOf(err) != KindDataFormat {
			t.Fatalf("%s: expected data format error, got %v", raw, err)
		}
	}
}
