package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"conversational-todo/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 5, 1, 15, 30, 0, 0, time.Local)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	// Date renders in local time, so a local base avoids timezone drift.
	if got, want := string(b), `"2026-05-01"`; got != want {
		t.Errorf("marshaled Date = %s, want %s", got, want)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 5, 1, 15, 30, 45, 0, time.Local)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if got, want := string(b), `"2026-05-01 15:30:45"`; got != want {
		t.Errorf("marshaled DateTime = %s, want %s", got, want)
	}
}

func TestDateMarshalsInsideStruct(t *testing.T) {
	tm := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)
	d := response.Date(tm)
	payload := struct {
		DueOn *response.Date `json:"due_on,omitempty"`
	}{DueOn: &d}

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error marshaling struct: %v", err)
	}

	if got, want := string(b), `{"due_on":"2026-05-01"}`; got != want {
		t.Errorf("marshaled struct = %s, want %s", got, want)
	}
}
