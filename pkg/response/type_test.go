package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"shareit/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var dt response.DateTime
	if err := json.Unmarshal([]byte(`"2024-01-01T01:01:01"`), &dt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 1, 1, 1, 1, 0, time.UTC)
	if !dt.Time().Equal(want) {
		t.Errorf("expected %v, got %v", want, dt.Time())
	}

	if err := json.Unmarshal([]byte(`"2024-01-01T01:01:01+03:00"`), &dt); err != nil {
		t.Fatalf("unexpected error for RFC3339: %v", err)
	}
	if !dt.Time().Equal(want.Add(-3 * time.Hour)) {
		t.Errorf("expected offset to be applied, got %v", dt.Time())
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &dt); err == nil {
		t.Error("expected error for garbage input")
	}
}
