package models

import (
	"encoding/json"
	"testing"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-12-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}

	encoded, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != `"2024-12-01"` {
		t.Fatalf("expected \"2024-12-01\", got %s", encoded)
	}

	var decoded Date
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Equal(d.Time) {
		t.Fatalf("expected %v, got %v", d, decoded)
	}
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, value := range []string{"01-12-2024", "2024/12/01", "2024-13-01", "yesterday", ""} {
		if _, err := ParseDate(value); err == nil {
			t.Errorf("expected %q to be rejected", value)
		}
	}
}
