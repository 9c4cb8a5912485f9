// ABOUTME: Tests for charm client helpers.
// ABOUTME: Covers JSON marshaling helpers and key prefix construction.
package charm

import (
	"testing"

	"github.com/harperreed/longevity/internal/models"
)

// The KV-backed paths need a linked Charm account, so the tests here stay
// on the pure helpers; the integration suite covers the sqlite backend.

func TestMarshalRoundTrip(t *testing.T) {
	r := models.NewReading(models.KindSleep, 8).WithNotes("solid night")

	data, err := marshalJSON(r)
	if err != nil {
		t.Fatalf("marshalJSON failed: %v", err)
	}

	got, err := unmarshalJSON[models.MetricReading](data)
	if err != nil {
		t.Fatalf("unmarshalJSON failed: %v", err)
	}

	if got.ID != r.ID {
		t.Errorf("ID = %s, want %s", got.ID, r.ID)
	}
	if got.Kind != models.KindSleep {
		t.Errorf("Kind = %s, want sleep", got.Kind)
	}
	if got.Value != 8 {
		t.Errorf("Value = %f, want 8", got.Value)
	}
	if got.Notes == nil || *got.Notes != "solid night" {
		t.Error("expected notes to survive the round trip")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := unmarshalJSON[models.MetricReading]([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestReadingKeyPrefix(t *testing.T) {
	r := models.NewReading(models.KindStress, 6)
	key := ReadingPrefix + r.ID.String()

	if len(key) <= len(ReadingPrefix) {
		t.Fatal("reading key must extend the prefix with the ID")
	}
	if key[:len(ReadingPrefix)] != "reading:" {
		t.Errorf("key prefix = %q, want reading:", key[:len(ReadingPrefix)])
	}
}
