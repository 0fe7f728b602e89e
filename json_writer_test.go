package exposure

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1)
		w.Append("a", "hello")
		w.Append(`quo"te`, true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","quo\"te":true}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // assess that a zero value is actually added.
		w.Optional("b", "")
		w.Optional("c", []Warning(nil))
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", make(chan int))
		w.Append("b", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("expected an error")
		}
	})
}

func TestBreakdown_MarshalJSON(t *testing.T) {
	var b Breakdown
	b.Add("USA", W(0.5))
	b.Add("Germany", W(0.25))
	b.Add("USA", W(0.125))
	got, err := json.Marshal(&b)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"USA":0.625,"Germany":0.25}`; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
