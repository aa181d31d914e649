package episode_test

import (
	"testing"

	"zamek/internal/episode"
)

func TestParseDateAny(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "bare date", in: "2025-08-29", want: "2025-08-29", ok: true},
		{name: "timestamp with offset", in: "2025-08-29T18:30:00+02:00", want: "2025-08-29", ok: true},
		{name: "timestamp zulu", in: "2025-12-31T23:00:00Z", want: "2025-12-31", ok: true},
		{name: "padded", in: "  2025-01-02  ", want: "2025-01-02", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "wkrótce", ok: false},
		{name: "impossible date", in: "2025-13-45", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := episode.ParseDateAny(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
