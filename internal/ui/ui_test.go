package ui

import (
	"errors"
	"testing"

	"github.com/revell/cuetime/internal/control"
	"github.com/revell/cuetime/internal/ontime"
	"github.com/revell/cuetime/internal/state"
)

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("mono"); got.Name != "mono" {
		t.Fatalf("ThemeByName(mono).Name = %q, want mono", got.Name)
	}
	if got := ThemeByName("no-such-theme"); got.Name != "stage" {
		t.Fatalf("ThemeByName(unknown).Name = %q, want stage fallback", got.Name)
	}
}

func TestTierColor(t *testing.T) {
	theme := ThemeByName("stage")
	cases := []struct {
		tier state.Tier
		want string
	}{
		{state.TierNormal, theme.Text},
		{state.TierWarning, theme.Warning},
		{state.TierDanger, theme.Danger},
	}
	for _, tc := range cases {
		if got := theme.TierColor(tc.tier); got != tc.want {
			t.Errorf("TierColor(%v) = %q, want %q", tc.tier, got, tc.want)
		}
	}
}

func TestEnlarge(t *testing.T) {
	if got, want := enlarge("--:--"), "- - : - -"; got != want {
		t.Fatalf("enlarge = %q, want %q", got, want)
	}
	if got, want := enlarge("01:00"), "0 1 : 0 0"; got != want {
		t.Fatalf("enlarge = %q, want %q", got, want)
	}
}

func TestControlNote(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"sent", nil, "start sent"},
		{"disabled", control.ErrDisabled, "start unavailable"},
		{"missing event", control.ErrMissingEvent, "start needs a loaded event"},
		{"disconnected", ontime.ErrNotConnected, "start rejected: not connected"},
		{"other transport error", errors.New("write start: boom"), "start rejected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := controlNote("start", tc.err); got != tc.want {
				t.Errorf("controlNote = %q, want %q", got, tc.want)
			}
		})
	}
}
