package config

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const testModule = "github.com/go-drift/freezedemo"

func TestResolve_Defaults(t *testing.T) {
	got, err := Resolve(nil, testModule)
	if err != nil {
		t.Fatal(err)
	}
	want := &Resolved{
		AppName:    "freezedemo",
		AppID:      "com.github.godrift.freezedemo",
		Title:      DefaultTitle,
		Interval:   time.Second,
		Iterations: 1_000_000,
		Dark:       true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(nil) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Defaults(testModule), got); diff != "" {
		t.Errorf("Defaults and Resolve(nil) disagree (-want +got):\n%s", diff)
	}
}

func TestResolve_Overrides(t *testing.T) {
	data := []byte(`
app:
  name: Freeze
  id: com.example.freeze
engine:
  version: v0.4.0
freeze:
  title: Render gate
  interval: 250ms
  iterations: 5000
  theme: Light
`)
	got, err := Resolve(data, testModule)
	if err != nil {
		t.Fatal(err)
	}
	want := &Resolved{
		AppName:    "Freeze",
		AppID:      "com.example.freeze",
		Title:      "Render gate",
		Interval:   250 * time.Millisecond,
		Iterations: 5000,
		Dark:       false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_MajorVersionModule(t *testing.T) {
	got, err := Resolve(nil, "example.com/apps/freeze/v2")
	if err != nil {
		t.Fatal(err)
	}
	if got.AppName != "freeze" {
		t.Errorf("expected version suffix to be stripped from app name, got %q", got.AppName)
	}
	if got.AppID != "com.example.apps.freeze.v2" {
		t.Errorf("unexpected app id %q", got.AppID)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero interval", "freeze:\n  interval: 0s\n", ErrInvalidInterval},
		{"negative interval", "freeze:\n  interval: -1s\n", ErrInvalidInterval},
		{"bad interval", "freeze:\n  interval: soon\n", ErrInvalidInterval},
		{"negative iterations", "freeze:\n  iterations: -5\n", ErrInvalidIterations},
		{"app id without dot", "app:\n  id: freeze\n", ErrInvalidAppID},
		{"app id uppercase", "app:\n  id: com.Example.freeze\n", ErrInvalidAppID},
		{"app id leading digit", "app:\n  id: com.1example\n", ErrInvalidAppID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve([]byte(tt.data), testModule)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestResolve_InvalidAppIDKeepsFreezeSection(t *testing.T) {
	data := []byte(`
app:
  id: Not.Valid
freeze:
  title: Render gate
  interval: 2s
`)
	got, err := Resolve(data, testModule)
	if !errors.Is(err, ErrInvalidAppID) {
		t.Fatalf("expected %v, got %v", ErrInvalidAppID, err)
	}
	if got == nil {
		t.Fatal("expected the rest of the config alongside the app id error")
	}
	want := &Resolved{
		AppName:    "freezedemo",
		AppID:      "com.github.godrift.freezedemo",
		Title:      "Render gate",
		Interval:   2 * time.Second,
		Iterations: 1_000_000,
		Dark:       true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_MalformedYAML(t *testing.T) {
	if _, err := Resolve([]byte("freeze: [unterminated"), testModule); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestResolve_InvalidModulePath(t *testing.T) {
	if _, err := Resolve(nil, "not a module"); err == nil {
		t.Error("expected error for invalid module path")
	}
}

func TestSanitizeSegment(t *testing.T) {
	tests := []struct {
		in                string
		allowLeadingDigit bool
		want              string
	}{
		{"go-drift", true, "godrift"},
		{"My_App", true, "myapp"},
		{"9lives", false, "a9lives"},
		{"9lives", true, "9lives"},
		{"---", true, "app"},
	}
	for _, tt := range tests {
		if got := sanitizeSegment(tt.in, tt.allowLeadingDigit); got != tt.want {
			t.Errorf("sanitizeSegment(%q, %v) = %q, want %q", tt.in, tt.allowLeadingDigit, got, tt.want)
		}
	}
}
