package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.March, 7, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "default chinese month day", format: DefaultFormat, want: "03月07日"},
		{name: "iso preset", format: "iso", want: "2026-03-07"},
		{name: "preset is case-insensitive", format: "CN", want: "03月07日"},
		{name: "chinese with year", format: "cn-y", want: "2026年03月07日"},
		{name: "us preset", format: "us", want: "03/07/2026"},
		{name: "full month name", format: "MMMM D", want: "March 7"},
		{name: "short forms", format: "YY/M/D", want: "26/3/7"},
		{name: "bracket literal", format: "[Day] DD", want: "Day 07"},
		{name: "bracket keeps layout digits", format: "[Day 2] DD", want: "Day 2 07"},
		{name: "bracket keeps layout names", format: "[Jan Mon 01] MMM", want: "Jan Mon 01 Mar"},
		{name: "bare digits stay literal", format: "2 DD", want: "2 07"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[oops DD", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: strings.Repeat("D", MaxFormatLength+1), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(day, tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Format(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Format(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate(DefaultFormat); err != nil {
		t.Errorf("Validate(%q) unexpected error: %v", DefaultFormat, err)
	}
	if err := Validate("[x"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("Validate() error = %v, want ErrInvalidDateFormat", err)
	}
}
