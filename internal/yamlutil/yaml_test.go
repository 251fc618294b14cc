package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mpdigest/internal/yamlutil"
)

type sample struct {
	Addr  string `yaml:"addr"`
	Level string `yaml:"level"`
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		nilDest bool
		wantErr error
		want    sample
	}{
		{
			name: "known keys",
			data: "addr: \":8000\"\nlevel: debug\n",
			want: sample{Addr: ":8000", Level: "debug"},
		},
		{
			name: "missing keys stay zero",
			data: "addr: \":9000\"\n",
			want: sample{Addr: ":9000"},
		},
		{
			name:    "empty input",
			data:    "",
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			data:    "addr: x",
			nilDest: true,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got sample
			var dest any = &got
			if tt.nilDest {
				dest = nil
			}

			err := yamlutil.DecodeStrict([]byte(tt.data), dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeStrict() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeStrict() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeStrict_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	var s sample
	err := yamlutil.DecodeStrict([]byte("addr: x\nbogus: y\n"), &s)
	if err == nil {
		t.Fatal("DecodeStrict() expected error for unknown key")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error %q should carry yamlutil prefix", err)
	}
}

func TestDecodeStrict_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("addr: \"" + strings.Repeat("x", yamlutil.MaxInputSize) + "\"")
	err := yamlutil.DecodeStrict(data, &sample{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("DecodeStrict() error = %v, want ErrInputTooLarge", err)
	}
}
