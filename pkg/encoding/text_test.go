package encoding

import (
	"errors"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr error
	}{
		{
			name: "empty",
			data: nil,
			want: "",
		},
		{
			name: "plain utf8",
			data: []byte("v 0 0 0\n"),
			want: "v 0 0 0\n",
		},
		{
			name: "utf8 with bom",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("o cube\n")...),
			want: "o cube\n",
		},
		{
			name: "utf16 little endian with bom",
			data: []byte{0xFF, 0xFE, 'v', 0, ' ', 0, '1', 0},
			want: "v 1",
		},
		{
			name: "windows-1252 fallback",
			data: []byte("usemtl caf\xe9"),
			want: "usemtl café",
		},
		{
			name:    "binary content",
			data:    []byte{'s', 'o', 0, 0, 1},
			wantErr: ErrBinaryContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
