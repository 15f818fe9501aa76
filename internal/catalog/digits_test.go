package catalog

import "testing"

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "arabic-indic digits",
			input: "٢٠٢٣",
			want:  "2023",
		},
		{
			name:  "mixed scripts",
			input: "MS-١٠٥4",
			want:  "MS-1054",
		},
		{
			name:  "no digits pass through",
			input: "المخطوطات",
			want:  "المخطوطات",
		},
		{
			name:  "western digits unchanged",
			input: "1054",
			want:  "1054",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "digits with era marker",
			input: "١٠٥٤هـ",
			want:  "1054هـ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDigits(tt.input); got != tt.want {
				t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractInteger(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{
			name:   "arabic-indic date with era marker",
			input:  "١٠٥٤هـ",
			want:   1054,
			wantOK: true,
		},
		{
			name:   "empty string is absent",
			input:  "",
			wantOK: false,
		},
		{
			name:   "no digits is absent",
			input:  "MS-",
			wantOK: false,
		},
		{
			name:   "prefixed id",
			input:  "MS-1054",
			want:   1054,
			wantOK: true,
		},
		{
			name:   "first run wins over later runs",
			input:  "10/54",
			want:   10,
			wantOK: true,
		},
		{
			name:   "zero is a value, not absence",
			input:  "0",
			want:   0,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractInteger(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractInteger(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractInteger(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
