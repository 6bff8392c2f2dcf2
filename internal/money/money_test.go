package money

import (
	"errors"
	"testing"
)

func TestParseUSDToCents(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    int64
		wantErr error
	}{
		{name: "bare dollars", token: "12", want: 1200},
		{name: "dollars and cents", token: "12.34", want: 1234},
		{name: "dollar sign", token: "$12.34", want: 1234},
		{name: "dollar sign with space", token: "$ 12.34", want: 1234},
		{name: "single decimal digit means tenths", token: "12.3", want: 1230},
		{name: "decimal comma", token: "12,34", want: 1234},
		{name: "trailing dash negative", token: "5.00-", want: -500},
		{name: "trailing dash with symbol", token: "$0.99-", want: -99},
		{name: "surrounding whitespace", token: "  7.25  ", want: 725},
		{name: "seven digit dollars", token: "9999999.99", want: 999_999_999},

		{name: "empty token", token: "", wantErr: ErrEmptyToken},
		{name: "whitespace only", token: "   ", wantErr: ErrEmptyToken},
		{name: "thousands separator with decimals", token: "1,234.56", wantErr: ErrThousandsSeparator},
		{name: "thousands separator with symbol", token: "$1,234", wantErr: ErrThousandsSeparator},
		{name: "letters", token: "abc", wantErr: ErrInvalidToken},
		{name: "symbol only", token: "$", wantErr: ErrInvalidToken},
		{name: "double decimal point", token: "12..34", wantErr: ErrInvalidToken},
		{name: "three decimal digits", token: "12.345", wantErr: ErrInvalidToken},
		{name: "multiple commas", token: "12,3,4", wantErr: ErrInvalidToken},
		{name: "leading minus not supported", token: "-12.34", wantErr: ErrInvalidToken},
		{name: "too many dollar digits", token: "12345678", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUSDToCents(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseUSDToCents(%q) error = %v, want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUSDToCents(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseUSDToCents(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestCentsToString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{99, "$0.99"},
		{100, "$1.00"},
		{1234, "$12.34"},
		{-500, "-$5.00"},
		{-1, "-$0.01"},
		{999_999_999, "$9999999.99"},
	}

	for _, tt := range tests {
		if got := CentsToString(tt.cents); got != tt.want {
			t.Errorf("CentsToString(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
