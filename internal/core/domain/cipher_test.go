package domain

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    int
		wantErr error
	}{
		{name: "simple key", in: "6", want: 6},
		{name: "zero", in: "0", want: 0},
		{name: "large but valid", in: "123456", want: 123456},
		{name: "not a number", in: "abc", wantErr: ErrKeyNotInteger},
		{name: "trailing garbage", in: "12x", wantErr: ErrKeyNotInteger},
		{name: "empty", in: "", wantErr: ErrKeyNotInteger},
		{name: "float", in: "1.5", wantErr: ErrKeyNotInteger},
		{name: "overflow", in: "99999999999999999999999999", wantErr: ErrKeyOutOfRange},
		{name: "negative", in: "-4", wantErr: ErrKeyNegative},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKey(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseKey(%q) error = %v, want %v", tc.in, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseKey(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestEffectiveShift(t *testing.T) {
	if got := EffectiveShift(ModeEncrypt, 6); got != 6 {
		t.Errorf("encrypt shift = %d, want 6", got)
	}
	if got := EffectiveShift(ModeDecrypt, 6); got != -6 {
		t.Errorf("decrypt shift = %d, want -6", got)
	}
	if got := EffectiveShift(ModeDecrypt, 0); got != 0 {
		t.Errorf("decrypt zero shift = %d, want 0", got)
	}
}

func TestNormalizeShift(t *testing.T) {
	testCases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{6, 6},
		{25, 25},
		{26, 0},
		{27, 1},
		{52, 0},
		{-1, 25},
		{-6, 20},
		{-26, 0},
		{-27, 25},
	}

	for _, tc := range testCases {
		if got := NormalizeShift(tc.in); got != tc.want {
			t.Errorf("NormalizeShift(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
