package cli

import (
	"testing"
	"time"
)

func TestParseMenuDate(t *testing.T) {
	today := time.Now().In(kst)

	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"today", today.Format("20060102"), false},
		{"a week ahead", today.Add(7 * 24 * time.Hour).Format("20060102"), false},
		{"yesterday", today.Add(-24 * time.Hour).Format("20060102"), true},
		{"too far ahead", today.Add(9 * 24 * time.Hour).Format("20060102"), true},
		{"wrong format", "2026-09-01", true},
		{"garbage", "next tuesday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMenuDate(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format("20060102") != tt.arg {
				t.Errorf("parsed = %s, want %s", got.Format("20060102"), tt.arg)
			}
		})
	}
}
