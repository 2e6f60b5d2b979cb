package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		def      int
		min      int
		max      int
		expected int
	}{
		{"uses provided value", "limit=25", 100, 1, 500, 25},
		{"missing falls back to default", "", 100, 1, 500, 100},
		{"non-numeric falls back to default", "limit=abc", 100, 1, 500, 100},
		{"below minimum falls back to default", "limit=0", 100, 1, 500, 100},
		{"above maximum falls back to default", "limit=9999", 100, 1, 500, 100},
		{"boundary value accepted", "limit=500", 100, 1, 500, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/chat/all?"+tc.query, nil)
			got := parseIntParam(req, "limit", tc.def, tc.min, tc.max)
			if got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestParseRoleParam(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected *string
	}{
		{"user role passes", "role=user", strPtr("user")},
		{"assistant role passes", "role=assistant", strPtr("assistant")},
		{"unknown role ignored", "role=system", nil},
		{"missing role ignored", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/chat/all?"+tc.query, nil)
			got := parseRoleParam(req)
			if tc.expected == nil {
				if got != nil {
					t.Errorf("Expected no role filter, got %q", *got)
				}
				return
			}
			if got == nil || *got != *tc.expected {
				t.Errorf("Expected role %q, got %v", *tc.expected, got)
			}
		})
	}
}

func TestParseStringParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chat/qa?session_id=abc123", nil)
	if got := parseStringParam(req, "session_id"); got == nil || *got != "abc123" {
		t.Errorf("Expected 'abc123', got %v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/chat/qa", nil)
	if got := parseStringParam(req, "session_id"); got != nil {
		t.Errorf("Expected nil for missing param, got %q", *got)
	}
}

func strPtr(s string) *string { return &s }
