package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 10},
		{name: "explicit values", query: "?page=3&limit=25", wantPage: 3, wantLimit: 25},
		{name: "zero page", query: "?page=0", wantPage: 1, wantLimit: 10},
		{name: "negative values", query: "?page=-2&limit=-5", wantPage: 1, wantLimit: 10},
		{name: "non-numeric", query: "?page=abc&limit=xyz", wantPage: 1, wantLimit: 10},
		{name: "limit clamped to max", query: "?limit=5000", wantPage: 1, wantLimit: 100},
		{name: "limit at max passes", query: "?limit=100", wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/products"+tt.query, nil)
			page, limit := parsePagination(req)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
