package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "Basic name",
			id:   "daily",
			want: "daily",
		},
		{
			name: "Name with JSON extension",
			id:   "daily.json",
			want: "daily",
		},
		{
			name: "Name with multiple dots",
			id:   "hour.dow.json",
			want: "hour.dow",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.Handler(http.MethodGet, "/api/test/:name", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "name")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.id, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.want, result, "ExtractIDFromParams should correctly extract and clean the name")
		})
	}
}
