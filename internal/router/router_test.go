package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequireJSON(t *testing.T) {
	e := echo.New()
	e.POST("/things", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, requireJSON)

	tests := []struct {
		name        string
		contentType string
		wantStatus  int
	}{
		{"json is accepted", echo.MIMEApplicationJSON, http.StatusOK},
		{"json with charset is accepted", "application/json; charset=utf-8", http.StatusOK},
		{"form data is rejected", echo.MIMEApplicationForm, http.StatusUnsupportedMediaType},
		{"missing content type is rejected", "", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnsupportedMediaType {
				assert.Contains(t, rec.Body.String(), "application/json representation")
			}
		})
	}
}
