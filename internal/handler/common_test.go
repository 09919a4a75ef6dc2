package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"artshare-go/internal/service"

	"github.com/gin-gonic/gin"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", service.ErrValidation, http.StatusBadRequest},
		{"email taken", service.ErrEmailTaken, http.StatusBadRequest},
		{"password mismatch", service.ErrPasswordMismatch, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"auth required", service.ErrAuthRequired, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("查询失败: %w", service.ErrNotFound), http.StatusNotFound},
		{"unknown", fmt.Errorf("数据库崩了"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)

			handleServiceError(c, tc.err)

			if rr.Code != tc.code {
				t.Errorf("期望状态 %d, 实际 %d", tc.code, rr.Code)
			}
		})
	}
}
