package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-appointment-system/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name       string
		handler    http.Handler
		req        *http.Request
		wantStatus int
	}{
		{"admin passes admin gate", RequireAdmin(next), requestWithRole(entity.RoleIDAdmin), http.StatusOK},
		{"doctor blocked at admin gate", RequireAdmin(next), requestWithRole(entity.RoleIDDoctor), http.StatusForbidden},
		{"doctor passes doctor gate", RequireDoctor(next), requestWithRole(entity.RoleIDDoctor), http.StatusOK},
		{"patient blocked at doctor gate", RequireDoctor(next), requestWithRole(entity.RoleIDPatient), http.StatusForbidden},
		{"patient passes patient gate", RequirePatient(next), requestWithRole(entity.RoleIDPatient), http.StatusOK},
		{"admin blocked at patient gate", RequirePatient(next), requestWithRole(entity.RoleIDAdmin), http.StatusForbidden},
		{"missing role is unauthorized", RequireAdmin(next), httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.handler.ServeHTTP(rec, tc.req)
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}
