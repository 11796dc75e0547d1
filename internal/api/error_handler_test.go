package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/api/handler"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

func renderError(t *testing.T, err error, debug bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), debug)(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrNoToken, http.StatusUnauthorized},
		{domain.ErrTokenRevoked, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrSessionSuperseded, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrAccountDeactivated, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrSamePassword, http.StatusBadRequest},
		{domain.ErrResetTokenInvalid, http.StatusBadRequest},
		{domain.ErrBookNotFound, http.StatusNotFound},
		{domain.ErrDuplicateISBN, http.StatusConflict},
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrEmptyOrder, http.StatusBadRequest},
		{domain.ErrInsufficientStock, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err, false)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["success"] != false {
			t.Fatalf("%v: expected success=false", tc.err)
		}
	}
}

func TestHTTPErrorHandler_ValidationErrorDetail(t *testing.T) {
	err := &handler.ValidationError{Fields: []handler.FieldError{
		{Field: "email", Message: "email must be a valid email"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}}

	rec, body := renderError(t, err, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["message"] != "email must be a valid email" {
		t.Fatalf("message should be the first field failure: %v", body["message"])
	}
	fields, ok := body["errors"].([]any)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", body["errors"])
	}
}

func TestHTTPErrorHandler_UnknownErrorHidden(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection refused"), false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("internal detail must not leak: %v", body["message"])
	}
}

func TestHTTPErrorHandler_UnknownErrorShownInDebug(t *testing.T) {
	_, body := renderError(t, errors.New("boom"), true)
	if body["message"] != "boom" {
		t.Fatalf("debug mode should surface the cause, got %v", body["message"])
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"), false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["message"] != "Not Found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}
