package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeImportInProgress, http.StatusConflict},
		{ErrCodeInsufficientBalance, http.StatusUnprocessableEntity},
		{ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"ERR_NEVER_SEEN", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	cases := []struct {
		domain string
		want   string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"ALREADY_CLOSED", ErrCodeInvalidState},
		{"IMPORT_IN_PROGRESS", ErrCodeImportInProgress},
		{"INSUFFICIENT_BALANCE", ErrCodeInsufficientBalance},
		{"INVALID_FILE", ErrCodeInvalidFile},
		{"UNKNOWN_PART", ErrCodeValidation},
		{"INVALID_PROJECT_NUMBER", ErrCodeValidation}, // prefix fallback
		{"SOMETHING_ELSE", "SOMETHING_ELSE"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeErrorCode(tc.domain), "domain code %s", tc.domain)
	}
}
