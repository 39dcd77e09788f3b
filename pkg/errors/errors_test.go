// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/carimus/metrolink/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_conflict",
			code:    errors.ErrConfigConflict,
			message: "resolver.blacklistRE already set",
			wantStr: "[CONFIG_CONFLICT] resolver.blacklistRE already set",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "unknown format",
			wantStr: "[INVALID_INPUT] unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "unknown format %q", "xml")
	if err.Message != `unknown format "xml"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("no such file or directory")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPathResolve, "cannot resolve link")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[PATH_RESOLVE] cannot resolve link: no such file or directory"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPathResolve, "dangling link").
		WithDetail("path", "/app/node_modules/lib").
		WithDetail("root", "/app")

	if err.Details["path"] != "/app/node_modules/lib" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err); got["root"] != "/app" {
		t.Errorf("GetErrorDetails() root = %v", got["root"])
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDiscovery, "error 1")
	err2 := errors.New(errors.ErrDiscovery, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should work with LinkError")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrConfigConflict, "x"), errors.ErrConfigConflict, true},
		{"different_code", errors.New(errors.ErrConfigConflict, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrPathResolve, "x"), errors.ErrPathResolve, true},
		{"plain_error", stderrors.New("standard error"), errors.ErrDiscovery, false},
		{"nil_error", nil, errors.ErrDiscovery, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrManifestParse, "bad json")); got != errors.ErrManifestParse {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("standard error")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want UNKNOWN", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	resolveErr := errors.Wrap(rootCause, errors.ErrPathResolve, "cannot resolve link")
	discoveryErr := errors.Wrap(resolveErr, errors.ErrDiscovery, "discovery failed")

	if !errors.IsErrorCode(discoveryErr, errors.ErrDiscovery) {
		t.Error("top level should have ErrDiscovery code")
	}
	if !errors.IsErrorCode(discoveryErr.Unwrap(), errors.ErrPathResolve) {
		t.Error("middle error should have ErrPathResolve code")
	}
	if !stderrors.Is(discoveryErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
