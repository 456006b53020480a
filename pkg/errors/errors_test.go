package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unbalanced_tag",
			code:    errors.ErrUnbalancedTag,
			message: "unexpected [/ok]",
			wantStr: "[UNBALANCED_TAG] unexpected [/ok]",
		},
		{
			name:    "width_overflow",
			code:    errors.ErrWidthOverflow,
			message: "columns need 50, have 40",
			wantStr: "[WIDTH_OVERFLOW] columns need 50, have 40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
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
	err := errors.Newf(errors.ErrDanglingAlias, "style %q points at %q", "title", "missing")
	want := `style "title" points at "missing"`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigParse, "bad config")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		wantStr := "[CONFIG_PARSE] bad config: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %d", 1); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrUnbalancedTag, "mismatch").
		WithDetail("name", "ok").
		WithDetails(map[string]interface{}{"offset": 12})

	details := errors.GetErrorDetails(err)
	if details["name"] != "ok" {
		t.Errorf("name = %v, want ok", details["name"])
	}
	if details["offset"] != 12 {
		t.Errorf("offset = %v, want 12", details["offset"])
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("plain errors carry no details")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrAliasCycle, "error 1")
	err2 := errors.New(errors.ErrAliasCycle, "error 2")
	err3 := errors.New(errors.ErrDanglingAlias, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrUnknownTag, "x"), errors.ErrUnknownTag, true},
		{"different_code", errors.New(errors.ErrUnknownTag, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrConfigLoad, "denied"), errors.ErrConfigLoad, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknownTag, false},
		{"nil_error", nil, errors.ErrUnknownTag, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	themeErr := errors.Wrap(rootCause, errors.ErrInvalidTheme, "cannot decode theme")
	configErr := errors.Wrap(themeErr, errors.ErrConfigLoad, "failed to load config")

	if got := errors.GetErrorCode(configErr); got != errors.ErrConfigLoad {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigLoad)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}

	var middle *errors.Error
	if !stderrors.As(configErr.Unwrap(), &middle) || middle.Code != errors.ErrInvalidTheme {
		t.Error("middle error should carry INVALID_THEME")
	}
	if !stderrors.Is(configErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
