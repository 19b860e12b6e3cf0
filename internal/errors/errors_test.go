package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := FetchFailed(fmt.Errorf("connection refused"))
	wrapped := Wrap(base, "loading dataset")

	if GetCode(wrapped) != CodeFetchFailed {
		t.Errorf("GetCode = %q, want %q", GetCode(wrapped), CodeFetchFailed)
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the original")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should stay nil")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain")); got != "UNKNOWN" {
		t.Errorf("GetCode(plain) = %q", got)
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := DecodeFailed(fmt.Errorf("bad zip header"))
	want := "decode failed: bad zip header"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
