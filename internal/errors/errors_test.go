package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != ErrInternalServer.Code || err.StatusCode != ErrInternalServer.StatusCode {
		t.Errorf("expected code/status of sentinel, got %s/%d", err.Code, err.StatusCode)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable with errors.Is")
	}
	if err.Error() != ErrInternalServer.Message {
		t.Errorf("expected public message %q, got %q", ErrInternalServer.Message, err.Error())
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "Maximum asset count must be positive")

	if err.Message != "Maximum asset count must be positive" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is to match sentinel by code")
	}
	if stderrors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is not to match a different code")
	}
}
