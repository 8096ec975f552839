package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

func respWithBody(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestFromResponse_BodyText(t *testing.T) {
	t.Parallel()
	err := FromResponse("update recipe", "저장 실패", respWithBody(404, "Recipe not found"))
	if err.Message != "Recipe not found" {
		t.Fatalf("message = %q, want body text", err.Message)
	}
	if err.Status != 404 {
		t.Fatalf("status = %d", err.Status)
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestFromResponse_FallbackOnEmptyBody(t *testing.T) {
	t.Parallel()
	err := FromResponse("delete recipe", "삭제 실패", respWithBody(500, "  "))
	if err.Message != "삭제 실패" {
		t.Fatalf("message = %q, want fallback", err.Message)
	}
}

func TestFromTransport_Unwrap(t *testing.T) {
	t.Parallel()
	cause := fmt.Errorf("connection refused")
	err := FromTransport("load recipes", "목록을 불러오지 못했습니다", cause)
	if err.Status != 0 {
		t.Fatalf("status = %d, want 0 for transport failures", err.Status)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected Unwrap to expose the transport error")
	}
}

func TestHelpers(t *testing.T) {
	t.Parallel()
	var err error = &SyncError{Op: "x", Message: "m"}
	if !IsSync(err) || IsValidation(err) {
		t.Fatal("SyncError misclassified")
	}
	err = fmt.Errorf("wrapped: %w", &ValidationError{Field: "title"})
	if !IsValidation(err) || IsSync(err) {
		t.Fatal("ValidationError misclassified")
	}
}
