package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with detail",
			err:  NewAPIError(500, "/chat", "overloaded"),
			want: "chat API error [500] at /chat: overloaded",
		},
		{
			name: "without detail",
			err:  NewAPIError(502, "/chat", ""),
			want: "chat API error [502] at /chat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewRequestError("/chat", cause)

	if !stderrors.Is(err, cause) {
		t.Error("RequestError should unwrap to its cause")
	}
	if IsRequestError(fmt.Errorf("wrapped: %w", err)) != true {
		t.Error("IsRequestError should see through wrapping")
	}
	if IsRequestError(NewAPIError(500, "/chat", "")) {
		t.Error("IsRequestError should be false for APIError")
	}
}

func TestParseErrorIsSentinel(t *testing.T) {
	err := NewParseError("missing response field", "/chat")
	if !stderrors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	if got := GetHTTPStatus(NewAPIError(429, "/chat", "")); got != 429 {
		t.Errorf("GetHTTPStatus = %d, want 429", got)
	}
	if got := GetHTTPStatus(stderrors.New("plain")); got != 0 {
		t.Errorf("GetHTTPStatus on plain error = %d, want 0", got)
	}
	wrapped := fmt.Errorf("send: %w", NewAPIError(503, "/chat", "busy"))
	if got := GetHTTPStatus(wrapped); got != 503 {
		t.Errorf("GetHTTPStatus on wrapped error = %d, want 503", got)
	}
}

func TestGetEndpoint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api error", NewAPIError(500, "/chat", ""), "/chat"},
		{"request error", NewRequestError("/chat", stderrors.New("dns")), "/chat"},
		{"parse error", NewParseError("bad json", "/chat"), "/chat"},
		{"plain error", stderrors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetEndpoint(tt.err); got != tt.want {
				t.Errorf("GetEndpoint = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server detail preferred",
			err:  NewAPIError(500, "/chat", "overloaded"),
			want: "overloaded",
		},
		{
			name: "status fallback without detail",
			err:  NewAPIError(502, "/chat", ""),
			want: "server returned status 502",
		},
		{
			name: "transport error describes itself",
			err:  NewRequestError("/chat", stderrors.New("connection refused")),
			want: "request to /chat failed: connection refused",
		},
		{
			name: "parse error is generic",
			err:  NewParseError("not json", "/chat"),
			want: GenericReason,
		},
		{
			name: "unknown error is generic",
			err:  stderrors.New("mystery"),
			want: GenericReason,
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FailureReason(tt.err); got != tt.want {
				t.Errorf("FailureReason = %q, want %q", got, tt.want)
			}
		})
	}
}
