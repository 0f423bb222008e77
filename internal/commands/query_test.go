package commands

import (
	"strings"
	"testing"

	apierrors "github.com/diogo/termchat/internal/errors"
)

func TestQueryBubbleWidth(t *testing.T) {
	tests := []struct {
		name      string
		termWidth int
		want      int
	}{
		{"narrow terminal clamps to minimum", 30, 40},
		{"typical terminal", 80, 76},
		{"wide terminal clamps to maximum", 300, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := queryBubbleWidth(tt.termWidth); got != tt.want {
				t.Errorf("queryBubbleWidth(%d) = %d, want %d", tt.termWidth, got, tt.want)
			}
		})
	}
}

func TestRunQueryRejectsEmptyMessage(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if err := runQuery(input); err == nil {
			t.Errorf("runQuery(%q) succeeded, want error", input)
		}
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := apierrors.NewAPIError(500, "/chat", "model overloaded")
	msg := formatErrorMessage(err, "Request failed")

	if !strings.Contains(msg, "model overloaded") {
		t.Errorf("message missing server detail:\n%s", msg)
	}
	if !strings.Contains(msg, "500") {
		t.Errorf("message missing HTTP status:\n%s", msg)
	}
	if !strings.Contains(msg, "/chat") {
		t.Errorf("message missing endpoint:\n%s", msg)
	}
}

func TestFormatErrorMessage_Nil(t *testing.T) {
	if got := formatErrorMessage(nil, "context"); got != "" {
		t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
	}
}

func TestQuerySpinnerStopsOnce(t *testing.T) {
	s := newQuerySpinner("working")
	s.start()

	// Double stop must not panic.
	s.stopWithError()
	s.stopWithError()
}
