package testutil

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertSameMoves compares two move lists ignoring order, naming the moves
// that are missing from got and the ones it should not contain. Nil and empty
// lists are equal.
func AssertSameMoves(t testing.TB, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	extra, missing := lo.Difference(got, want)
	if len(extra) == 0 && len(missing) == 0 && len(got) == len(want) {
		return
	}
	sort.Strings(extra)
	sort.Strings(missing)
	t.Errorf("%smoves differ: missing %v, unexpected %v (got %d, want %d)",
		prefix(msgAndArgs...), missing, extra, len(got), len(want))
}

// prefix formats optional message arguments as "msg: ", or "" without any.
func prefix(msgAndArgs ...interface{}) string {
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		return ""
	}
	return msg + ": "
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
