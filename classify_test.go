// classify_test.go — the three-way discriminant and tag predicates.
package xgxmatch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_PriorityOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		wantKind kind
		wantTag  Tag
	}{
		{"tagged instance", tTimeout.New("t"), kindTagged, "TimeoutError"},
		{"tagged beats plain error", tQuota.Wrap(errors.New("root"), "q"), kindTagged, "QuotaError"},
		{"wrapped tagged still tagged", fmt.Errorf("outer: %w", tParse.New("p")), kindTagged, "ParseError"},
		{"variant used directly", tTimeout, kindTagged, "TimeoutError"},
		{"plain error", errors.New("boom"), kindError, ""},
		{"plain value", 42, kindValue, ""},
		{"string value", "hello", kindValue, ""},
		{"nil input", nil, kindValue, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, tag, errv := classify(tc.input)
			assert.Equal(t, tc.wantKind, k)
			assert.Equal(t, tc.wantTag, tag)
			if tc.wantKind == kindValue {
				assert.Nil(t, errv)
			} else {
				require.NotNil(t, errv)
				// The classified input is the error itself, never rewrapped.
				assert.Equal(t, tc.input, any(errv))
			}
		})
	}
}

func TestClassify_JoinedResolvesOnFirstTag(t *testing.T) {
	t.Parallel()

	joined := errors.Join(tTimeout.New("a"), tQuota.New("b"))
	k, tag, _ := classify(joined)
	assert.Equal(t, kindTagged, k)
	assert.Equal(t, Tag("TimeoutError"), tag)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tagged := tTimeout.New("t")
	wrapped := fmt.Errorf("outer: %w", tagged)
	plain := errors.New("boom")

	t.Run("IsTagged", func(t *testing.T) {
		assert.True(t, IsTagged(tagged))
		assert.True(t, IsTagged(wrapped))
		assert.False(t, IsTagged(plain))
		assert.False(t, IsTagged(nil))
	})

	t.Run("TagOf", func(t *testing.T) {
		assert.Equal(t, Tag("TimeoutError"), TagOf(wrapped))
		assert.Equal(t, Tag(""), TagOf(plain))
		assert.Equal(t, Tag(""), TagOf(nil))
	})

	t.Run("HasTag finds deeper members of a join", func(t *testing.T) {
		joined := errors.Join(plain, tQuota.New("q"))
		assert.True(t, HasTag(joined, "QuotaError"))
		assert.False(t, HasTag(joined, "TimeoutError"))
		assert.False(t, HasTag(nil, "QuotaError"))
		assert.False(t, HasTag(joined, ""))
	})

	t.Run("As", func(t *testing.T) {
		te, ok := As(wrapped)
		require.True(t, ok)
		assert.Equal(t, Tag("TimeoutError"), te.TagVal())

		_, ok = As(plain)
		assert.False(t, ok)
		_, ok = As(nil)
		assert.False(t, ok)
	})
}
