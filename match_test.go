// match_test.go — the matcher facade end to end: fallback chain, sentinels,
// deferred inputs, and concurrency.
package xgxmatch

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestWhen_TagCase(t *testing.T) {
	t.Parallel()

	out, err := Match(tTimeout.New("t")).When(Cases{
		"TimeoutError": func(e error) any { return TagOf(e) },
	})
	require.NoError(t, err)
	assert.Equal(t, Tag("TimeoutError"), out)
}

func TestWhen_TagBeatsErrorCatchAll(t *testing.T) {
	t.Parallel()

	out, err := Match(tTimeout.New("t")).When(Cases{
		"TimeoutError": func(error) any { return "tag" },
		KeyError:       func(error) any { return "catch-all" },
	})
	require.NoError(t, err)
	assert.Equal(t, "tag", out)
}

func TestWhen_TaggedFallsBackToErrorCase(t *testing.T) {
	t.Parallel()

	out, err := Match(tTimeout.New("took too long")).When(Cases{
		KeyError: func(e error) any {
			// The handler sees a bare error; widening back to the tagged
			// instance is an explicit step.
			te, ok := As(e)
			require.True(t, ok)
			return te.Message()
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "took too long", out)
}

func TestWhen_UnhandledTag(t *testing.T) {
	t.Parallel()

	_, err := Match(tTimeout.New("t")).When(Cases{})
	require.Error(t, err)
	assert.True(t, IsUnhandledTag(err))

	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "TimeoutError", de.Key())

	// The classified input stays reachable behind the failure.
	assert.True(t, errors.Is(err, tTimeout))
}

func TestWhen_UnhandledError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Match(boom).When(Cases{KeyValue: Pipe})
	require.Error(t, err)
	assert.True(t, IsUnhandledError(err))
	assert.True(t, errors.Is(err, boom))
}

func TestWhen_RethrowReturnsClassifiedInput(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out, err := Match(boom).When(Cases{
		KeyValue: func(any) any { return "unused" },
		KeyError: Rethrow,
	})
	assert.Nil(t, out)
	assert.Same(t, boom, err, "rethrow must surface the input unwrapped")
}

func TestWhen_ValueDefaultsToPipe(t *testing.T) {
	t.Parallel()

	out, err := Match(42).When(Cases{})
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	t.Run("idempotent", func(t *testing.T) {
		again, err := Match(out).When(Cases{})
		require.NoError(t, err)
		assert.Equal(t, 42, again)
	})
}

func TestWhen_SyncProducerThrow(t *testing.T) {
	t.Parallel()

	t.Run("panicked error equals passing it directly", func(t *testing.T) {
		out, err := Match(func() (any, error) {
			panic(errors.New("x"))
		}).When(Cases{
			KeyError: func(e error) any { return e.Error() },
		})
		require.NoError(t, err)
		assert.Equal(t, "x", out)
	})

	t.Run("returned error takes the same path", func(t *testing.T) {
		out, err := Match(func() (any, error) {
			return nil, errors.New("x")
		}).When(Cases{
			KeyError: func(e error) any { return e.Error() },
		})
		require.NoError(t, err)
		assert.Equal(t, "x", out)
	})

	t.Run("producer failing with a tagged error dispatches on its tag", func(t *testing.T) {
		out, err := Match(func() (any, error) {
			return nil, tQuota.New("over")
		}).When(Cases{
			"QuotaError": func(error) any { return "quota" },
			KeyError:     Rethrow,
		})
		require.NoError(t, err)
		assert.Equal(t, "quota", out)
	})
}

func TestWhen_AsyncEquivalentToSync(t *testing.T) {
	t.Parallel()

	cases := Cases{KeyError: func(e error) any { return e.Error() }}

	syncOut, syncErr := Match(func() (any, error) { panic(errors.New("x")) }).When(cases)
	asyncOut, asyncErr := Match(Go(func() (any, error) { panic(errors.New("x")) })).When(cases)

	require.NoError(t, syncErr)
	require.NoError(t, asyncErr)
	assert.Equal(t, syncOut, asyncOut)
}

func TestWhen_AwaitsHandlerPending(t *testing.T) {
	t.Parallel()

	t.Run("handler settlement becomes the result", func(t *testing.T) {
		out, err := Match(tTimeout.New("t")).When(Cases{
			"TimeoutError": func(error) any {
				return Go(func() (any, error) { return "recovered", nil })
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "recovered", out)
	})

	t.Run("handler rejection becomes the failure", func(t *testing.T) {
		boom := errors.New("late boom")
		_, err := Match(42).When(Cases{
			KeyValue: func(any) any {
				return Go(func() (any, error) { return nil, boom })
			},
		})
		assert.Same(t, boom, err)
	})
}

func TestWhen_InvalidHandlerNamesKey(t *testing.T) {
	t.Parallel()

	_, err := Match(tTimeout.New("t")).When(Cases{"TimeoutError": 123})
	require.True(t, IsInvalidHandler(err))
	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "TimeoutError", de.Key())
}

func TestWhen_NilFunctionHandlerIsInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
		entry any
	}{
		{"nil func(error) any", tTimeout.New("t"), (func(error) any)(nil)},
		{"nil func(error)", tTimeout.New("t"), (func(error))(nil)},
		{"nil func(any) any", 42, (func(any) any)(nil)},
		{"nil func(any)", 42, (func(any))(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key := "TimeoutError"
			if _, isErr := tc.input.(error); !isErr {
				key = KeyValue
			}
			_, err := Match(tc.input).When(Cases{key: tc.entry})
			require.True(t, IsInvalidHandler(err))
			var de *DispatchError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, key, de.Key())
		})
	}
}

func TestWhen_ExactlyOneHandlerOnce(t *testing.T) {
	t.Parallel()

	var tagCalls, errCalls, valCalls int32
	_, err := Match(tTimeout.New("t")).When(Cases{
		"TimeoutError": func(error) any { atomic.AddInt32(&tagCalls, 1); return nil },
		KeyError:       func(error) any { atomic.AddInt32(&errCalls, 1); return nil },
		KeyValue:       func(any) any { atomic.AddInt32(&valCalls, 1); return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), tagCalls)
	assert.Equal(t, int32(0), errCalls)
	assert.Equal(t, int32(0), valCalls)
}

func TestMustWhen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Match(42).MustWhen(Cases{}))
	assert.Panics(t, func() {
		Match(tTimeout.New("t")).MustWhen(Cases{})
	})
}

func TestWhen_ConcurrentUnrelatedInvocations(t *testing.T) {
	t.Parallel()

	cases := Cases{
		"TimeoutError": func(error) any { return "timeout" },
		KeyError:       Ignore,
		KeyValue:       Pipe,
	}

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		i := i
		g.Go(func() error {
			var input any
			switch i % 3 {
			case 0:
				input = tTimeout.New("t")
			case 1:
				input = errors.New("plain")
			default:
				input = i
			}
			_, err := Match(input).When(cases)
			return err
		})
	}
	require.NoError(t, g.Wait())
}
