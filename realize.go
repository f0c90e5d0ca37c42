// realize.go — the deferment adapter: one realized value out of a ready
// value, a synchronous producer, or an asynchronous (pending) producer.
//
// Normalization rules:
//   • Ready value / settled Pending: used as-is.
//   • Sync producer: invoked exactly once; a returned error is used
//     directly; a panic value is used directly if already an error, else
//     wrapped with code producer_panic (value preserved, stack captured at
//     the recovery boundary).
//   • Async producer (Go): started immediately in its own goroutine; Wait
//     blocks until settlement; rejection wrapping is identical to the sync
//     case.
//
// A captured production failure is an ordinary error value: it re-enters
// normal classification, so it can be handled via a tag or "error" case
// rather than escaping the dispatcher raw.
//
// Cancellation is not a primitive here: once a producer starts, realization
// awaits natural completion. Callers needing cancellation must cancel the
// underlying work before handing it to Match.
package xgxmatch

// Producer is a synchronous zero-argument source of the match input.
// Returning a non-nil error settles the realization with that error.
type Producer func() (any, error)

// produce invokes fn once, converting a returned error or a panic into an
// error value fed back into classification.
func produce(fn Producer) (out any) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				out = err
				return
			}
			out = errProducerPanic(r)
		}
	}()
	v, err := fn()
	if err != nil {
		return err
	}
	return v
}

// Pending is an in-flight asynchronous production started by Go. It settles
// exactly once; any number of goroutines may Wait on it concurrently.
type Pending struct {
	done chan struct{}
	val  any
	err  error
}

// Go starts fn immediately in its own goroutine and returns its pending
// result. Pass the Pending to Match (or Wait on it directly); the producer
// is never invoked again.
func Go(fn Producer) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		out := produce(fn)
		if err, ok := out.(error); ok {
			p.err = err
			return
		}
		p.val = out
	}()
	return p
}

// Wait blocks until settlement and returns the produced value or the
// captured failure. It is safe to call any number of times; every call
// observes the same settlement.
func (p *Pending) Wait() (any, error) {
	<-p.done
	return p.val, p.err
}

// settled returns the realized value with a captured failure folded back in
// as an ordinary error value, ready for classification.
func (p *Pending) settled() any {
	v, err := p.Wait()
	if err != nil {
		return err
	}
	return v
}

// realize normalizes one input into one realized value. Producers are
// invoked exactly once; everything else passes through.
func realize(input any) any {
	switch src := input.(type) {
	case *Pending:
		if src == nil {
			return nil
		}
		return src.settled()
	case Producer:
		return produce(src)
	case func() (any, error):
		return produce(src)
	case func() any:
		return produce(func() (any, error) { return src(), nil })
	default:
		return input
	}
}
