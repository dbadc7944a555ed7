package watsonspec

// Hooks are lightweight callbacks for high-signal document-cache events.
// Implementations MUST be cheap and non-blocking; do not perform I/O.
// If work may block, buffer it and drop on backpressure (best effort).
type Hooks interface {
	// SelfHeal fires when a cached entry failed to decode (corrupt bytes,
	// unknown kind, or a structural mismatch) and was evicted.
	SelfHeal(key, reason string)
	// StoreRejected fires when the backing Provider rejected a write, e.g.
	// under memory pressure.
	StoreRejected(key string)
	// DecodeFallback fires when a Coercer (Coercer.Int32, Coercer.Bool, ...)
	// is asked to convert a value of a Kind other than the one it decodes.
	// The bare ToX helpers never fire it.
	DecodeFallback(kind string, want string)
}

// NopHooks is a default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)       {}
func (NopHooks) StoreRejected(string)          {}
func (NopHooks) DecodeFallback(string, string) {}

// Multi returns a Hooks that fan-outs to all provided hooks, in order.
// Nil entries are ignored.
// Panics from a hook will propagate to the caller.
//
// example usage:
//
// logH := loghooks.New(slog.Default(), loghooks.Options{SelfHealEvery: 10})
// metH := promhooks.New(...)           // some kind of metrics adapter
//
// // fan-out
// mh := watsonspec.Multi(logH, metH)
//
// // single async queue for the whole fan-out
// hooks := asynchook.New(mh, 1, 1000)
func Multi(hs ...Hooks) Hooks {
	nn := make([]Hooks, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			nn = append(nn, h)
		}
	}
	return multiHooks(nn)
}

type multiHooks []Hooks

func (m multiHooks) SelfHeal(k, r string) {
	for _, h := range m {
		h.SelfHeal(k, r)
	}
}

func (m multiHooks) StoreRejected(k string) {
	for _, h := range m {
		h.StoreRejected(k)
	}
}

func (m multiHooks) DecodeFallback(kind, want string) {
	for _, h := range m {
		h.DecodeFallback(kind, want)
	}
}
