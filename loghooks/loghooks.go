// Package loghooks logs document-cache Hooks events through log/slog, with
// optional sampling and key redaction.
package loghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	watsonspec "github.com/ibd1279/watsonspec"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	// Optional key redactor. Defaults to a SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
}

var _ watsonspec.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(key, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("watsonspec.self_heal",
		"key", h.redact(key),
		"reason", reason)
}

func (h *Hooks) StoreRejected(key string) {
	if h.l == nil {
		return
	}
	h.l.Warn("watsonspec.store_rejected",
		"key", h.redact(key))
}

func (h *Hooks) DecodeFallback(kind, want string) {
	if h.l == nil {
		return
	}
	h.l.Debug("watsonspec.decode_fallback",
		"kind", kind,
		"want", want)
}
