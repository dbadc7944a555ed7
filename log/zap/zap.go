// Package zap adapts a *zap.Logger to the root package's Logger interface.
package zap

import (
	"go.uber.org/zap"

	watsonspec "github.com/ibd1279/watsonspec"
)

type ZapLogger struct{ L *zap.Logger }

var _ watsonspec.Logger = ZapLogger{}

func (z ZapLogger) Debug(msg string, f watsonspec.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f watsonspec.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f watsonspec.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f watsonspec.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f watsonspec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
