// Package logrus adapts a *logrus.Entry to the root package's Logger
// interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	watsonspec "github.com/ibd1279/watsonspec"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ watsonspec.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f watsonspec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f watsonspec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f watsonspec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f watsonspec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
