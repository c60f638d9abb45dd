// Package logging hands out logrus entries tagged with the emitting component.
package logging

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var base atomic.Pointer[logrus.Logger]

func init() {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	base.Store(l)
}

// SetLogger replaces the logger every component entry is derived from.
// A nil logger is ignored.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		base.Store(l)
	}
}

// Logger returns the current base logger.
func Logger() *logrus.Logger { return base.Load() }

// For returns an entry carrying the component field.
func For(component string) *logrus.Entry {
	return base.Load().WithField("component", component)
}
