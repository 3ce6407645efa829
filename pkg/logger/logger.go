// Package logger builds the structured zap.Logger used throughout pgnbook.
package logger

import "go.uber.org/zap"

// New builds a production zap.Logger unless debug is set, in which case it
// builds a development logger (human-readable console encoding, debug level
// enabled) - the same production/development split zap's own constructors
// exist for.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
