package bytepress

import "go.uber.org/zap"

// logger receives per-call diagnostics. Results never depend on it;
// failures are reported exclusively through status codes.
var logger = zap.NewNop()

// SetLogger installs a logger for gateway diagnostics. Passing nil
// restores the no-op logger.
//
// Not synchronized with in-flight calls; install it during process
// setup, before the gateway starts serving.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
