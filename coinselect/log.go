package coinselect

import "github.com/btcsuite/btclog"

// log is the package-level logger used by the selector and the BnB
// driver. Callers that want output must call UseLogger before invoking
// anything in this package.
var log btclog.Logger = btclog.Disabled

// UseLogger registers a logger to be used by this package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
