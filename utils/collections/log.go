package collections

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{"component": "collections"})

// SetLogger replaces the entry used for container diagnostics.
func SetLogger(entry *log.Entry) {
	if entry == nil {
		return
	}
	logger = entry
}

func warn(op string, v any, msg string) {
	logger.WithFields(log.Fields{"op": op, "value": v}).Warn(msg)
}
