package api

import (
	"net/http"
	"time"
)

// Options configures the handlers.
type Options struct {
	// ValidationStatus is the status of validation problem responses,
	// 400 or 422. Zero means 400.
	ValidationStatus int

	// Now returns the current time, used to derive author ages.
	// Nil means time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ValidationStatus == 0 {
		o.ValidationStatus = http.StatusBadRequest
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
