// File: controllers/controller.go
package controllers

import (
	"context"
	"time"

	"nexzen-backend/services"

	"github.com/sony/gobreaker/v2"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerState reports the state of the media upload circuit breaker.
type BreakerState interface {
	State() gobreaker.State
}

// Controller holds the dependencies shared by every handler.
type Controller struct {
	Products *services.ProductService
	DB       Pinger
	Media    BreakerState
	Timeout  time.Duration
}

func (ctrl *Controller) timeout() time.Duration {
	if ctrl.Timeout <= 0 {
		return 30 * time.Second
	}
	return ctrl.Timeout
}
