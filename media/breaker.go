package media

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerUploader stops calling the media host after repeated failures and
// fails fast until the breaker half-opens again.
type BreakerUploader struct {
	next Uploader
	cb   *gobreaker.CircuitBreaker[Result]
}

func NewBreakerUploader(name string, next Uploader) *BreakerUploader {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	// A caller giving up, such as a sibling slot failing first, says nothing
	// about the media host.
	st.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, context.Canceled)
	}

	return &BreakerUploader{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[Result](st),
	}
}

func (u *BreakerUploader) Upload(ctx context.Context, localPath string) (Result, error) {
	return u.cb.Execute(func() (Result, error) {
		return u.next.Upload(ctx, localPath)
	})
}

// State reports the breaker state, mostly for health output.
func (u *BreakerUploader) State() gobreaker.State {
	return u.cb.State()
}
