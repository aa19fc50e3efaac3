package sweeper

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/bidhub/goapi/base/backoff"
	bCtx "github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/base/metrics"
	"github.com/bidhub/goapi/domain/auction"
)

// maxConsecutiveFailures bounds retried sweeps before the sweeper gives up
// and reports on ErrorCh.
const maxConsecutiveFailures = 5

type Cfg struct {
	Auction  auction.Usecase
	Interval time.Duration
	// Backoff paces retries after a failed sweep. Defaults to exponential
	// 1s..1m when nil.
	Backoff *backoff.Backoff
	ErrorCh chan<- error
}

// Sweeper periodically ends active auctions whose end time has passed.
// Multiple sweepers can run against the same store, the lifecycle guards
// resolve which one ends each auction.
type Sweeper struct {
	auction   auction.Usecase
	interval  time.Duration
	backoff   *backoff.Backoff
	errorCh   chan<- error
	stoppedCh chan interface{}
	met       metrics.Service
}

func New(cfg *Cfg) *Sweeper {
	bo := cfg.Backoff
	if bo == nil {
		bo = backoff.NewExponential(time.Second, time.Minute)
	}
	return &Sweeper{
		auction:   cfg.Auction,
		interval:  cfg.Interval,
		backoff:   bo,
		errorCh:   cfg.ErrorCh,
		stoppedCh: make(chan interface{}),
		met:       metrics.New("sweeper"),
	}
}

func (s *Sweeper) Start(ctx bCtx.Ctx) {
	go s.loop(ctx)
}

func (s *Sweeper) Wait() {
	<-s.stoppedCh
}

func (s *Sweeper) loop(ctx bCtx.Ctx) {
	defer close(s.stoppedCh)

	// first pass runs immediately to catch auctions that expired while the
	// process was down
	nextTick := time.Second * 0
	failures := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(nextTick):
			ended, err := s.auction.SweepExpired(ctx, time.Now())
			if err != nil {
				failures++
				s.met.BumpSum("sweep.err", 1)
				ctx.WithFields(log.Fields{
					"err":      err,
					"failures": failures,
				}).Error("auction.SweepExpired failed")
				if failures >= maxConsecutiveFailures {
					s.errorCh <- xerrors.Errorf("failed to sweep expired auctions: %w", err)
					return
				}
				if s.backoff.Backoff(ctx) != nil {
					return
				}
				nextTick = time.Second * 0
				continue
			}
			failures = 0
			s.backoff.Reset()
			if ended > 0 {
				ctx.WithField("ended", ended).Info("swept expired auctions")
			}
			s.met.BumpSum("sweep.ended", float64(ended))
			nextTick = s.interval
		}
	}
}
