package sweeper

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bidhub/goapi/base/backoff"
	bCtx "github.com/bidhub/goapi/base/ctx"
	mAuction "github.com/bidhub/goapi/domain/auction/mocks"
)

func TestSweeperRunsUntilCancelled(t *testing.T) {
	req := require.New(t)

	auctionUC := &mAuction.Usecase{}
	auctionUC.On("SweepExpired", mock.Anything, mock.Anything).Return(2, nil)

	errorCh := make(chan error, 1)
	s := New(&Cfg{
		Auction:  auctionUC,
		Interval: 10 * time.Millisecond,
		ErrorCh:  errorCh,
	})

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	s.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	s.Wait()

	req.Empty(errorCh)
	auctionUC.AssertCalled(t, "SweepExpired", mock.Anything, mock.Anything)
}

func TestSweeperStopsOnError(t *testing.T) {
	req := require.New(t)

	auctionUC := &mAuction.Usecase{}
	auctionUC.On("SweepExpired", mock.Anything, mock.Anything).Return(0, fmt.Errorf("mongo down"))

	errorCh := make(chan error, 1)
	s := New(&Cfg{
		Auction:  auctionUC,
		Interval: 10 * time.Millisecond,
		Backoff:  backoff.NewExponential(time.Millisecond, 5*time.Millisecond),
		ErrorCh:  errorCh,
	})

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()
	s.Start(ctx)
	s.Wait()

	select {
	case err := <-errorCh:
		req.EqualError(err, "failed to sweep expired auctions: mongo down")
	default:
		req.Fail("expected error on errorCh")
	}
	auctionUC.AssertNumberOfCalls(t, "SweepExpired", maxConsecutiveFailures)
}
