package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/auction"
	mAuction "github.com/bidhub/goapi/domain/auction/mocks"
	"github.com/bidhub/goapi/domain/notification"
	mNotification "github.com/bidhub/goapi/domain/notification/mocks"
	mQuery "github.com/bidhub/goapi/service/query/mocks"
)

type auctionUseCaseSuite struct {
	suite.Suite

	auctionRepo *mAuction.Repo
	bidRepo     *mAuction.BidRepo
	mediaRepo   *mAuction.MediaRepo
	emitter     *mNotification.Emitter
	query       *mQuery.Mongo

	im auction.Usecase
}

func (s *auctionUseCaseSuite) SetupTest() {
	s.auctionRepo = &mAuction.Repo{}
	s.bidRepo = &mAuction.BidRepo{}
	s.mediaRepo = &mAuction.MediaRepo{}
	s.emitter = &mNotification.Emitter{}
	s.query = &mQuery.Mongo{}

	s.im = New(&AuctionUseCaseCfg{
		AuctionRepo: s.auctionRepo,
		BidRepo:     s.bidRepo,
		MediaRepo:   s.mediaRepo,
		Emitter:     s.emitter,
		Query:       s.query,
	})
}

func TestAuctionUseCaseSuite(t *testing.T) {
	suite.Run(t, new(auctionUseCaseSuite))
}

func (s *auctionUseCaseSuite) mockTransactionPassthrough() {
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		})
}

func activeAuction(price float64) *auction.Auction {
	now := time.Now()
	return &auction.Auction{
		Id:              "a1",
		Title:           "vintage watch",
		Seller:          "seller-1",
		StartingPrice:   100,
		CurrentPrice:    price,
		IncrementAmount: 10,
		StartTime:       now.Add(-time.Hour),
		EndTime:         now.Add(time.Hour),
		Status:          auction.StatusActive,
	}
}

func (s *auctionUseCaseSuite) TestPlaceBidAccepted() {
	c := ctx.Background()
	a := activeAuction(100)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.mockTransactionPassthrough()
	s.auctionRepo.On("UpdatePrice", mock.Anything, domain.AuctionId("a1"), float64(100), float64(110), mock.Anything).Return(nil).Once()
	s.bidRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return b.AuctionId == "a1" && b.Bidder == "bidder-1" && b.Amount == 110
	})).Return(nil).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-1", 110)
	s.NoError(err)
	s.True(res.Accepted)
	s.Equal(float64(110), res.NewPrice)
	s.NotNil(res.Bid)
	s.auctionRepo.AssertExpectations(s.T())
	s.bidRepo.AssertExpectations(s.T())
}

func (s *auctionUseCaseSuite) TestPlaceBidTooLow() {
	c := ctx.Background()
	a := activeAuction(100)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-1", 105)
	s.NoError(err)
	s.False(res.Accepted)
	s.Equal(auction.RejectReasonTooLow, res.Reason)
	s.Equal(float64(110), res.MinimumBid)
	s.bidRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *auctionUseCaseSuite) TestPlaceBidExactMinimumAccepted() {
	c := ctx.Background()
	a := activeAuction(100)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.mockTransactionPassthrough()
	s.auctionRepo.On("UpdatePrice", mock.Anything, domain.AuctionId("a1"), float64(100), float64(110), mock.Anything).Return(nil).Once()
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-1", 110)
	s.NoError(err)
	s.True(res.Accepted)
}

func (s *auctionUseCaseSuite) TestPlaceBidClosedAuction() {
	c := ctx.Background()
	a := activeAuction(100)
	a.EndTime = time.Now().Add(-time.Minute)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-1", 110)
	s.NoError(err)
	s.False(res.Accepted)
	s.Equal(auction.RejectReasonClosed, res.Reason)
}

func (s *auctionUseCaseSuite) TestPlaceBidPendingAuction() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusPending

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-1", 110)
	s.NoError(err)
	s.False(res.Accepted)
	s.Equal(auction.RejectReasonClosed, res.Reason)
}

func (s *auctionUseCaseSuite) TestPlaceBidSelfBid() {
	c := ctx.Background()
	a := activeAuction(100)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	res, err := s.im.PlaceBid(c, "a1", "seller-1", 110)
	s.NoError(err)
	s.False(res.Accepted)
	s.Equal(auction.RejectReasonSelfBid, res.Reason)
}

// two bidders race, the loser revalidates against the committed price and is
// rejected with the recomputed minimum
func (s *auctionUseCaseSuite) TestPlaceBidLostRaceRejectedWithNewMinimum() {
	c := ctx.Background()

	stale := activeAuction(100)
	fresh := activeAuction(110)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(stale, nil).Once()
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(fresh, nil).Once()
	s.mockTransactionPassthrough()
	s.auctionRepo.On("UpdatePrice", mock.Anything, domain.AuctionId("a1"), float64(100), float64(110), mock.Anything).
		Return(domain.ErrConflict).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-2", 110)
	s.NoError(err)
	s.False(res.Accepted)
	s.Equal(auction.RejectReasonTooLow, res.Reason)
	s.Equal(float64(120), res.MinimumBid)
	s.auctionRepo.AssertExpectations(s.T())
}

// the snapshot said active but a concurrent end committed first: the guarded
// write misses, the reread sees the closed auction, and the bid is rejected
// instead of advancing the price of an ended auction
func (s *auctionUseCaseSuite) TestPlaceBidRejectedWhenAuctionEndsMidFlight() {
	c := ctx.Background()

	stale := activeAuction(100)
	closed := activeAuction(100)
	closed.Status = auction.StatusEnded

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(stale, nil).Once()
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(closed, nil).Once()
	s.mockTransactionPassthrough()
	s.auctionRepo.On("UpdatePrice", mock.Anything, domain.AuctionId("a1"), float64(100), float64(110), mock.Anything).
		Return(domain.ErrConflict).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-1", 110)
	s.NoError(err)
	s.False(res.Accepted)
	s.Equal(auction.RejectReasonClosed, res.Reason)
	s.bidRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.auctionRepo.AssertExpectations(s.T())
}

// the retried bid still meets the minimum after losing the race, so the
// second attempt commits at the newer observed price
func (s *auctionUseCaseSuite) TestPlaceBidLostRaceRetriesAndCommits() {
	c := ctx.Background()

	stale := activeAuction(100)
	fresh := activeAuction(110)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(stale, nil).Once()
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(fresh, nil).Once()
	s.mockTransactionPassthrough()
	s.auctionRepo.On("UpdatePrice", mock.Anything, domain.AuctionId("a1"), float64(100), float64(150), mock.Anything).
		Return(domain.ErrConflict).Once()
	s.auctionRepo.On("UpdatePrice", mock.Anything, domain.AuctionId("a1"), float64(110), float64(150), mock.Anything).
		Return(nil).Once()
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.PlaceBid(c, "a1", "bidder-2", 150)
	s.NoError(err)
	s.True(res.Accepted)
	s.Equal(float64(150), res.NewPrice)
	s.auctionRepo.AssertExpectations(s.T())
}

func (s *auctionUseCaseSuite) TestPlaceBidConflictExhausted() {
	c := ctx.Background()

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).
		Return(func(ctx.Ctx, domain.AuctionId) *auction.Auction {
			return activeAuction(100)
		}, nil)
	s.mockTransactionPassthrough()
	s.auctionRepo.On("UpdatePrice", mock.Anything, domain.AuctionId("a1"), float64(100), float64(500), mock.Anything).
		Return(domain.ErrConflict)

	_, err := s.im.PlaceBid(c, "a1", "bidder-1", 500)
	s.Equal(domain.ErrConflict, err)
	s.auctionRepo.AssertNumberOfCalls(s.T(), "FindOne", maxAdmissionRetries)
}

func (s *auctionUseCaseSuite) TestPlaceBidAuctionNotFound() {
	c := ctx.Background()

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("missing")).
		Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.PlaceBid(c, "missing", "bidder-1", 110)
	s.Equal(domain.ErrNotFound, err)
}

func (s *auctionUseCaseSuite) TestApprove() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusPending

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a1"), auction.StatusPending,
		mock.MatchedBy(func(p *auction.Patchable) bool {
			return p.Status != nil && *p.Status == auction.StatusActive
		})).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.MatchedBy(func(e *notification.Event) bool {
		return e.Type == notification.EventAuctionApproved && e.Recipient == "seller-1"
	})).Return(nil).Once()

	res, err := s.im.Approve(c, "a1", "admin-1")
	s.NoError(err)
	s.Equal(auction.StatusActive, res.Status)
	s.emitter.AssertExpectations(s.T())
}

func (s *auctionUseCaseSuite) TestApproveAlreadyActive() {
	c := ctx.Background()
	a := activeAuction(100)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	_, err := s.im.Approve(c, "a1", "admin-1")
	s.Equal(domain.ErrAlreadyProcessed, err)
	s.emitter.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

// the read said pending but another admin committed a transition in between
func (s *auctionUseCaseSuite) TestApproveLostRace() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusPending

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a1"), auction.StatusPending, mock.Anything).
		Return(domain.ErrConflict).Once()

	_, err := s.im.Approve(c, "a1", "admin-1")
	s.Equal(domain.ErrAlreadyProcessed, err)
	s.emitter.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *auctionUseCaseSuite) TestRejectRequiresReason() {
	c := ctx.Background()

	_, err := s.im.Reject(c, "a1", "admin-1", "")
	s.Equal(domain.ErrReasonRequired, err)
}

func (s *auctionUseCaseSuite) TestReject() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusPending

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a1"), auction.StatusPending,
		mock.MatchedBy(func(p *auction.Patchable) bool {
			return p.Status != nil && *p.Status == auction.StatusRejected
		})).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.MatchedBy(func(e *notification.Event) bool {
		return e.Type == notification.EventAuctionRejected && e.Reason == "prohibited item"
	})).Return(nil).Once()

	res, err := s.im.Reject(c, "a1", "admin-1", "prohibited item")
	s.NoError(err)
	s.Equal(auction.StatusRejected, res.Status)
	s.emitter.AssertExpectations(s.T())
}

func (s *auctionUseCaseSuite) TestWithdraw() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusPending

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.mockTransactionPassthrough()
	s.auctionRepo.On("Delete", mock.Anything, domain.AuctionId("a1")).Return(nil).Once()
	s.mediaRepo.On("RemoveAllByAuction", mock.Anything, domain.AuctionId("a1")).Return(int64(2), nil).Once()
	s.bidRepo.On("RemoveAllByAuction", mock.Anything, domain.AuctionId("a1")).Return(int64(0), nil).Once()

	s.NoError(s.im.Withdraw(c, "a1", "seller-1"))
	s.mediaRepo.AssertExpectations(s.T())
}

// a failing dependent cascade aborts the whole withdraw, the auction row must
// not be deleted ahead of its media and bids
func (s *auctionUseCaseSuite) TestWithdrawCascadeFailureKeepsAuction() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusPending

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.mockTransactionPassthrough()
	s.mediaRepo.On("RemoveAllByAuction", mock.Anything, domain.AuctionId("a1")).
		Return(int64(0), domain.ErrInternalServerError).Once()

	s.Error(s.im.Withdraw(c, "a1", "seller-1"))
	s.auctionRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *auctionUseCaseSuite) TestWithdrawNotSeller() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusPending

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	s.Equal(domain.ErrNotSeller, s.im.Withdraw(c, "a1", "someone-else"))
	s.auctionRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *auctionUseCaseSuite) TestWithdrawActiveAuction() {
	c := ctx.Background()
	a := activeAuction(100)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	s.Equal(domain.ErrInvalidTransition, s.im.Withdraw(c, "a1", "seller-1"))
}

func (s *auctionUseCaseSuite) TestEndEarlyResolvesWinner() {
	c := ctx.Background()
	a := activeAuction(120)
	winner := domain.UserId("bidder-2")
	highest := &auction.Bid{
		Id:        "b2",
		AuctionId: "a1",
		Bidder:    winner,
		Amount:    120,
		CreatedAt: time.Now().Add(-time.Minute),
	}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.mockTransactionPassthrough()
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("a1")).Return(highest, nil).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a1"), auction.StatusActive,
		mock.MatchedBy(func(p *auction.Patchable) bool {
			return p.Status != nil && *p.Status == auction.StatusEnded &&
				p.Winner != nil && *p.Winner == winner &&
				p.WinningBid != nil && *p.WinningBid == 120
		})).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.MatchedBy(func(e *notification.Event) bool {
		return e.Type == notification.EventAuctionEnded && e.Recipient == "seller-1"
	})).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.MatchedBy(func(e *notification.Event) bool {
		return e.Type == notification.EventAuctionWon && e.Recipient == winner
	})).Return(nil).Once()

	res, err := s.im.EndEarly(c, "a1", "seller-1")
	s.NoError(err)
	s.Equal(auction.StatusEnded, res.Status)
	s.Equal(&winner, res.Winner)
	s.emitter.AssertExpectations(s.T())
}

// winner resolution and the ending patch commit as one unit, so a bid
// admitted between them cannot leave a stale winner on the ended auction
func (s *auctionUseCaseSuite) TestEndEarlyResolvesWinnerInsideTransaction() {
	c := ctx.Background()
	a := activeAuction(150)
	highest := &auction.Bid{Id: "b3", AuctionId: "a1", Bidder: "bidder-3", Amount: 150}

	inTxn := false
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(cc ctx.Ctx, run func(ctx.Ctx) error) error {
			inTxn = true
			defer func() { inTxn = false }()
			return run(cc)
		})
	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("a1")).
		Run(func(mock.Arguments) { s.True(inTxn) }).
		Return(highest, nil).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a1"), auction.StatusActive,
		mock.MatchedBy(func(p *auction.Patchable) bool {
			return p.WinningBid != nil && *p.WinningBid == 150
		})).
		Run(func(mock.Arguments) { s.True(inTxn) }).
		Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.Anything).Return(nil)

	res, err := s.im.EndEarly(c, "a1", "seller-1")
	s.NoError(err)
	s.Equal(float64(150), *res.WinningBid)
	s.bidRepo.AssertExpectations(s.T())
	s.auctionRepo.AssertExpectations(s.T())
}

func (s *auctionUseCaseSuite) TestEndEarlyNoBids() {
	c := ctx.Background()
	a := activeAuction(100)

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.mockTransactionPassthrough()
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("a1")).Return(nil, domain.ErrNotFound).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a1"), auction.StatusActive,
		mock.MatchedBy(func(p *auction.Patchable) bool {
			return p.Winner == nil && p.WinningBid == nil
		})).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.MatchedBy(func(e *notification.Event) bool {
		return e.Type == notification.EventAuctionEnded && e.Winner == nil
	})).Return(nil).Once()

	res, err := s.im.EndEarly(c, "a1", "seller-1")
	s.NoError(err)
	s.Nil(res.Winner)
	s.emitter.AssertExpectations(s.T())
}

func (s *auctionUseCaseSuite) TestEndEarlyIdempotent() {
	c := ctx.Background()
	a := activeAuction(100)
	a.Status = auction.StatusEnded

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()

	_, err := s.im.EndEarly(c, "a1", "seller-1")
	s.Equal(domain.ErrAlreadyProcessed, err)
	s.emitter.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *auctionUseCaseSuite) TestSweepExpired() {
	c := ctx.Background()
	now := time.Now()

	a1 := activeAuction(100)
	a2 := activeAuction(200)
	a2.Id = "a2"
	expired := []*auction.Auction{a1, a2}

	s.auctionRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(expired, nil).Once()
	s.mockTransactionPassthrough()

	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("a1")).Return(nil, domain.ErrNotFound).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a1"), auction.StatusActive, mock.Anything).
		Return(nil).Once()

	// a2 was ended by a competing sweeper between the scan and the guard
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("a2")).Return(nil, domain.ErrNotFound).Once()
	s.auctionRepo.On("UpdateStatus", mock.Anything, domain.AuctionId("a2"), auction.StatusActive, mock.Anything).
		Return(domain.ErrConflict).Once()

	s.emitter.On("Emit", mock.Anything, mock.Anything).Return(nil)

	cnt, err := s.im.SweepExpired(c, now)
	s.NoError(err)
	s.Equal(1, cnt)
	s.emitter.AssertNumberOfCalls(s.T(), "Emit", 1)
}

func (s *auctionUseCaseSuite) TestCreate() {
	c := ctx.Background()

	s.auctionRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.Status == auction.StatusPending && a.CurrentPrice == a.StartingPrice && a.Id != ""
	})).Return(nil).Once()

	res, err := s.im.Create(c, &auction.Auction{
		Title:           "vintage watch",
		Seller:          "seller-1",
		StartingPrice:   100,
		IncrementAmount: 10,
		EndTime:         time.Now().Add(48 * time.Hour),
	})
	s.NoError(err)
	s.Equal(auction.StatusPending, res.Status)
	s.auctionRepo.AssertExpectations(s.T())
}

func (s *auctionUseCaseSuite) TestCreateRejectsPastEndTime() {
	c := ctx.Background()

	_, err := s.im.Create(c, &auction.Auction{
		Title:           "vintage watch",
		Seller:          "seller-1",
		StartingPrice:   100,
		IncrementAmount: 10,
		EndTime:         time.Now().Add(-time.Hour),
	})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *auctionUseCaseSuite) TestGetBidsByBidder() {
	c := ctx.Background()
	bids := []*auction.Bid{
		{Id: "b2", AuctionId: "a2", Bidder: "bidder-1", Amount: 90},
		{Id: "b1", AuctionId: "a1", Bidder: "bidder-1", Amount: 110},
	}

	s.bidRepo.On("FindAllByBidder", mock.Anything, domain.UserId("bidder-1"), int32(20)).
		Return(bids, nil).Once()

	res, err := s.im.GetBidsByBidder(c, "bidder-1", 20)
	s.NoError(err)
	s.Equal(bids, res)
}

func (s *auctionUseCaseSuite) TestGetBidsByBidderRequiresBidder() {
	c := ctx.Background()

	_, err := s.im.GetBidsByBidder(c, "", 20)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *auctionUseCaseSuite) TestGetSummary() {
	c := ctx.Background()
	a := activeAuction(150)
	reserve := float64(140)
	a.ReservePrice = &reserve
	highest := &auction.Bid{Id: "b1", AuctionId: "a1", Bidder: "bidder-1", Amount: 150}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.bidRepo.On("Count", mock.Anything, domain.AuctionId("a1")).Return(5, nil).Once()
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("a1")).Return(highest, nil).Once()

	res, err := s.im.GetSummary(c, "a1")
	s.NoError(err)
	s.Equal(5, res.BidCount)
	s.Equal(highest, res.HighestBid)
	s.True(res.ReserveMet)
}

func (s *auctionUseCaseSuite) TestGetSummaryReserveNotMet() {
	c := ctx.Background()
	a := activeAuction(120)
	reserve := float64(200)
	a.ReservePrice = &reserve
	highest := &auction.Bid{Id: "b1", AuctionId: "a1", Bidder: "bidder-1", Amount: 120}

	s.auctionRepo.On("FindOne", mock.Anything, domain.AuctionId("a1")).Return(a, nil).Once()
	s.bidRepo.On("Count", mock.Anything, domain.AuctionId("a1")).Return(2, nil).Once()
	s.bidRepo.On("FindHighest", mock.Anything, domain.AuctionId("a1")).Return(highest, nil).Once()

	res, err := s.im.GetSummary(c, "a1")
	s.NoError(err)
	s.False(res.ReserveMet)
}
