package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/auction"
	"github.com/bidhub/goapi/domain/notification"
	"github.com/bidhub/goapi/service/query"
)

// maxAdmissionRetries bounds the reread-revalidate loop when concurrent
// admissions keep invalidating the observed price.
const maxAdmissionRetries = 3

// sweepWorkers caps how many expired auctions get finalized concurrently
// within one sweep pass.
const sweepWorkers = 4

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	BidRepo     auction.BidRepo
	MediaRepo   auction.MediaRepo
	Emitter     notification.Emitter
	Query       query.Mongo
}

type impl struct {
	auctionRepo auction.Repo
	bidRepo     auction.BidRepo
	mediaRepo   auction.MediaRepo
	emitter     notification.Emitter
	q           query.Mongo
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	return &impl{
		auctionRepo: cfg.AuctionRepo,
		bidRepo:     cfg.BidRepo,
		mediaRepo:   cfg.MediaRepo,
		emitter:     cfg.Emitter,
		q:           cfg.Query,
	}
}

func (im *impl) Create(c ctx.Ctx, value *auction.Auction) (*auction.Auction, error) {
	now := time.Now()

	if value.Title == "" || value.StartingPrice <= 0 || value.IncrementAmount <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if !value.EndTime.After(now) {
		return nil, domain.ErrBadParamInput
	}

	value.Id = domain.AuctionId(uuid.New().String())
	value.Status = auction.StatusPending
	value.CurrentPrice = value.StartingPrice
	value.Winner = nil
	value.WinningBid = nil
	value.CreatedAt = now
	value.UpdatedAt = now
	if value.StartTime.IsZero() {
		value.StartTime = now
	}

	if err := im.auctionRepo.Create(c, value); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"auction": *value,
		}).Error("failed to auctionRepo.Create")
		return nil, err
	}
	return value, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptions) ([]*auction.Auction, error) {
	res, err := im.auctionRepo.FindAll(c, opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to auctionRepo.FindAll")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetSummary(c ctx.Ctx, id domain.AuctionId) (*auction.Summary, error) {
	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	cnt, err := im.bidRepo.Count(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to bidRepo.Count")
		return nil, err
	}

	highest, err := im.bidRepo.FindHighest(c, id)
	if err != nil && err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to bidRepo.FindHighest")
		return nil, err
	}

	reserveMet := false
	if highest != nil {
		reserveMet = a.ReservePrice == nil || highest.Amount >= *a.ReservePrice
	}

	return &auction.Summary{
		Auction:    a,
		BidCount:   cnt,
		HighestBid: highest,
		ReserveMet: reserveMet,
	}, nil
}

func (im *impl) GetBidHistory(c ctx.Ctx, id domain.AuctionId, limit int32) ([]*auction.Bid, error) {
	if _, err := im.auctionRepo.FindOne(c, id); err != nil {
		return nil, err
	}

	bids, err := im.bidRepo.Search(c, id, limit)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to bidRepo.Search")
		return nil, err
	}
	return bids, nil
}

func (im *impl) GetBidsByBidder(c ctx.Ctx, bidder domain.UserId, limit int32) ([]*auction.Bid, error) {
	if bidder.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	bids, err := im.bidRepo.FindAllByBidder(c, bidder, limit)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"bidder": bidder,
		}).Error("failed to bidRepo.FindAllByBidder")
		return nil, err
	}
	return bids, nil
}

// PlaceBid admits a bid against the observed price. The price advance and the
// bid insert commit atomically; a conflicting admission rereads and
// revalidates against the new price, so a losing bidder is rejected with the
// true current minimum instead of silently overwriting the winner.
func (im *impl) PlaceBid(c ctx.Ctx, id domain.AuctionId, bidder domain.UserId, amount float64) (*auction.BidResult, error) {
	if bidder.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	for attempt := 0; attempt < maxAdmissionRetries; attempt++ {
		a, err := im.auctionRepo.FindOne(c, id)
		if err != nil {
			return nil, err
		}

		now := time.Now()

		if !a.Open(now) {
			return &auction.BidResult{
				Accepted: false,
				Reason:   auction.RejectReasonClosed,
			}, nil
		}

		if a.Seller.Equals(bidder) {
			return &auction.BidResult{
				Accepted: false,
				Reason:   auction.RejectReasonSelfBid,
			}, nil
		}

		if !auction.MeetsMinimum(amount, a.CurrentPrice, a.IncrementAmount) {
			return &auction.BidResult{
				Accepted:   false,
				Reason:     auction.RejectReasonTooLow,
				MinimumBid: auction.MinimumNextBid(a.CurrentPrice, a.IncrementAmount),
			}, nil
		}

		bid := &auction.Bid{
			Id:        domain.BidId(uuid.New().String()),
			AuctionId: id,
			Bidder:    bidder,
			Amount:    amount,
			CreatedAt: now,
		}

		err = im.q.RunWithTransaction(c, func(txCtx ctx.Ctx) error {
			// the guarded patch re-verifies active status and end time at
			// commit, so a close racing this admission loses exactly one side
			if err := im.auctionRepo.UpdatePrice(txCtx, id, a.CurrentPrice, amount, now); err != nil {
				return err
			}
			return im.bidRepo.Create(txCtx, bid)
		})
		if err == domain.ErrConflict {
			// someone committed first, reread and revalidate
			continue
		} else if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": id,
				"bidder":    bidder,
			}).Error("failed to commit bid")
			return nil, err
		}

		return &auction.BidResult{
			Accepted: true,
			Bid:      bid,
			NewPrice: amount,
		}, nil
	}

	return nil, domain.ErrConflict
}

func (im *impl) Approve(c ctx.Ctx, id domain.AuctionId, admin domain.UserId) (*auction.Auction, error) {
	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	if a.Status != auction.StatusPending {
		if a.Status == auction.StatusActive {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	active := auction.StatusActive
	patch := &auction.Patchable{
		Status:    &active,
		UpdatedAt: &now,
	}
	if err := im.auctionRepo.UpdateStatus(c, id, auction.StatusPending, patch); err != nil {
		if err == domain.ErrConflict {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, err
	}

	c.WithFields(log.Fields{
		"auctionId": id,
		"admin":     admin,
	}).Info("auction approved")

	im.emit(c, &notification.Event{
		Type:         notification.EventAuctionApproved,
		AuctionId:    id,
		AuctionTitle: a.Title,
		Recipient:    a.Seller,
	})

	a.Status = auction.StatusActive
	a.UpdatedAt = now
	return a, nil
}

func (im *impl) Reject(c ctx.Ctx, id domain.AuctionId, admin domain.UserId, reason string) (*auction.Auction, error) {
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}

	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	if a.Status != auction.StatusPending {
		if a.Status == auction.StatusRejected {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	rejected := auction.StatusRejected
	patch := &auction.Patchable{
		Status:    &rejected,
		UpdatedAt: &now,
	}
	if err := im.auctionRepo.UpdateStatus(c, id, auction.StatusPending, patch); err != nil {
		if err == domain.ErrConflict {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, err
	}

	c.WithFields(log.Fields{
		"auctionId": id,
		"admin":     admin,
		"reason":    reason,
	}).Info("auction rejected")

	im.emit(c, &notification.Event{
		Type:         notification.EventAuctionRejected,
		AuctionId:    id,
		AuctionTitle: a.Title,
		Recipient:    a.Seller,
		Reason:       reason,
	})

	a.Status = auction.StatusRejected
	a.UpdatedAt = now
	return a, nil
}

// Withdraw removes an auction that never went live. Activated auctions have
// bidder commitments and cannot be withdrawn.
func (im *impl) Withdraw(c ctx.Ctx, id domain.AuctionId, seller domain.UserId) error {
	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return err
	}

	if !a.Seller.Equals(seller) {
		return domain.ErrNotSeller
	}

	if a.Status != auction.StatusPending {
		return domain.ErrInvalidTransition
	}

	// dependents go first so a partial failure can never strand media or
	// bid rows behind a deleted auction
	err = im.q.RunWithTransaction(c, func(txCtx ctx.Ctx) error {
		if _, err := im.mediaRepo.RemoveAllByAuction(txCtx, id); err != nil {
			return err
		}
		if _, err := im.bidRepo.RemoveAllByAuction(txCtx, id); err != nil {
			return err
		}
		return im.auctionRepo.Delete(txCtx, id)
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to withdraw auction")
		return err
	}
	return nil
}

func (im *impl) EndEarly(c ctx.Ctx, id domain.AuctionId, seller domain.UserId) (*auction.Auction, error) {
	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	if !a.Seller.Equals(seller) {
		return nil, domain.ErrNotSeller
	}

	if a.Status != auction.StatusActive {
		if a.Status == auction.StatusEnded {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, domain.ErrInvalidTransition
	}

	return im.endAuction(c, a, time.Now())
}

func (im *impl) SweepExpired(c ctx.Ctx, now time.Time) (int, error) {
	expired, err := im.auctionRepo.FindAll(c,
		auction.WithStatus(auction.StatusActive),
		auction.WithEndTimeBefore(now),
	)
	if err != nil {
		return 0, err
	}

	if len(expired) == 0 {
		return 0, nil
	}

	b := goroutines.NewBatch(sweepWorkers, goroutines.WithBatchSize(len(expired)))
	defer b.Close()
	for _, a := range expired {
		a := a
		b.Queue(func() (interface{}, error) {
			if _, err := im.endAuction(c, a, a.EndTime); err != nil {
				if err != domain.ErrAlreadyProcessed {
					c.WithFields(log.Fields{
						"err":       err,
						"auctionId": a.Id,
					}).Error("failed to end expired auction")
				}
				return nil, err
			}
			return nil, nil
		})
	}
	b.QueueComplete()

	ended := 0
	for ret := range b.Results() {
		if ret.Error() == nil {
			ended++
		}
	}
	return ended, nil
}

// endAuction applies the single active-to-ended transition. The status guard
// makes the operation idempotent under races: whichever caller loses the
// guard gets ErrAlreadyProcessed and must not re-resolve the winner or
// re-emit events. Winner resolution and the guarded patch share one
// transaction, so a bid committing between them aborts one side instead of
// ending the auction with a stale winner.
func (im *impl) endAuction(c ctx.Ctx, a *auction.Auction, endedAt time.Time) (*auction.Auction, error) {
	var highest *auction.Bid
	var now time.Time
	err := im.q.RunWithTransaction(c, func(txCtx ctx.Ctx) error {
		h, err := im.bidRepo.FindHighest(txCtx, a.Id)
		if err != nil && err != domain.ErrNotFound {
			txCtx.WithFields(log.Fields{
				"err":       err,
				"auctionId": a.Id,
			}).Error("failed to bidRepo.FindHighest")
			return err
		}
		highest = h

		now = time.Now()
		endedStatus := auction.StatusEnded
		patch := &auction.Patchable{
			Status:    &endedStatus,
			EndTime:   &endedAt,
			UpdatedAt: &now,
		}
		if highest != nil {
			patch.Winner = &highest.Bidder
			patch.WinningBid = &highest.Amount
		}

		return im.auctionRepo.UpdateStatus(txCtx, a.Id, auction.StatusActive, patch)
	})
	if err != nil {
		if err == domain.ErrConflict {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, err
	}

	endedEvent := &notification.Event{
		Type:         notification.EventAuctionEnded,
		AuctionId:    a.Id,
		AuctionTitle: a.Title,
		Recipient:    a.Seller,
	}
	if highest != nil {
		endedEvent.Winner = &highest.Bidder
		endedEvent.Amount = &highest.Amount
	}
	im.emit(c, endedEvent)

	if highest != nil {
		im.emit(c, &notification.Event{
			Type:         notification.EventAuctionWon,
			AuctionId:    a.Id,
			AuctionTitle: a.Title,
			Recipient:    highest.Bidder,
			Winner:       &highest.Bidder,
			Amount:       &highest.Amount,
		})
	}

	a.Status = auction.StatusEnded
	a.EndTime = endedAt
	a.UpdatedAt = now
	if highest != nil {
		a.Winner = &highest.Bidder
		a.WinningBid = &highest.Amount
	}
	return a, nil
}

// emit never fails the calling transition. Notification delivery is
// best-effort at this boundary.
func (im *impl) emit(c ctx.Ctx, event *notification.Event) {
	if err := im.emitter.Emit(c, event); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": *event,
		}).Error("failed to emitter.Emit")
	}
}
