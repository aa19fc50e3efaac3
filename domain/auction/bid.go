package auction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
)

// Bid is append-only. Once admitted it is never mutated; the only deletion
// path is the cascade when a never-activated auction is withdrawn.
type Bid struct {
	Id        domain.BidId     `json:"id" bson:"id"`
	AuctionId domain.AuctionId `json:"auctionId" bson:"auctionId"`
	Bidder    domain.UserId    `json:"bidder" bson:"bidder"`
	Amount    float64          `json:"amount" bson:"amount"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

type RejectReason string

const (
	RejectReasonTooLow  RejectReason = "bidTooLow"
	RejectReasonClosed  RejectReason = "auctionClosed"
	RejectReasonSelfBid RejectReason = "selfBidForbidden"
)

// BidResult is the admission outcome. Rejections carry the true minimum next
// bid recomputed against the committed price.
type BidResult struct {
	Accepted   bool         `json:"accepted"`
	Bid        *Bid         `json:"bid,omitempty"`
	NewPrice   float64      `json:"newPrice,omitempty"`
	Reason     RejectReason `json:"reason,omitempty"`
	MinimumBid float64      `json:"minimumBid,omitempty"`
}

// MinimumNextBid computes currentPrice + increment with decimal arithmetic so
// repeated float additions cannot drift the threshold.
func MinimumNextBid(currentPrice, increment float64) float64 {
	min, _ := decimal.NewFromFloat(currentPrice).Add(decimal.NewFromFloat(increment)).Float64()
	return min
}

// MeetsMinimum reports whether amount covers currentPrice + increment.
func MeetsMinimum(amount, currentPrice, increment float64) bool {
	min := decimal.NewFromFloat(currentPrice).Add(decimal.NewFromFloat(increment))
	return decimal.NewFromFloat(amount).Cmp(min) >= 0
}

type BidRepo interface {
	Create(c ctx.Ctx, value *Bid) error
	// FindHighest returns the winning candidate: highest amount, earliest
	// created at that amount. Returns domain.ErrNotFound when the auction
	// has no bids.
	FindHighest(c ctx.Ctx, auctionId domain.AuctionId) (*Bid, error)
	// Search returns the newest bids first, up to limit (0 for all).
	Search(c ctx.Ctx, auctionId domain.AuctionId, limit int32) ([]*Bid, error)
	// FindAllByBidder returns the bidder's bids across auctions, newest
	// first, up to limit (0 for all).
	FindAllByBidder(c ctx.Ctx, bidder domain.UserId, limit int32) ([]*Bid, error)
	Count(c ctx.Ctx, auctionId domain.AuctionId) (int, error)
	RemoveAllByAuction(c ctx.Ctx, auctionId domain.AuctionId) (int64, error)
}
