package auction

import (
	"time"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
)

// Status is the lifecycle state of an auction.
// StatusCancelled exists in stored data for schema parity with older records
// but no transition produces it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) Terminal() bool {
	return s == StatusEnded || s == StatusRejected || s == StatusCancelled
}

type Auction struct {
	Id              domain.AuctionId `json:"id" bson:"id"`
	Title           string           `json:"title" bson:"title"`
	Description     string           `json:"description" bson:"description"`
	CategoryId      string           `json:"categoryId" bson:"categoryId"`
	Seller          domain.UserId    `json:"seller" bson:"seller"`
	StartingPrice   float64          `json:"startingPrice" bson:"startingPrice"`
	CurrentPrice    float64          `json:"currentPrice" bson:"currentPrice"`
	ReservePrice    *float64         `json:"reservePrice,omitempty" bson:"reservePrice,omitempty"`
	IncrementAmount float64          `json:"incrementAmount" bson:"incrementAmount"`
	StartTime       time.Time        `json:"startTime" bson:"startTime"`
	EndTime         time.Time        `json:"endTime" bson:"endTime"`
	Status          Status           `json:"status" bson:"status"`
	Winner          *domain.UserId   `json:"winner,omitempty" bson:"winner,omitempty"`
	WinningBid      *float64         `json:"winningBid,omitempty" bson:"winningBid,omitempty"`
	Featured        bool             `json:"featured" bson:"featured"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// Open reports whether the auction can accept bids at ts. The time check is
// deliberately independent of status so an expired-but-not-yet-swept auction
// never admits a late bid.
func (a *Auction) Open(ts time.Time) bool {
	return a.Status == StatusActive && ts.Before(a.EndTime)
}

// Patchable carries the mutable auction fields for guarded updates
type Patchable struct {
	Status     *Status        `bson:"status,omitempty"`
	EndTime    *time.Time     `bson:"endTime,omitempty"`
	Winner     *domain.UserId `bson:"winner,omitempty"`
	WinningBid *float64       `bson:"winningBid,omitempty"`
	UpdatedAt  *time.Time     `bson:"updatedAt,omitempty"`
}

type findAllOptions struct {
	SortBy        *string        `bson:"-"`
	Offset        *int32         `bson:"-"`
	Limit         *int32         `bson:"-"`
	Status        *Status        `bson:"status,omitempty"`
	Seller        *domain.UserId `bson:"seller,omitempty"`
	CategoryId    *string        `bson:"categoryId,omitempty"`
	Featured      *bool          `bson:"featured,omitempty"`
	EndTimeBefore *time.Time     `bson:"-"`
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSort(sortBy string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.SortBy = &sortBy
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithStatus(status Status) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithSeller(seller domain.UserId) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func WithCategoryId(categoryId string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.CategoryId = &categoryId
		return nil
	}
}

func WithFeatured(featured bool) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Featured = &featured
		return nil
	}
}

// WithEndTimeBefore selects auctions whose end time has passed ts.
func WithEndTimeBefore(ts time.Time) FindAllOptions {
	return func(options *findAllOptions) error {
		options.EndTimeBefore = &ts
		return nil
	}
}

// Summary is the read model behind the auction details page
type Summary struct {
	Auction    *Auction `json:"auction"`
	BidCount   int      `json:"bidCount"`
	HighestBid *Bid     `json:"highestBid,omitempty"`
	ReserveMet bool     `json:"reserveMet"`
}

type Repo interface {
	Create(c ctx.Ctx, value *Auction) error
	FindOne(c ctx.Ctx, id domain.AuctionId) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Auction, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	// UpdatePrice sets currentPrice to `to` only if the stored auction is
	// still active with endTime after asOf and currentPrice still equals
	// `from`. Returns domain.ErrConflict when another admission committed
	// first or the auction left the biddable state.
	UpdatePrice(c ctx.Ctx, id domain.AuctionId, from, to float64, asOf time.Time) error
	// UpdateStatus applies patch only if the stored status still equals
	// `from`. Returns domain.ErrConflict when the auction has already left
	// the expected state.
	UpdateStatus(c ctx.Ctx, id domain.AuctionId, from Status, patch *Patchable) error
	Delete(c ctx.Ctx, id domain.AuctionId) error
}

type Usecase interface {
	Create(c ctx.Ctx, value *Auction) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Auction, error)
	GetSummary(c ctx.Ctx, id domain.AuctionId) (*Summary, error)
	GetBidHistory(c ctx.Ctx, id domain.AuctionId, limit int32) ([]*Bid, error)
	// GetBidsByBidder lists the bids a user has placed, newest first.
	GetBidsByBidder(c ctx.Ctx, bidder domain.UserId, limit int32) ([]*Bid, error)

	PlaceBid(c ctx.Ctx, id domain.AuctionId, bidder domain.UserId, amount float64) (*BidResult, error)

	Approve(c ctx.Ctx, id domain.AuctionId, admin domain.UserId) (*Auction, error)
	Reject(c ctx.Ctx, id domain.AuctionId, admin domain.UserId, reason string) (*Auction, error)
	Withdraw(c ctx.Ctx, id domain.AuctionId, seller domain.UserId) error
	EndEarly(c ctx.Ctx, id domain.AuctionId, seller domain.UserId) (*Auction, error)
	// SweepExpired ends every active auction whose end time has passed and
	// returns the number of auctions transitioned.
	SweepExpired(c ctx.Ctx, now time.Time) (int, error)
}
