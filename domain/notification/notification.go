package notification

import (
	"time"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
)

type EventType string

const (
	EventAuctionApproved EventType = "auction.approved"
	EventAuctionRejected EventType = "auction.rejected"
	EventAuctionEnded    EventType = "auction.ended"
	EventAuctionWon      EventType = "auction.won"
)

// Event is a domain event raised at a lifecycle commit boundary. Delivery
// beyond the broker is someone else's problem; the lifecycle guards make
// sure each event is raised at most once per transition.
type Event struct {
	Type         EventType        `json:"type"`
	AuctionId    domain.AuctionId `json:"auctionId"`
	AuctionTitle string           `json:"auctionTitle"`
	Recipient    domain.UserId    `json:"recipient"`
	Winner       *domain.UserId   `json:"winner,omitempty"`
	Amount       *float64         `json:"amount,omitempty"`
	Reason       string           `json:"reason,omitempty"`
}

// Notification is the per-user inbox document backing the notification bell
type Notification struct {
	UserId    domain.UserId `json:"userId" bson:"userId"`
	Message   string        `json:"message" bson:"message"`
	Link      string        `json:"link" bson:"link"`
	IsRead    bool          `json:"isRead" bson:"isRead"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	Create(c ctx.Ctx, value *Notification) error
	FindAllByUser(c ctx.Ctx, userId domain.UserId, limit int32) ([]*Notification, error)
}

type Usecase interface {
	GetInbox(c ctx.Ctx, userId domain.UserId, limit int32) ([]*Notification, error)
}

// Emitter hands events to the delivery collaborators. Fire and forget:
// implementations do not retry, at-least-once to the broker is acceptable.
type Emitter interface {
	Emit(c ctx.Ctx, event *Event) error
}
