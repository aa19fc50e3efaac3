package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/notification"
	"github.com/bidhub/goapi/service/messaging"
)

type NotificationUseCaseCfg struct {
	Repo      notification.Repo
	Publisher messaging.Publisher
}

type impl struct {
	repo      notification.Repo
	publisher messaging.Publisher
}

func New(cfg *NotificationUseCaseCfg) notification.Usecase {
	return &impl{
		repo:      cfg.Repo,
		publisher: cfg.Publisher,
	}
}

// NewEmitter shares the implementation with the inbox usecase. An emitted
// event lands in the recipient's inbox and on the broker.
func NewEmitter(cfg *NotificationUseCaseCfg) notification.Emitter {
	return &impl{
		repo:      cfg.Repo,
		publisher: cfg.Publisher,
	}
}

func (im *impl) GetInbox(c ctx.Ctx, userId domain.UserId, limit int32) ([]*notification.Notification, error) {
	res, err := im.repo.FindAllByUser(c, userId, limit)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"userId": userId,
		}).Error("failed to repo.FindAllByUser")
		return nil, err
	}
	return res, nil
}

func (im *impl) Emit(c ctx.Ctx, event *notification.Event) error {
	doc := &notification.Notification{
		UserId:    event.Recipient,
		Message:   renderMessage(event),
		Link:      fmt.Sprintf("/auctions/%s", event.AuctionId),
		CreatedAt: time.Now(),
	}
	if err := im.repo.Create(c, doc); err != nil {
		return err
	}

	if im.publisher != nil {
		body, err := json.Marshal(event)
		if err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"event": *event,
			}).Error("failed to json.Marshal")
			return err
		}
		if err := im.publisher.Publish(c, string(event.Type), body); err != nil {
			return err
		}
	}
	return nil
}

func renderMessage(event *notification.Event) string {
	switch event.Type {
	case notification.EventAuctionApproved:
		return fmt.Sprintf("Your auction %q has been approved and is now live", event.AuctionTitle)
	case notification.EventAuctionRejected:
		return fmt.Sprintf("Your auction %q has been rejected: %s", event.AuctionTitle, event.Reason)
	case notification.EventAuctionWon:
		if event.Amount != nil {
			return fmt.Sprintf("You won the auction %q with a bid of %.2f", event.AuctionTitle, *event.Amount)
		}
		return fmt.Sprintf("You won the auction %q", event.AuctionTitle)
	case notification.EventAuctionEnded:
		if event.Winner != nil && event.Amount != nil {
			return fmt.Sprintf("Your auction %q has ended, winning bid %.2f", event.AuctionTitle, *event.Amount)
		}
		return fmt.Sprintf("Your auction %q has ended without bids", event.AuctionTitle)
	default:
		return fmt.Sprintf("Update on auction %q", event.AuctionTitle)
	}
}
