package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/ptr"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/notification"
	mNotification "github.com/bidhub/goapi/domain/notification/mocks"
	mMessaging "github.com/bidhub/goapi/service/messaging/mocks"
)

type notificationUseCaseSuite struct {
	suite.Suite

	repo      *mNotification.Repo
	publisher *mMessaging.Publisher

	im notification.Emitter
}

func (s *notificationUseCaseSuite) SetupTest() {
	s.repo = &mNotification.Repo{}
	s.publisher = &mMessaging.Publisher{}
	s.im = NewEmitter(&NotificationUseCaseCfg{
		Repo:      s.repo,
		Publisher: s.publisher,
	})
}

func TestNotificationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(notificationUseCaseSuite))
}

func (s *notificationUseCaseSuite) TestEmitWonEvent() {
	c := ctx.Background()
	winner := domain.UserId("bidder-1")
	event := &notification.Event{
		Type:         notification.EventAuctionWon,
		AuctionId:    "a1",
		AuctionTitle: "vintage watch",
		Recipient:    winner,
		Winner:       &winner,
		Amount:       ptr.Float64(150),
	}

	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.UserId == winner && n.Link == "/auctions/a1" && !n.IsRead
	})).Return(nil).Once()
	s.publisher.On("Publish", mock.Anything, "auction.won", mock.MatchedBy(func(body []byte) bool {
		decoded := notification.Event{}
		if err := json.Unmarshal(body, &decoded); err != nil {
			return false
		}
		return decoded.AuctionId == "a1" && decoded.Type == notification.EventAuctionWon
	})).Return(nil).Once()

	s.NoError(s.im.Emit(c, event))
	s.repo.AssertExpectations(s.T())
	s.publisher.AssertExpectations(s.T())
}

func (s *notificationUseCaseSuite) TestEmitEndedWithoutBids() {
	c := ctx.Background()
	event := &notification.Event{
		Type:         notification.EventAuctionEnded,
		AuctionId:    "a1",
		AuctionTitle: "vintage watch",
		Recipient:    "seller-1",
	}

	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Message == `Your auction "vintage watch" has ended without bids`
	})).Return(nil).Once()
	s.publisher.On("Publish", mock.Anything, "auction.ended", mock.Anything).Return(nil).Once()

	s.NoError(s.im.Emit(c, event))
	s.repo.AssertExpectations(s.T())
}

func (s *notificationUseCaseSuite) TestGetInbox() {
	c := ctx.Background()
	want := []*notification.Notification{
		{UserId: "user-1", Message: "msg"},
	}

	s.repo.On("FindAllByUser", mock.Anything, domain.UserId("user-1"), int32(20)).Return(want, nil).Once()

	uc := New(&NotificationUseCaseCfg{Repo: s.repo, Publisher: s.publisher})
	res, err := uc.GetInbox(c, "user-1", 20)
	s.NoError(err)
	s.Equal(want, res)
}
