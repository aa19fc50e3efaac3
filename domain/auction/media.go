package auction

import (
	"time"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
)

// Media is a reference to an uploaded auction image. Upload and storage are
// handled elsewhere; this core only tracks the references so a withdrawn
// auction can cascade them.
type Media struct {
	AuctionId domain.AuctionId `json:"auctionId" bson:"auctionId"`
	Path      string           `json:"path" bson:"path"`
	IsPrimary bool             `json:"isPrimary" bson:"isPrimary"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

type MediaRepo interface {
	Create(c ctx.Ctx, value *Media) error
	FindAllByAuction(c ctx.Ctx, auctionId domain.AuctionId) ([]*Media, error)
	RemoveAllByAuction(c ctx.Ctx, auctionId domain.AuctionId) (int64, error)
}
