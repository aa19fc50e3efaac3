package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/auction"
	"github.com/bidhub/goapi/service/query"
)

type mediaRepoImpl struct {
	q query.Mongo
}

func NewMediaRepo(q query.Mongo) auction.MediaRepo {
	return &mediaRepoImpl{q}
}

func (im *mediaRepoImpl) Create(c ctx.Ctx, value *auction.Media) error {
	if err := im.q.Insert(c, domain.TableAuctionMedia, value); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"media": *value,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *mediaRepoImpl) FindAllByAuction(c ctx.Ctx, auctionId domain.AuctionId) ([]*auction.Media, error) {
	qry := bson.M{"auctionId": auctionId}
	res := []*auction.Media{}
	if err := im.q.Search(c, domain.TableAuctionMedia, 0, 0, "-isPrimary", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *mediaRepoImpl) RemoveAllByAuction(c ctx.Ctx, auctionId domain.AuctionId) (int64, error) {
	selector := bson.M{"auctionId": auctionId}
	cnt, err := im.q.RemoveAll(c, domain.TableAuctionMedia, selector)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.RemoveAll")
		return 0, err
	}
	return cnt, nil
}
