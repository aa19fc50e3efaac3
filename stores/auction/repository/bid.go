package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/auction"
	"github.com/bidhub/goapi/service/query"
)

type bidRepoImpl struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) auction.BidRepo {
	return &bidRepoImpl{q}
}

func (im *bidRepoImpl) Create(c ctx.Ctx, value *auction.Bid) error {
	if err := im.q.Insert(c, domain.TableBids, value); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"bid": *value,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

// FindHighest sorts by amount descending then createdAt ascending, so equal
// amounts resolve to the earlier bid.
func (im *bidRepoImpl) FindHighest(c ctx.Ctx, auctionId domain.AuctionId) (*auction.Bid, error) {
	qry := bson.M{"auctionId": auctionId}
	res := []*auction.Bid{}
	err := im.q.SearchNSorts(c, domain.TableBids, 0, 1, []string{"-amount", "createdAt"}, qry, &res)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.SearchNSorts")
		return nil, err
	}
	if len(res) == 0 {
		return nil, domain.ErrNotFound
	}
	return res[0], nil
}

func (im *bidRepoImpl) Search(c ctx.Ctx, auctionId domain.AuctionId, limit int32) ([]*auction.Bid, error) {
	qry := bson.M{"auctionId": auctionId}
	res := []*auction.Bid{}
	if err := im.q.Search(c, domain.TableBids, 0, int(limit), "-createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *bidRepoImpl) FindAllByBidder(c ctx.Ctx, bidder domain.UserId, limit int32) ([]*auction.Bid, error) {
	qry := bson.M{"bidder": bidder}
	res := []*auction.Bid{}
	if err := im.q.Search(c, domain.TableBids, 0, int(limit), "-createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *bidRepoImpl) Count(c ctx.Ctx, auctionId domain.AuctionId) (int, error) {
	qry := bson.M{"auctionId": auctionId}
	cnt, err := im.q.Count(c, domain.TableBids, qry)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}

func (im *bidRepoImpl) RemoveAllByAuction(c ctx.Ctx, auctionId domain.AuctionId) (int64, error) {
	selector := bson.M{"auctionId": auctionId}
	cnt, err := im.q.RemoveAll(c, domain.TableBids, selector)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.RemoveAll")
		return 0, err
	}
	return cnt, nil
}
