package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/database/mongoclient"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/auction"
	"github.com/bidhub/goapi/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) makeQuery(opts ...auction.FindAllOptions) (bson.M, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.CategoryId != nil {
		query["categoryId"] = *options.CategoryId
	}

	if options.Featured != nil {
		query["featured"] = *options.Featured
	}

	if options.EndTimeBefore != nil {
		query["endTime"] = bson.M{"$lte": *options.EndTimeBefore}
	}

	return query, nil
}

func (im *auctionRepoImpl) Create(c ctx.Ctx, value *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, value); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"auction": *value,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) FindOne(c ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	qry := bson.M{"id": id}
	res := auction.Auction{}
	err := im.q.FindOne(c, domain.TableAuctions, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *auctionRepoImpl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptions) ([]*auction.Auction, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := auction.GetFindAllOptions(opts...)

	offset := 0
	limit := 0
	sortBy := "-createdAt"
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	if options.SortBy != nil {
		sortBy = *options.SortBy
	}

	res := []*auction.Auction{}
	if err := im.q.Search(c, domain.TableAuctions, offset, limit, sortBy, qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) Count(c ctx.Ctx, opts ...auction.FindAllOptions) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(c, domain.TableAuctions, qry)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}

// UpdatePrice relies on the selector carrying the previously observed price
// plus the biddable-state guard. When a concurrent admission already advanced
// the price, or a concurrent ender closed the auction, the selector matches
// nothing and the caller gets domain.ErrConflict instead of writing against
// the newer state.
func (im *auctionRepoImpl) UpdatePrice(c ctx.Ctx, id domain.AuctionId, from, to float64, asOf time.Time) error {
	selector := bson.M{
		"id":           id,
		"currentPrice": from,
		"status":       auction.StatusActive,
		"endTime":      bson.M{"$gt": asOf},
	}
	updater := bson.M{"currentPrice": to}
	err := im.q.Patch(c, domain.TableAuctions, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}

// UpdateStatus guards the transition on the expected current status so two
// racing enders cannot both apply a terminal patch.
func (im *auctionRepoImpl) UpdateStatus(c ctx.Ctx, id domain.AuctionId, from auction.Status, patch *auction.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"patch": *patch,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	selector := bson.M{"id": id, "status": from}
	err = im.q.Patch(c, domain.TableAuctions, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Delete(c ctx.Ctx, id domain.AuctionId) error {
	selector := bson.M{"id": id}
	err := im.q.Remove(c, domain.TableAuctions, selector)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Remove")
		return err
	}
	return nil
}
