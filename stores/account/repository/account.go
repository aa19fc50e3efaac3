package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/account"
	"github.com/bidhub/goapi/service/cache"
	"github.com/bidhub/goapi/service/cache/provider"
	"github.com/bidhub/goapi/service/cache/provider/compound"
	"github.com/bidhub/goapi/service/cache/provider/primitive"
	redisCache "github.com/bidhub/goapi/service/cache/provider/redis"
	"github.com/bidhub/goapi/service/query"
	"github.com/bidhub/goapi/service/redis"
)

type accountRepoImpl struct {
	q            query.Mongo
	accountCache cache.Service
}

// NewAccountRepo creates new account repo. Lookups go through a small
// in-process cache backed by redis when available.
func NewAccountRepo(q query.Mongo, redis redis.Service) account.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("account", 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &accountRepoImpl{
		q: q,
		accountCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "account",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *accountRepoImpl) FindOne(c ctx.Ctx, id domain.UserId) (*account.Account, error) {
	res := &account.Account{}

	if err := im.accountCache.GetByFunc(c, string(id), res, func() (interface{}, error) {
		return im.findOne(c, id)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("accountCache.GetByFunc failed")
		}
		return nil, err
	}

	return res, nil
}

func (im *accountRepoImpl) findOne(c ctx.Ctx, id domain.UserId) (*account.Account, error) {
	a := &account.Account{}
	err := im.q.FindOne(c, domain.TableAccounts, bson.M{"id": id}, a)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("find account failed")
		return nil, err
	}
	return a, nil
}

func (im *accountRepoImpl) Create(c ctx.Ctx, value *account.Account) error {
	if err := im.q.Insert(c, domain.TableAccounts, value); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  value.Id,
		}).Error("insert account failed")
		return err
	}
	return nil
}
