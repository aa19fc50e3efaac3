package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/notification"
	"github.com/bidhub/goapi/service/query"
)

type notificationRepoImpl struct {
	q query.Mongo
}

func NewNotificationRepo(q query.Mongo) notification.Repo {
	return &notificationRepoImpl{q}
}

func (im *notificationRepoImpl) Create(c ctx.Ctx, value *notification.Notification) error {
	if err := im.q.Insert(c, domain.TableNotifications, value); err != nil {
		c.WithFields(log.Fields{
			"err":          err,
			"notification": *value,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *notificationRepoImpl) FindAllByUser(c ctx.Ctx, userId domain.UserId, limit int32) ([]*notification.Notification, error) {
	qry := bson.M{"userId": userId}
	res := []*notification.Notification{}
	if err := im.q.Search(c, domain.TableNotifications, 0, int(limit), "-createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}
