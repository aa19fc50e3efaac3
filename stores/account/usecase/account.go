package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/account"
)

type impl struct {
	repo account.Repo
}

func New(repo account.Repo) account.Usecase {
	return &impl{repo}
}

func (im *impl) Get(c ctx.Ctx, id domain.UserId) (*account.Account, error) {
	res, err := im.repo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to repo.FindOne")
		}
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, value *account.Account) (*account.Account, error) {
	if value.Username == "" || value.Email == "" {
		return nil, domain.ErrBadParamInput
	}

	now := time.Now()
	if value.Id.IsEmpty() {
		value.Id = domain.UserId(uuid.New().String())
	}
	if value.Role == "" {
		value.Role = domain.RoleUser
	}
	value.CreatedAt = now
	value.UpdatedAt = now

	if err := im.repo.Create(c, value); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  value.Id,
		}).Error("failed to repo.Create")
		return nil, err
	}
	return value, nil
}

func (im *impl) IsAdmin(c ctx.Ctx, id domain.UserId) (bool, error) {
	res, err := im.repo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return res.Role == domain.RoleAdmin, nil
}
