package account

import (
	"time"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
)

// Account is a user's account stored in database
type Account struct {
	Id        domain.UserId `json:"id" bson:"id"`
	Username  string        `json:"username" bson:"username"`
	Email     string        `json:"email" bson:"email"`
	FirstName string        `json:"firstName" bson:"firstName"`
	LastName  string        `json:"lastName" bson:"lastName"`
	Role      domain.Role   `json:"role" bson:"role"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type Repo interface {
	FindOne(c ctx.Ctx, id domain.UserId) (*Account, error)
	Create(c ctx.Ctx, value *Account) error
}

type Usecase interface {
	Get(c ctx.Ctx, id domain.UserId) (*Account, error)
	Create(c ctx.Ctx, value *Account) (*Account, error)
	// IsAdmin is the identity/role lookup the auction core consumes.
	IsAdmin(c ctx.Ctx, id domain.UserId) (bool, error)
}
