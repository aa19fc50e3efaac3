package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/account"
	mAccount "github.com/bidhub/goapi/domain/account/mocks"
)

type accountUseCaseSuite struct {
	suite.Suite

	repo *mAccount.Repo
	im   account.Usecase
}

func (s *accountUseCaseSuite) SetupTest() {
	s.repo = &mAccount.Repo{}
	s.im = New(s.repo)
}

func TestAccountUseCaseSuite(t *testing.T) {
	suite.Run(t, new(accountUseCaseSuite))
}

func (s *accountUseCaseSuite) TestCreateFillsDefaults() {
	c := ctx.Background()

	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return !a.Id.IsEmpty() && a.Role == domain.RoleUser
	})).Return(nil).Once()

	res, err := s.im.Create(c, &account.Account{
		Username: "alice",
		Email:    "alice@example.com",
	})
	s.NoError(err)
	s.False(res.Id.IsEmpty())
	s.repo.AssertExpectations(s.T())
}

func (s *accountUseCaseSuite) TestCreateRequiresUsername() {
	c := ctx.Background()

	_, err := s.im.Create(c, &account.Account{Email: "alice@example.com"})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *accountUseCaseSuite) TestIsAdmin() {
	c := ctx.Background()

	s.repo.On("FindOne", mock.Anything, domain.UserId("admin-1")).
		Return(&account.Account{Id: "admin-1", Role: domain.RoleAdmin}, nil).Once()
	s.repo.On("FindOne", mock.Anything, domain.UserId("user-1")).
		Return(&account.Account{Id: "user-1", Role: domain.RoleUser}, nil).Once()
	s.repo.On("FindOne", mock.Anything, domain.UserId("ghost")).
		Return(nil, domain.ErrNotFound).Once()

	res, err := s.im.IsAdmin(c, "admin-1")
	s.NoError(err)
	s.True(res)

	res, err = s.im.IsAdmin(c, "user-1")
	s.NoError(err)
	s.False(res)

	res, err = s.im.IsAdmin(c, "ghost")
	s.NoError(err)
	s.False(res)
}
