package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/delivery"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/account"
	"github.com/bidhub/goapi/middleware"
)

type handler struct {
	au account.Usecase
}

func New(e *echo.Echo, au account.Usecase) {
	h := &handler{au}

	g := e.Group("/accounts")
	g.POST("", h.createAccount)
	g.GET("/:userId", h.getAccount, middleware.IsValidId("userId"))
}

func (h *handler) createAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Username  string `json:"username" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.au.Create(ctx, &account.Account{
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.UserId(c.Param("userId"))
	res, err := h.au.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
