package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/delivery"
	"github.com/bidhub/goapi/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/token", handler.token)
}

func (h *authHandler) token(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		UserId domain.UserId `json:"userId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if p.UserId.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if tkn, err := h.auth.SignToken(ctx, p.UserId); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}
