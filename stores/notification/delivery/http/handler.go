package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/delivery"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/notification"
	authMiddleware "github.com/bidhub/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	nu notification.Usecase
}

func New(e *echo.Echo, nu notification.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{nu}

	g := e.Group("/notifications")
	g.GET("", h.getInbox, authMiddleware.Auth())
}

func (h *handler) getInbox(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	userId := c.Get("userId").(domain.UserId)

	type params struct {
		Limit int32 `query:"limit" validate:"lte=100"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	res, err := h.nu.GetInbox(ctx, userId, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
