package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/delivery"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/domain/auction"
	"github.com/bidhub/goapi/middleware"
	authMiddleware "github.com/bidhub/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	au auction.Usecase
}

// New registers the auction routes
func New(e *echo.Echo, au auction.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{au}

	g := e.Group("/auctions")
	g.POST("", h.createAuction, authMiddleware.Auth())
	g.GET("", h.listAuctions)
	g.GET("/:id", h.getAuction, middleware.IsValidId("id"), middleware.CacheHttp(10*time.Second))
	g.GET("/:id/bids", h.getBidHistory, middleware.IsValidId("id"), middleware.CacheHttp(10*time.Second))
	g.POST("/:id/bids", h.placeBid, middleware.IsValidId("id"), authMiddleware.Auth())
	g.POST("/:id/end", h.endAuction, middleware.IsValidId("id"), authMiddleware.Auth())
	g.DELETE("/:id", h.withdrawAuction, middleware.IsValidId("id"), authMiddleware.Auth())

	// admin
	g.POST("/:id/approve", h.approveAuction, middleware.IsValidId("id"), authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.POST("/:id/reject", h.rejectAuction, middleware.IsValidId("id"), authMiddleware.Auth(), authMiddleware.IsAdmin())

	e.GET("/bids", h.getMyBids, authMiddleware.Auth())
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := c.Get("userId").(domain.UserId)

	type payload struct {
		Title           string    `json:"title" validate:"required"`
		Description     string    `json:"description"`
		CategoryId      string    `json:"categoryId"`
		StartingPrice   float64   `json:"startingPrice" validate:"required,gt=0"`
		ReservePrice    *float64  `json:"reservePrice"`
		IncrementAmount float64   `json:"incrementAmount" validate:"required,gt=0"`
		EndTime         time.Time `json:"endTime" validate:"required,futuretime"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.au.Create(ctx, &auction.Auction{
		Title:           p.Title,
		Description:     p.Description,
		CategoryId:      p.CategoryId,
		Seller:          seller,
		StartingPrice:   p.StartingPrice,
		ReservePrice:    p.ReservePrice,
		IncrementAmount: p.IncrementAmount,
		EndTime:         p.EndTime,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) listAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Status     *auction.Status `query:"status"`
		Seller     *domain.UserId  `query:"seller"`
		CategoryId *string         `query:"categoryId"`
		Featured   *bool           `query:"featured"`
		SortBy     *string         `query:"sortBy"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit" validate:"lte=100"`
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

	opts := []auction.FindAllOptions{
		auction.WithPagination(p.Offset, p.Limit),
	}
	if p.Status != nil {
		opts = append(opts, auction.WithStatus(*p.Status))
	}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}
	if p.CategoryId != nil {
		opts = append(opts, auction.WithCategoryId(*p.CategoryId))
	}
	if p.Featured != nil {
		opts = append(opts, auction.WithFeatured(*p.Featured))
	}
	if p.SortBy != nil {
		opts = append(opts, auction.WithSort(*p.SortBy))
	}

	res, err := h.au.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.AuctionId(c.Param("id"))
	res, err := h.au.GetSummary(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBidHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Limit int32 `query:"limit" validate:"lte=200"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := domain.AuctionId(c.Param("id"))
	res, err := h.au.GetBidHistory(ctx, id, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getMyBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bidder := c.Get("userId").(domain.UserId)

	type params struct {
		Limit int32 `query:"limit" validate:"lte=200"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.au.GetBidsByBidder(ctx, bidder, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bidder := c.Get("userId").(domain.UserId)

	type payload struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := domain.AuctionId(c.Param("id"))
	res, err := h.au.PlaceBid(ctx, id, bidder, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if !res.Accepted {
		return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, res)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) approveAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	admin := c.Get("userId").(domain.UserId)
	id := domain.AuctionId(c.Param("id"))

	res, err := h.au.Approve(ctx, id, admin)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) rejectAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	admin := c.Get("userId").(domain.UserId)
	id := domain.AuctionId(c.Param("id"))

	type payload struct {
		Reason string `json:"reason"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.au.Reject(ctx, id, admin, p.Reason)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := c.Get("userId").(domain.UserId)
	id := domain.AuctionId(c.Param("id"))

	res, err := h.au.EndEarly(ctx, id, seller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) withdrawAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := c.Get("userId").(domain.UserId)
	id := domain.AuctionId(c.Param("id"))

	if err := h.au.Withdraw(ctx, id, seller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
