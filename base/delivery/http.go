package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/bidhub/goapi/domain"
	"github.com/bidhub/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrBadParamInput) || errors.Is(err, domain.ErrReasonRequired):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrNotSeller):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrAlreadyProcessed) || errors.Is(err, domain.ErrConflict):
			status = http.StatusConflict
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
