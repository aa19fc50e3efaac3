package healthcheck

import (
	"github.com/bidhub/goapi/base/ctx"
)

// HealthCheckRepo represent the healthcheck repository
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck usecase
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}
