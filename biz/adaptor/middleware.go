package adaptor

import (
	"context"
	"net/http"

	"school-api/biz/application/dto/basic"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
)

// Authentication is the single enforcement point for protected routes:
// it verifies the bearer token and hands the resolved identity down via
// the request context. Handlers behind it never trust identity fields
// from the request body.
func Authentication() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		meta, err := VerifyJwtToken(BearerToken(c))
		if err != nil {
			log.CtxInfo(ctx, "[auth] reject %s: %v", c.FullPath(), err)
			c.JSON(http.StatusUnauthorized, &basic.Response{
				Code: int64(consts.ErrNotAuthentication.Code()),
				Msg:  consts.ErrNotAuthentication.Error(),
			})
			c.Abort()
			return
		}
		c.Next(WithUserMeta(ctx, meta))
	}
}
