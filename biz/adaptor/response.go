package adaptor

import (
	"context"
	"net/http"

	"school-api/biz/application/dto/basic"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一处理响应: 成功返回200, 失败将Errno映射为HTTP状态码
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	postProcess(ctx, c, req, resp, err, http.StatusOK)
}

// PostProcessCreated is PostProcess for endpoints whose success is a creation.
func PostProcessCreated(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	postProcess(ctx, c, req, resp, err, http.StatusCreated)
}

func postProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error, successStatus int) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.FullPath(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(successStatus, resp)
		return
	}

	s, ok := status.FromError(err)
	if !ok {
		log.CtxError(ctx, "[%s] internal error, err=%s", c.FullPath(), err.Error())
		c.JSON(http.StatusInternalServerError, &basic.Response{
			Code: int64(codes.Internal),
			Msg:  "internal error",
		})
		return
	}
	c.JSON(httpStatus(s.Code()), &basic.Response{
		Code: int64(s.Code()),
		Msg:  s.Message(),
	})
}

// httpStatus maps Errno codes to HTTP statuses. Custom domain codes
// (>= 1000) are client faults; anything unrecognized is a server fault.
func httpStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	}
	if code >= 1000 {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
