package adaptor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"school-api/biz/application/dto/basic"
	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

const (
	hertzContext    = "hertz_context"
	userMetaContext = "user_meta"
)

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

func WithUserMeta(ctx context.Context, meta *basic.UserMeta) context.Context {
	return context.WithValue(ctx, userMetaContext, meta)
}

// ExtractUserMeta returns the identity attached by the authentication
// middleware. When a route reaches a service without passing through
// the middleware the claims are parsed directly from the header, so a
// missing identity always comes back as an empty UserId rather than an
// error.
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	if meta, ok := ctx.Value(userMetaContext).(*basic.UserMeta); ok {
		return meta
	}

	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	meta, err := VerifyJwtToken(BearerToken(c))
	if err != nil {
		return
	}
	return meta
}

// BearerToken pulls the token out of the standard authorization header.
func BearerToken(c *app.RequestContext) string {
	auth := string(c.GetHeader("Authorization"))
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer"))
}

// GenerateJwtToken 生成jwt, 有效期由配置的AccessExpire决定
func GenerateJwtToken(userId string) (string, int64, error) {
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["userId"] = userId
	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims = claims
	tokenString, err := token.SignedString([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}

// VerifyJwtToken checks signature and expiry. Malformed, tampered and
// expired tokens all collapse into ErrNotAuthentication; the cause only
// shows up in logs.
func VerifyJwtToken(tokenString string) (*basic.UserMeta, error) {
	if tokenString == "" {
		return nil, consts.ErrNotAuthentication
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GetConfig().Auth.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, consts.ErrNotAuthentication
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, consts.ErrNotAuthentication
	}

	meta := new(basic.UserMeta)
	if err := mapstructure.Decode(map[string]any(claims), meta); err != nil {
		meta.UserId = cast.ToString(claims["userId"])
	}
	if meta.UserId == "" {
		return nil, consts.ErrNotAuthentication
	}
	return meta, nil
}
