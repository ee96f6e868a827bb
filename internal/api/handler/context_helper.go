package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/williampettit/scholarsphere-sub001/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetTokenInfo 从 Gin 上下文中提取当前 Token 的 jti 与过期时间，供登出使用。
func MustGetTokenInfo(c *gin.Context) (string, time.Time, bool) {
	jtiVal, exists := c.Get("jti")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", time.Time{}, false
	}
	jti, ok := jtiVal.(string)
	if !ok || jti == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", time.Time{}, false
	}

	expVal, exists := c.Get("token_exp")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", time.Time{}, false
	}
	exp, ok := expVal.(time.Time)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return "", time.Time{}, false
	}

	return jti, exp, true
}
