package response

import "github.com/gin-gonic/gin"

type ErrBody struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Err 错误响应：HTTP 状态码与 body 里的 code 一致
func Err(c *gin.Context, code int, customMsg string) {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	c.JSON(code, ErrBody{Code: code, Msg: msg})
}

// AbortErr 中间件用：终止后续 handler
func AbortErr(c *gin.Context, code int, customMsg string) {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	c.AbortWithStatusJSON(code, ErrBody{Code: code, Msg: msg})
}
