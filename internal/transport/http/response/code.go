package response

// 错误码直接基于 HTTP 语义
const (
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeServerError   = 500
	CodeNotConfigured = 501 // 未配置真实存储时的管理端写操作
)

// CodeMsgMap 集中管理 code - msg
var CodeMsgMap = map[int]string{
	CodeBadRequest:    "Bad Request",
	CodeUnauthorized:  "Unauthorized",
	CodeForbidden:     "Forbidden",
	CodeNotFound:      "Not Found",
	CodeServerError:   "Internal Server Error",
	CodeNotConfigured: "Store Not Configured",
}
