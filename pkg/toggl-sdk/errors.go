package togglsdk

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingAPIToken 表示构造客户端时既没有显式 token，也没有环境变量兜底。
	ErrMissingAPIToken = errors.New(`required option "apiToken" was not provided`)
	// ErrMissingStartDate 表示报表参数缺少 start_date，在发出任何请求之前返回。
	ErrMissingStartDate = errors.New("the parameters must include start_date")
)

// APIError 表示上游返回了非 2xx 状态（包括重试耗尽后仍为 429）。
// Body 保留原始响应内容，不做 JSON 解析（可能是 HTML 错误页）。
type APIError struct {
	StatusCode int
	Body       string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Toggl API responded with status code %d. Response: %s (API endpoint: %s)", e.StatusCode, e.Body, e.Path)
}

// DecodeError 表示状态码成功但响应体不是合法 JSON（或与目标类型不匹配）。
type DecodeError struct {
	Path string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode toggl response of %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError 表示请求体 JSON 序列化失败，请求不会发出。
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode toggl request body of %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// AsAPIError 提取 *APIError。
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsStatus 判断 err 是否为指定状态码的 APIError。
func IsStatus(err error, code int) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.StatusCode == code
}
