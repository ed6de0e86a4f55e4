package togglsdk

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TransportRequest 是管线交给传输层的完整请求描述：URL 已拼好，鉴权头已算好。
type TransportRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	// Body 为已序列化的请求体，空串表示无 body。
	Body string
}

// Response 为两种传输统一的响应形态。
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport 执行一次请求。非 2xx 不返回 error，只通过 StatusCode 体现；
// error 仅表示请求没能拿到响应（网络错误、ctx 取消等）。
type Transport interface {
	Do(ctx context.Context, req *TransportRequest) (*Response, error)
}

// RestyTransport 是直连模式：基于 resty 的独立 HTTP 客户端。
type RestyTransport struct {
	http *resty.Client
}

// NewRestyTransport 创建直连传输。resty 自带的重试必须关闭，429 退避只由请求管线负责。
func NewRestyTransport(baseURL, apiToken string, headers map[string]string, timeout time.Duration) *RestyTransport {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetBasicAuth(apiToken, apiTokenPassword).
		SetHeaders(headers).
		SetRetryCount(0)
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &RestyTransport{http: rc}
}

// SetLogger 把 resty 自身的告警（例如明文 HTTP 上的 Basic Auth）转到 l。
func (t *RestyTransport) SetLogger(l logrus.FieldLogger) *RestyTransport {
	if l != nil {
		t.http.SetLogger(l)
	}
	return t
}

func (t *RestyTransport) Do(ctx context.Context, req *TransportRequest) (*Response, error) {
	r := t.http.R().
		SetContext(ctx).
		SetHeaders(req.Headers)
	if req.Body != "" {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL)
	}
	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// RequestURLParam 是宿主请求原语接收的描述对象。
type RequestURLParam struct {
	URL         string
	Method      string
	ContentType string
	Body        string
	Headers     map[string]string
}

// RequestURLResponse 是宿主请求原语的返回值。
type RequestURLResponse struct {
	Status int
	Text   string
}

// RequestURLFunc 为宿主环境提供的请求原语（例如应用内嵌的网络桥）。
// 约定对 HTTP 层错误不返回 error。
type RequestURLFunc func(ctx context.Context, p RequestURLParam) (RequestURLResponse, error)

// EmbeddedTransport 是嵌入式模式：把请求转交给宿主的 RequestURLFunc。
type EmbeddedTransport struct {
	requestURL RequestURLFunc
}

func NewEmbeddedTransport(fn RequestURLFunc) *EmbeddedTransport {
	return &EmbeddedTransport{requestURL: fn}
}

func (t *EmbeddedTransport) Do(ctx context.Context, req *TransportRequest) (*Response, error) {
	if t.requestURL == nil {
		return nil, errors.New("embedded transport has no request function")
	}

	out, err := t.requestURL(ctx, RequestURLParam{
		URL:         req.URL,
		Method:      req.Method,
		ContentType: contentTypeJSON,
		Body:        req.Body,
		Headers:     req.Headers,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL)
	}
	return &Response{StatusCode: out.Status, Body: []byte(out.Text)}, nil
}
