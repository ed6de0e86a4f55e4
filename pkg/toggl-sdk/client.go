package togglsdk

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://api.track.toggl.com/api/v8"
	ReportsBaseURL = "https://api.track.toggl.com/reports/api/v3"

	// EnvAPIToken 是 APIToken 缺省时读取的环境变量。
	EnvAPIToken = "TOGGL_API_TOKEN"

	apiTokenPassword = "api_token"
	contentTypeJSON  = "application/json"
)

// Config 为客户端配置，New 之后不再修改。
type Config struct {
	// APIToken 必填；为空时在 New 中读取 TOGGL_API_TOKEN。
	APIToken string
	// MaxRetries 为遇到 429 时的最大尝试次数（含首次），<=0 使用 DefaultMaxRetries。
	MaxRetries int
	// Headers 附加到每个请求；其中的 User-Agent 还会作为 user_agent 查询参数带上。
	Headers map[string]string
	// Legacy 为 true 时强制使用直连（resty）传输。
	Legacy bool
	// RequestURL 为宿主提供的请求原语；非 Legacy 且不为 nil 时使用嵌入式传输。
	RequestURL RequestURLFunc
	// Timeout 只作用于直连传输，0 表示不限。
	Timeout time.Duration
}

// ConfigFromEnv 返回只填了环境变量 token 的配置。
func ConfigFromEnv() Config {
	return Config{APIToken: strings.TrimSpace(os.Getenv(EnvAPIToken))}
}

type Option func(*Client)

// WithLogger 设置诊断日志。默认丢弃所有输出。
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTransport 指定传输实现，不再按 Config 选择。
func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// RequestOptions 描述一次请求。Body 非空时优先于 JSON。
type RequestOptions struct {
	Method    string
	Query     url.Values
	JSON      any
	Body      string
	PrefixURL string
}

// Client 是 SDK 对外入口，按资源分组。
type Client struct {
	cfg       Config
	transport Transport
	logger    logrus.FieldLogger

	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() time.Duration
	now    func() time.Time

	Workspaces   Workspaces
	Clients      Clients
	Groups       Groups
	Tags         Tags
	Projects     Projects
	ProjectUsers ProjectUsers
	TimeEntries  TimeEntries
	Reports      Reports
}

func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.APIToken = strings.TrimSpace(cfg.APIToken)
	if cfg.APIToken == "" {
		cfg.APIToken = ConfigFromEnv().APIToken
	}
	if cfg.APIToken == "" {
		return nil, ErrMissingAPIToken
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	// 键统一为规范形式，保证后面写入的 Content-Type / Authorization 覆盖调用方的同名 header
	hdr := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		hdr[http.CanonicalHeaderKey(k)] = v
	}
	cfg.Headers = hdr

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		cfg:    cfg,
		logger: discard,
		sleep:  sleepContext,
		jitter: defaultJitter,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.transport == nil {
		if !cfg.Legacy && cfg.RequestURL != nil {
			c.transport = NewEmbeddedTransport(cfg.RequestURL)
		} else {
			c.transport = NewRestyTransport(DefaultBaseURL, cfg.APIToken, cfg.Headers, cfg.Timeout).SetLogger(c.logger)
		}
	}
	if cfg.Legacy {
		c.logger.Info("toggl-client running in legacy mode.")
	}

	r := resource{doer: c}
	c.Workspaces = Workspaces{r}
	c.Clients = Clients{r}
	c.Groups = Groups{r}
	c.Tags = Tags{r}
	c.Projects = Projects{r}
	c.ProjectUsers = ProjectUsers{r}
	c.TimeEntries = TimeEntries{r}
	c.Reports = Reports{client: c}
	return c, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodGet, Query: query}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodPut, JSON: body}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodPost, JSON: body}, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodPatch, JSON: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodDelete}, out)
}

// Request 发出请求并把成功响应的 JSON 解码到 out（out 为 nil 时只校验 JSON）。
// 429 按指数退避重试，最多 MaxRetries 次尝试；最终非 2xx 返回 *APIError。
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions, out any) error {
	req, err := c.buildRequest(path, opts)
	if err != nil {
		return err
	}

	log := c.logger.WithFields(logrus.Fields{"path": path, "method": req.Method})

	var resp *Response
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		log.WithField("attempt", attempt+1).Debug("requesting toggl api")

		resp, err = c.transport.Do(ctx, req)
		if err != nil {
			return err
		}
		if classify(resp.StatusCode) != outcomeRateLimited || attempt == c.cfg.MaxRetries-1 {
			break
		}

		wait := backoffDelay(attempt, c.jitter)
		log.WithField("wait", wait).Warn("toggl api rate limited, backing off")
		if err := c.sleep(ctx, wait); err != nil {
			return err
		}
	}

	if classify(resp.StatusCode) != outcomeSuccess {
		return &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body), Path: path}
	}

	if out == nil {
		// 调用方不需要结果（例如 DELETE）时允许空 body，其余情况仍要求合法 JSON
		if len(bytes.TrimSpace(resp.Body)) == 0 {
			return nil
		}
		var v any
		out = &v
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &DecodeError{Path: path, Body: resp.Body, Err: err}
	}
	return nil
}

func (c *Client) buildRequest(path string, opts RequestOptions) (*TransportRequest, error) {
	prefix := opts.PrefixURL
	if prefix == "" {
		prefix = DefaultBaseURL
	}
	u := strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")

	if opts.Query != nil {
		q := url.Values{}
		for k, vv := range opts.Query {
			q[k] = append([]string(nil), vv...)
		}
		if ua := c.userAgent(); ua != "" {
			q.Set("user_agent", ua)
		}
		u += "?" + q.Encode()
	}

	headers := make(map[string]string, len(c.cfg.Headers)+2)
	for k, v := range c.cfg.Headers {
		headers[k] = v
	}
	headers["Content-Type"] = contentTypeJSON
	headers["Authorization"] = basicAuth(c.cfg.APIToken)

	body := opts.Body
	if body == "" && opts.JSON != nil {
		b, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, &EncodeError{Path: path, Err: err}
		}
		body = string(b)
	}

	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}
	return &TransportRequest{URL: u, Method: method, Headers: headers, Body: body}, nil
}

func (c *Client) userAgent() string {
	return c.cfg.Headers["User-Agent"]
}

func basicAuth(apiToken string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiToken+":"+apiTokenPassword))
}
