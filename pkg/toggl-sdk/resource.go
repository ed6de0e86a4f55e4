package togglsdk

import (
	"context"
	"net/url"
	"strconv"
)

// Doer 是资源子客户端唯一依赖的动词接口，*Client 实现了它。
// 子客户端不自己处理重试、鉴权或序列化。
type Doer interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type resource struct {
	doer Doer
}

// dataEnvelope 对应 v8 接口单对象响应外层的 {"data": ...}。
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func (r resource) getData(ctx context.Context, path string, query url.Values, out any) error {
	return r.doer.Get(ctx, path, query, &dataEnvelope[any]{Data: out})
}

func (r resource) postData(ctx context.Context, path string, body, out any) error {
	return r.doer.Post(ctx, path, body, &dataEnvelope[any]{Data: out})
}

func (r resource) putData(ctx context.Context, path string, body, out any) error {
	return r.doer.Put(ctx, path, body, &dataEnvelope[any]{Data: out})
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
