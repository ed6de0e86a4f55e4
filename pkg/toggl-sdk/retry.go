package togglsdk

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"
)

const (
	DefaultMaxRetries = 5

	backoffBase      = time.Second
	backoffMaxJitter = 100 * time.Millisecond
)

// outcome 是一次尝试的结果分类，重试循环只看它，不靠 error 驱动。
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeRateLimited
	outcomeFailure
)

func classify(statusCode int) outcome {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return outcomeSuccess
	case statusCode == http.StatusTooManyRequests:
		return outcomeRateLimited
	default:
		return outcomeFailure
	}
}

// backoffDelay 返回第 attempt 次（从 0 开始）尝试失败后的等待时间：2^attempt 秒 + [0,100ms) 抖动。
func backoffDelay(attempt int, jitter func() time.Duration) time.Duration {
	d := backoffBase << uint(attempt)
	if jitter != nil {
		d += jitter()
	}
	return d
}

func defaultJitter() time.Duration {
	return rand.N(backoffMaxJitter)
}

// sleepContext 等待 d，ctx 先结束时返回 ctx 的错误。
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
