package togglsdk

import (
	"context"
	"net/url"
	"time"
)

// TimeEntries 聚合 `/time_entries` 下的接口。
type TimeEntries struct {
	resource
}

// Create 创建一条已结束的时间记录，CreatedWith 为空时补上 SDK 标识。
func (t TimeEntries) Create(ctx context.Context, te TimeEntry) (*TimeEntry, error) {
	if te.CreatedWith == "" {
		te.CreatedWith = sdkUserAgent
	}
	var out TimeEntry
	if err := t.postData(ctx, "time_entries", map[string]any{"time_entry": te}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Start 开始计时。
func (t TimeEntries) Start(ctx context.Context, te TimeEntry) (*TimeEntry, error) {
	if te.CreatedWith == "" {
		te.CreatedWith = sdkUserAgent
	}
	var out TimeEntry
	if err := t.postData(ctx, "time_entries/start", map[string]any{"time_entry": te}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t TimeEntries) Stop(ctx context.Context, timeEntryID int64) (*TimeEntry, error) {
	var out TimeEntry
	if err := t.putData(ctx, "time_entries/"+id(timeEntryID)+"/stop", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t TimeEntries) Get(ctx context.Context, timeEntryID int64) (*TimeEntry, error) {
	var out TimeEntry
	if err := t.getData(ctx, "time_entries/"+id(timeEntryID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Current 返回正在计时的条目；没有时返回 nil。
func (t TimeEntries) Current(ctx context.Context) (*TimeEntry, error) {
	var out *TimeEntry
	if err := t.getData(ctx, "time_entries/current", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t TimeEntries) Update(ctx context.Context, timeEntryID int64, te TimeEntry) (*TimeEntry, error) {
	var out TimeEntry
	if err := t.putData(ctx, "time_entries/"+id(timeEntryID), map[string]any{"time_entry": te}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t TimeEntries) Delete(ctx context.Context, timeEntryID int64) error {
	return t.doer.Delete(ctx, "time_entries/"+id(timeEntryID), nil)
}

// List 返回 [start, end) 范围内的条目；两者都为零值时服务端默认返回最近 9 天。
func (t TimeEntries) List(ctx context.Context, start, end time.Time) ([]TimeEntry, error) {
	q := url.Values{}
	if !start.IsZero() {
		q.Set("start_date", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		q.Set("end_date", end.Format(time.RFC3339))
	}
	var out []TimeEntry
	if err := t.doer.Get(ctx, "time_entries", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
