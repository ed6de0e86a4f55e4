package togglsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	sdkUserAgent = "go-toggl-client/1.0.0 (https://github.com/wangdayong228/toggl-client)"

	// reportPageDelay 为分页拉取时两次请求之间的固定间隔，与 429 退避无关。
	reportPageDelay = 500 * time.Millisecond

	startDateLayout = "2006-01-02"
)

// ReportParams 为报表请求体参数，键名与 Reports API v3 一致（start_date、end_date、project_ids ...）。
type ReportParams map[string]any

// ReportRow 为 detailed 报表中的一行，row_number 是分页游标。
type ReportRow map[string]any

// RowNumber 返回该行的 row_number。
func (r ReportRow) RowNumber() (int64, bool) {
	switch v := r["row_number"].(type) {
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// Reports 访问 Reports API v3，见 https://developers.track.toggl.com/docs/reports_start
type Reports struct {
	client *Client
}

// Weekly 返回最近一周的周报。start_date 固定为 7 天前当天零点，会覆盖 params 中的同名参数。
func (r Reports) Weekly(ctx context.Context, workspaceID int64, params ReportParams, out any) error {
	return r.RequestReport(ctx, weeklyPath(workspaceID), workspaceID, r.withLastWeekStart(params), out)
}

// WeeklyAll 与 Weekly 行为完全相同，并不分页。
// 名字里的 All 与实际行为不一致，保留以兼容现有调用方。
func (r Reports) WeeklyAll(ctx context.Context, workspaceID int64, params ReportParams, out any) error {
	return r.RequestReport(ctx, weeklyPath(workspaceID), workspaceID, r.withLastWeekStart(params), out)
}

// Details 返回 detailed 报表的一页，params 必须包含 start_date。
func (r Reports) Details(ctx context.Context, workspaceID int64, params ReportParams, out any) error {
	if err := requireStartDate(params); err != nil {
		return err
	}
	return r.RequestReport(ctx, fmt.Sprintf("workspace/%d/search/time_entries", workspaceID), workspaceID, params, out)
}

// Totals 返回 detailed 报表的合计，params 必须包含 start_date。
func (r Reports) Totals(ctx context.Context, workspaceID int64, params ReportParams, out any) error {
	if err := requireStartDate(params); err != nil {
		return err
	}
	return r.RequestReport(ctx, fmt.Sprintf("workspace/%d/search/time_entries/totals", workspaceID), workspaceID, params, out)
}

// DetailsAll 拉取 detailed 报表的全部分页并按顺序拼接，params 必须包含 start_date。
func (r Reports) DetailsAll(ctx context.Context, workspaceID int64, params ReportParams) ([]ReportRow, error) {
	if err := requireStartDate(params); err != nil {
		return nil, err
	}
	return r.RequestReportPages(ctx, fmt.Sprintf("workspace/%d/search/time_entries", workspaceID), workspaceID, params)
}

func (r Reports) ProjectsSummary(ctx context.Context, workspaceID int64, params ReportParams, out any) error {
	if err := requireStartDate(params); err != nil {
		return err
	}
	return r.RequestReport(ctx, fmt.Sprintf("workspace/%d/projects/summary", workspaceID), workspaceID, params, out)
}

func (r Reports) Summary(ctx context.Context, workspaceID int64, params ReportParams, out any) error {
	if err := requireStartDate(params); err != nil {
		return err
	}
	return r.RequestReport(ctx, fmt.Sprintf("workspace/%d/summary/time_entries", workspaceID), workspaceID, params, out)
}

// RequestReportPages 以 row_number 为游标逐页拉取，直到某页为空。
// 页与页之间严格串行，每个非空页之后等待 reportPageDelay。
func (r Reports) RequestReportPages(ctx context.Context, path string, workspaceID int64, params ReportParams) ([]ReportRow, error) {
	var rows []ReportRow
	var maxRowNumber int64

	for {
		pageParams := cloneParams(params)
		pageParams["first_row_number"] = maxRowNumber + 1

		var page []ReportRow
		if err := r.RequestReport(ctx, path, workspaceID, pageParams, &page); err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return rows, nil
		}

		rows = append(rows, page...)
		last, ok := page[len(page)-1].RowNumber()
		if !ok {
			return nil, fmt.Errorf("report page of %s: last row has no row_number", path)
		}
		maxRowNumber = last

		if err := r.client.sleep(ctx, reportPageDelay); err != nil {
			return nil, err
		}
	}
}

// RequestReport 把 user_agent、workspace_id 与 params 合并为请求体，POST 到报表 API。
// params 中的同名键优先。
func (r Reports) RequestReport(ctx context.Context, path string, workspaceID int64, params ReportParams, out any) error {
	body := ReportParams{
		"user_agent":   sdkUserAgent,
		"workspace_id": workspaceID,
	}
	for k, v := range params {
		body[k] = v
	}

	b, err := json.Marshal(body)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	return r.client.Request(ctx, path, RequestOptions{
		Method:    http.MethodPost,
		Body:      string(b),
		PrefixURL: ReportsBaseURL,
	}, out)
}

func (r Reports) withLastWeekStart(params ReportParams) ReportParams {
	p := cloneParams(params)
	p["start_date"] = lastWeekStart(r.client.now())
	return p
}

// lastWeekStart 返回 now 往前 7 天当天零点的日期，格式 YYYY-MM-DD。
func lastWeekStart(now time.Time) string {
	t := now.AddDate(0, 0, -7)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).Format(startDateLayout)
}

func weeklyPath(workspaceID int64) string {
	return fmt.Sprintf("workspace/%d/weekly/time_entries", workspaceID)
}

func requireStartDate(params ReportParams) error {
	if _, ok := params["start_date"]; !ok {
		return ErrMissingStartDate
	}
	return nil
}

func cloneParams(params ReportParams) ReportParams {
	out := make(ReportParams, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	return out
}
