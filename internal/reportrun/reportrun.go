package reportrun

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wangdayong228/toggl-client/internal/constants/enums"
	"github.com/wangdayong228/toggl-client/internal/reportexport"
	togglsdk "github.com/wangdayong228/toggl-client/pkg/toggl-sdk"
)

// ReportsAPI 是 togglsdk.Reports 的方法集，便于在测试中替换。
type ReportsAPI interface {
	Weekly(ctx context.Context, workspaceID int64, params togglsdk.ReportParams, out any) error
	WeeklyAll(ctx context.Context, workspaceID int64, params togglsdk.ReportParams, out any) error
	Details(ctx context.Context, workspaceID int64, params togglsdk.ReportParams, out any) error
	DetailsAll(ctx context.Context, workspaceID int64, params togglsdk.ReportParams) ([]togglsdk.ReportRow, error)
	Totals(ctx context.Context, workspaceID int64, params togglsdk.ReportParams, out any) error
	ProjectsSummary(ctx context.Context, workspaceID int64, params togglsdk.ReportParams, out any) error
	Summary(ctx context.Context, workspaceID int64, params togglsdk.ReportParams, out any) error
}

type Params struct {
	Kind        enums.ReportKind
	WorkspaceID int64
	StartDate   string
	EndDate     string
	// Name 为导出文件名，为空时使用 <kind>-<workspace>-<startDate>.json
	Name string
}

// Result 为一次报表拉取与导出的结果。
type Result struct {
	Data      json.RawMessage
	Locations []string
}

// Runner 拉取报表并依次交给各个 Exporter。
type Runner struct {
	Reports   ReportsAPI
	Exporters []reportexport.Exporter
}

func NewRunner(reports ReportsAPI, exporters ...reportexport.Exporter) *Runner {
	return &Runner{Reports: reports, Exporters: exporters}
}

func (r *Runner) Run(ctx context.Context, p Params) (*Result, error) {
	if p.WorkspaceID <= 0 {
		return nil, fmt.Errorf("workspace 必须 > 0")
	}
	if p.Kind.NeedsStartDate() && strings.TrimSpace(p.StartDate) == "" {
		return nil, fmt.Errorf("报表 %s 需要 --start-date", p.Kind)
	}

	data, err := r.fetch(ctx, p)
	if err != nil {
		return nil, err
	}

	res := &Result{Data: data}
	name := p.Name
	if name == "" {
		name = defaultName(p)
	}
	for _, e := range r.Exporters {
		if e == nil {
			continue
		}
		loc, err := e.Export(ctx, name, data)
		if err != nil {
			return nil, err
		}
		res.Locations = append(res.Locations, loc)
	}
	return res, nil
}

func (r *Runner) fetch(ctx context.Context, p Params) (json.RawMessage, error) {
	params := togglsdk.ReportParams{}
	if p.StartDate != "" {
		params["start_date"] = p.StartDate
	}
	if p.EndDate != "" {
		params["end_date"] = p.EndDate
	}

	var out json.RawMessage
	var err error
	switch p.Kind {
	case enums.ReportKindWeekly:
		err = r.Reports.Weekly(ctx, p.WorkspaceID, params, &out)
	case enums.ReportKindWeeklyAll:
		err = r.Reports.WeeklyAll(ctx, p.WorkspaceID, params, &out)
	case enums.ReportKindDetails:
		err = r.Reports.Details(ctx, p.WorkspaceID, params, &out)
	case enums.ReportKindTotals:
		err = r.Reports.Totals(ctx, p.WorkspaceID, params, &out)
	case enums.ReportKindProjectsSummary:
		err = r.Reports.ProjectsSummary(ctx, p.WorkspaceID, params, &out)
	case enums.ReportKindSummary:
		err = r.Reports.Summary(ctx, p.WorkspaceID, params, &out)
	case enums.ReportKindDetailsAll:
		var rows []togglsdk.ReportRow
		rows, err = r.Reports.DetailsAll(ctx, p.WorkspaceID, params)
		if err == nil {
			if rows == nil {
				rows = []togglsdk.ReportRow{}
			}
			out, err = json.Marshal(rows)
		}
	default:
		return nil, fmt.Errorf("不支持的报表类型: %d", p.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("拉取 %s 报表失败: %w", p.Kind, err)
	}
	return out, nil
}

func defaultName(p Params) string {
	date := p.StartDate
	if date == "" {
		date = "last-week"
	}
	return fmt.Sprintf("%s-%d-%s.json", p.Kind, p.WorkspaceID, date)
}
