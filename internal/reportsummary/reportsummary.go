package reportsummary

import (
	"sort"

	"github.com/shopspring/decimal"

	togglsdk "github.com/wangdayong228/toggl-client/pkg/toggl-sdk"
)

var secondsPerHour = decimal.NewFromInt(3600)

// ProjectHours 为单个项目在 detailed 报表中的累计工时。
type ProjectHours struct {
	// ProjectID 为 0 表示未归属项目的条目
	ProjectID int64
	Entries   int
	Seconds   int64
	Hours     decimal.Decimal
}

// Summary 按项目汇总 detailed 报表行。
type Summary struct {
	Projects []ProjectHours
	// TotalHours 为各项目已舍入小时数之和，与逐行打印的值对得上
	TotalHours decimal.Decimal
}

// Summarize 汇总 DetailsAll 返回的行：每行的 time_entries[].seconds 计入该行 project_id。
// 小时数保留两位小数，项目按 ProjectID 升序。
func Summarize(rows []togglsdk.ReportRow) Summary {
	byProject := make(map[int64]*ProjectHours)

	for _, row := range rows {
		pid := int64Field(row, "project_id")
		ph, ok := byProject[pid]
		if !ok {
			ph = &ProjectHours{ProjectID: pid}
			byProject[pid] = ph
		}

		entries, _ := row["time_entries"].([]any)
		for _, e := range entries {
			te, ok := e.(map[string]any)
			if !ok {
				continue
			}
			secs := int64Field(te, "seconds")
			ph.Entries++
			ph.Seconds += secs
		}
	}

	out := Summary{
		Projects:   make([]ProjectHours, 0, len(byProject)),
		TotalHours: decimal.Zero,
	}
	for _, ph := range byProject {
		ph.Hours = toHours(ph.Seconds)
		out.TotalHours = out.TotalHours.Add(ph.Hours)
		out.Projects = append(out.Projects, *ph)
	}
	sort.Slice(out.Projects, func(i, j int) bool {
		return out.Projects[i].ProjectID < out.Projects[j].ProjectID
	})
	return out
}

func toHours(seconds int64) decimal.Decimal {
	return decimal.NewFromInt(seconds).Div(secondsPerHour).Round(2)
}

func int64Field(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}
