package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wangdayong228/toggl-client/internal/reportsummary"
	togglsdk "github.com/wangdayong228/toggl-client/pkg/toggl-sdk"
)

var (
	hoursWorkspace int64
	hoursStartDate string
	hoursEndDate   string
)

func init() {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "按项目汇总工时（小时，保留两位小数）",
		Long:  "拉取 detailed 报表的全部分页，按 project_id 汇总 time_entries 的秒数并换算为小时。",
		RunE:  runHours,
	}

	cmd.Flags().Int64VarP(&hoursWorkspace, "workspace", "w", 0, "工作区 ID（缺省取配置项 workspaceId）")
	cmd.Flags().StringVar(&hoursStartDate, "start-date", "", "起始日期 YYYY-MM-DD（必填）")
	cmd.Flags().StringVar(&hoursEndDate, "end-date", "", "结束日期 YYYY-MM-DD（可选）")
	_ = cmd.MarkFlagRequired("start-date")

	rootCmd.AddCommand(cmd)
}

func runHours(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, cfg, err := newClient()
	if err != nil {
		return err
	}
	wid, err := resolveWorkspace(hoursWorkspace, cfg)
	if err != nil {
		return err
	}

	params := togglsdk.ReportParams{"start_date": hoursStartDate}
	if hoursEndDate != "" {
		params["end_date"] = hoursEndDate
	}
	rows, err := c.Reports.DetailsAll(ctx, wid, params)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hours 失败：", err)
		return err
	}

	s := reportsummary.Summarize(rows)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT\tENTRIES\tHOURS")
	for _, p := range s.Projects {
		name := fmt.Sprintf("%d", p.ProjectID)
		if p.ProjectID == 0 {
			name = "(no project)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, p.Entries, p.Hours.StringFixed(2))
	}
	fmt.Fprintf(tw, "TOTAL\t\t%s\n", s.TotalHours.StringFixed(2))
	return tw.Flush()
}
