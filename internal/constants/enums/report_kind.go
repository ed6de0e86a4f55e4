package enums

import (
	"github.com/nft-rainbow/rainbow-goutils/utils/enumutils"
)

// ReportKind 对应 Reports API 的各类报表，CLI 通过 --kind 选择。
type ReportKind int8

const (
	ReportKindWeekly ReportKind = iota + 1
	ReportKindWeeklyAll
	ReportKindDetails
	ReportKindDetailsAll
	ReportKindTotals
	ReportKindProjectsSummary
	ReportKindSummary
)

var ReportKindEb enumutils.EnumBase[ReportKind]

func init() {
	ReportKindEb = enumutils.NewEnumBase("ReportKind", map[ReportKind]string{
		ReportKindWeekly:          "weekly",
		ReportKindWeeklyAll:       "weekly-all",
		ReportKindDetails:         "details",
		ReportKindDetailsAll:      "details-all",
		ReportKindTotals:          "totals",
		ReportKindProjectsSummary: "projects-summary",
		ReportKindSummary:         "summary",
	})
}

func (k ReportKind) MarshalText() ([]byte, error) {
	return ReportKindEb.MarshalText(k)
}

func (k *ReportKind) UnmarshalText(data []byte) error {
	val, err := ReportKindEb.UnmarshalText(data)
	if err != nil {
		return err
	}
	*k = val
	return nil
}

func (k ReportKind) String() string {
	return ReportKindEb.String(k)
}

// NeedsStartDate 表示该类报表要求调用方提供 start_date；weekly 类自行计算。
func (k ReportKind) NeedsStartDate() bool {
	return k != ReportKindWeekly && k != ReportKindWeeklyAll
}

func ParseReportKind(s string) (ReportKind, error) {
	return ReportKindEb.Parse(s)
}
