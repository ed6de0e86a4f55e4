package reportrun

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdayong228/toggl-client/internal/constants/enums"
	togglsdk "github.com/wangdayong228/toggl-client/pkg/toggl-sdk"
)

type fakeReports struct {
	calls  []string
	params togglsdk.ReportParams
	rows   []togglsdk.ReportRow
	err    error
}

func (f *fakeReports) record(name string, params togglsdk.ReportParams, out any) error {
	f.calls = append(f.calls, name)
	f.params = params
	if f.err != nil {
		return f.err
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = json.RawMessage(`{"report":"` + name + `"}`)
	}
	return nil
}

func (f *fakeReports) Weekly(ctx context.Context, wid int64, p togglsdk.ReportParams, out any) error {
	return f.record("weekly", p, out)
}

func (f *fakeReports) WeeklyAll(ctx context.Context, wid int64, p togglsdk.ReportParams, out any) error {
	return f.record("weekly-all", p, out)
}

func (f *fakeReports) Details(ctx context.Context, wid int64, p togglsdk.ReportParams, out any) error {
	return f.record("details", p, out)
}

func (f *fakeReports) DetailsAll(ctx context.Context, wid int64, p togglsdk.ReportParams) ([]togglsdk.ReportRow, error) {
	if err := f.record("details-all", p, nil); err != nil {
		return nil, err
	}
	return f.rows, nil
}

func (f *fakeReports) Totals(ctx context.Context, wid int64, p togglsdk.ReportParams, out any) error {
	return f.record("totals", p, out)
}

func (f *fakeReports) ProjectsSummary(ctx context.Context, wid int64, p togglsdk.ReportParams, out any) error {
	return f.record("projects-summary", p, out)
}

func (f *fakeReports) Summary(ctx context.Context, wid int64, p togglsdk.ReportParams, out any) error {
	return f.record("summary", p, out)
}

type memExporter struct {
	names []string
	data  [][]byte
}

func (m *memExporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	m.names = append(m.names, name)
	m.data = append(m.data, data)
	return "mem://" + name, nil
}

func TestRunner_DispatchesByKind(t *testing.T) {
	for _, kind := range []enums.ReportKind{
		enums.ReportKindWeekly,
		enums.ReportKindWeeklyAll,
		enums.ReportKindDetails,
		enums.ReportKindTotals,
		enums.ReportKindProjectsSummary,
		enums.ReportKindSummary,
	} {
		api := &fakeReports{}
		res, err := NewRunner(api).Run(context.Background(), Params{Kind: kind, WorkspaceID: 1, StartDate: "2026-10-01"})
		require.NoError(t, err, kind.String())
		require.Equal(t, []string{kind.String()}, api.calls)
		require.JSONEq(t, `{"report":"`+kind.String()+`"}`, string(res.Data))
		require.Equal(t, "2026-10-01", api.params["start_date"])
	}
}

func TestRunner_DetailsAllExports(t *testing.T) {
	api := &fakeReports{rows: []togglsdk.ReportRow{{"row_number": float64(1)}, {"row_number": float64(2)}}}
	exp := &memExporter{}

	res, err := NewRunner(api, exp).Run(context.Background(), Params{
		Kind:        enums.ReportKindDetailsAll,
		WorkspaceID: 42,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-30",
	})
	require.NoError(t, err)
	require.JSONEq(t, `[{"row_number":1},{"row_number":2}]`, string(res.Data))
	require.Equal(t, []string{"details-all-42-2026-09-01.json"}, exp.names)
	require.Equal(t, []string{"mem://details-all-42-2026-09-01.json"}, res.Locations)
	require.Equal(t, "2026-09-30", api.params["end_date"])
}

func TestRunner_Validation(t *testing.T) {
	api := &fakeReports{}
	r := NewRunner(api)

	_, err := r.Run(context.Background(), Params{Kind: enums.ReportKindDetails, WorkspaceID: 1})
	require.Error(t, err)
	_, err = r.Run(context.Background(), Params{Kind: enums.ReportKindWeekly})
	require.Error(t, err)
	require.Empty(t, api.calls)

	// weekly 不需要 start_date
	_, err = r.Run(context.Background(), Params{Kind: enums.ReportKindWeekly, WorkspaceID: 1})
	require.NoError(t, err)
}

func TestRunner_PropagatesAPIError(t *testing.T) {
	apiErr := &togglsdk.APIError{StatusCode: 402, Body: "premium only", Path: "workspace/1/summary/time_entries"}
	api := &fakeReports{err: apiErr}

	_, err := NewRunner(api).Run(context.Background(), Params{Kind: enums.ReportKindSummary, WorkspaceID: 1, StartDate: "2026-10-01"})
	var ae *togglsdk.APIError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, 402, ae.StatusCode)
}
