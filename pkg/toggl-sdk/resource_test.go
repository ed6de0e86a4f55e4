package togglsdk

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func jsonResponder(body string) func(n int, req *TransportRequest) (*Response, error) {
	return func(n int, req *TransportRequest) (*Response, error) {
		return &Response{StatusCode: http.StatusOK, Body: []byte(body)}, nil
	}
}

func TestProjects_CreateWrapsAndUnwraps(t *testing.T) {
	tr := &mockTransport{handler: jsonResponder(`{"data":{"id":99,"wid":1,"name":"Site"}}`)}
	c, _ := newTestClient(t, Config{}, tr)

	p, err := c.Projects.Create(context.Background(), Project{WID: 1, Name: "Site"})
	require.NoError(t, err)
	require.EqualValues(t, 99, p.ID)
	require.Equal(t, "Site", p.Name)

	require.Equal(t, http.MethodPost, tr.calls[0].Method)
	require.Equal(t, DefaultBaseURL+"/projects", tr.calls[0].URL)
	require.JSONEq(t, `{"project":{"wid":1,"name":"Site"}}`, tr.calls[0].Body)
}

func TestWorkspaces_ProjectsActiveFilter(t *testing.T) {
	tr := &mockTransport{handler: jsonResponder(`[{"id":1,"name":"A"},{"id":2,"name":"B"}]`)}
	c, _ := newTestClient(t, Config{}, tr)

	projects, err := c.Workspaces.Projects(context.Background(), 7, "both")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	u, err := url.Parse(tr.calls[0].URL)
	require.NoError(t, err)
	require.Equal(t, "/api/v8/workspaces/7/projects", u.Path)
	require.Equal(t, "both", u.Query().Get("active"))
}

func TestTimeEntries_CurrentNone(t *testing.T) {
	tr := &mockTransport{handler: jsonResponder(`{"data":null}`)}
	c, _ := newTestClient(t, Config{}, tr)

	te, err := c.TimeEntries.Current(context.Background())
	require.NoError(t, err)
	require.Nil(t, te)
}

func TestTimeEntries_StartSetsCreatedWith(t *testing.T) {
	tr := &mockTransport{handler: jsonResponder(`{"data":{"id":5,"description":"focus","duration":-1700000000}}`)}
	c, _ := newTestClient(t, Config{}, tr)

	te, err := c.TimeEntries.Start(context.Background(), TimeEntry{Description: "focus"})
	require.NoError(t, err)
	require.EqualValues(t, 5, te.ID)
	require.Less(t, te.Duration, int64(0))

	body := decodeBody(t, tr.calls[0])
	entry := body["time_entry"].(map[string]any)
	require.Equal(t, sdkUserAgent, entry["created_with"])
	require.Equal(t, DefaultBaseURL+"/time_entries/start", tr.calls[0].URL)
}

func TestTimeEntries_StopHasNoBody(t *testing.T) {
	tr := &mockTransport{handler: jsonResponder(`{"data":{"id":5,"duration":600}}`)}
	c, _ := newTestClient(t, Config{}, tr)

	te, err := c.TimeEntries.Stop(context.Background(), 5)
	require.NoError(t, err)
	require.EqualValues(t, 600, te.Duration)
	require.Equal(t, http.MethodPut, tr.calls[0].Method)
	require.Equal(t, DefaultBaseURL+"/time_entries/5/stop", tr.calls[0].URL)
	require.Empty(t, tr.calls[0].Body)
}

func TestClients_DeleteAcceptsEmptyBody(t *testing.T) {
	tr := &mockTransport{handler: jsonResponder("")}
	c, _ := newTestClient(t, Config{}, tr)

	require.NoError(t, c.Clients.Delete(context.Background(), 12))
	require.Equal(t, http.MethodDelete, tr.calls[0].Method)
	require.Equal(t, DefaultBaseURL+"/clients/12", tr.calls[0].URL)
}

func TestTags_UpdateNotFound(t *testing.T) {
	tr := &mockTransport{handler: func(n int, req *TransportRequest) (*Response, error) {
		return &Response{StatusCode: http.StatusNotFound, Body: []byte("Tag not found")}, nil
	}}
	c, _ := newTestClient(t, Config{}, tr)

	_, err := c.Tags.Update(context.Background(), 3, Tag{Name: "x"})
	require.True(t, IsStatus(err, http.StatusNotFound))
	require.Contains(t, err.Error(), "tags/3")
}
