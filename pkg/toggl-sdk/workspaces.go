package togglsdk

import "context"

// Workspaces 聚合 `/workspaces` 下的接口。
type Workspaces struct {
	resource
}

func (w Workspaces) List(ctx context.Context) ([]Workspace, error) {
	var out []Workspace
	if err := w.doer.Get(ctx, "workspaces", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w Workspaces) Get(ctx context.Context, workspaceID int64) (*Workspace, error) {
	var out Workspace
	if err := w.getData(ctx, "workspaces/"+id(workspaceID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (w Workspaces) Update(ctx context.Context, workspaceID int64, ws Workspace) (*Workspace, error) {
	var out Workspace
	if err := w.putData(ctx, "workspaces/"+id(workspaceID), map[string]any{"workspace": ws}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (w Workspaces) Users(ctx context.Context, workspaceID int64) ([]User, error) {
	var out []User
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w Workspaces) WorkspaceUsers(ctx context.Context, workspaceID int64) ([]WorkspaceUser, error) {
	var out []WorkspaceUser
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/workspace_users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w Workspaces) Clients(ctx context.Context, workspaceID int64) ([]ClientInfo, error) {
	var out []ClientInfo
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w Workspaces) Groups(ctx context.Context, workspaceID int64) ([]Group, error) {
	var out []Group
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/groups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Projects 的 active 取值为 "true" / "false" / "both"，为空则按服务端默认（只返回 active）。
func (w Workspaces) Projects(ctx context.Context, workspaceID int64, active string) ([]Project, error) {
	var out []Project
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/projects", activeQuery(active), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w Workspaces) Tasks(ctx context.Context, workspaceID int64, active string) ([]Task, error) {
	var out []Task
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/tasks", activeQuery(active), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w Workspaces) Tags(ctx context.Context, workspaceID int64) ([]Tag, error) {
	var out []Tag
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w Workspaces) ProjectUsers(ctx context.Context, workspaceID int64) ([]ProjectUser, error) {
	var out []ProjectUser
	if err := w.doer.Get(ctx, "workspaces/"+id(workspaceID)+"/project_users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
