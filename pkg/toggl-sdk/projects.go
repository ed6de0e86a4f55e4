package togglsdk

import (
	"context"
	"net/url"
)

// Projects 聚合 `/projects` 下的接口。
type Projects struct {
	resource
}

func (p Projects) Create(ctx context.Context, project Project) (*Project, error) {
	var out Project
	if err := p.postData(ctx, "projects", map[string]any{"project": project}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p Projects) Get(ctx context.Context, projectID int64) (*Project, error) {
	var out Project
	if err := p.getData(ctx, "projects/"+id(projectID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p Projects) Update(ctx context.Context, projectID int64, project Project) (*Project, error) {
	var out Project
	if err := p.putData(ctx, "projects/"+id(projectID), map[string]any{"project": project}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p Projects) Delete(ctx context.Context, projectID int64) error {
	return p.doer.Delete(ctx, "projects/"+id(projectID), nil)
}

func (p Projects) ProjectUsers(ctx context.Context, projectID int64) ([]ProjectUser, error) {
	var out []ProjectUser
	if err := p.doer.Get(ctx, "projects/"+id(projectID)+"/project_users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p Projects) Tasks(ctx context.Context, projectID int64) ([]Task, error) {
	var out []Task
	if err := p.doer.Get(ctx, "projects/"+id(projectID)+"/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func activeQuery(active string) url.Values {
	if active == "" {
		return nil
	}
	return url.Values{"active": []string{active}}
}
