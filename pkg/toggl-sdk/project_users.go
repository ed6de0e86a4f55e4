package togglsdk

import "context"

type ProjectUsers struct {
	resource
}

func (p ProjectUsers) Create(ctx context.Context, pu ProjectUser) (*ProjectUser, error) {
	var out ProjectUser
	if err := p.postData(ctx, "project_users", map[string]any{"project_user": pu}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p ProjectUsers) Update(ctx context.Context, projectUserID int64, pu ProjectUser) (*ProjectUser, error) {
	var out ProjectUser
	if err := p.putData(ctx, "project_users/"+id(projectUserID), map[string]any{"project_user": pu}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p ProjectUsers) Delete(ctx context.Context, projectUserID int64) error {
	return p.doer.Delete(ctx, "project_users/"+id(projectUserID), nil)
}
