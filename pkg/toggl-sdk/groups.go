package togglsdk

import "context"

type Groups struct {
	resource
}

func (g Groups) Create(ctx context.Context, group Group) (*Group, error) {
	var out Group
	if err := g.postData(ctx, "groups", map[string]any{"group": group}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g Groups) Update(ctx context.Context, groupID int64, group Group) (*Group, error) {
	var out Group
	if err := g.putData(ctx, "groups/"+id(groupID), map[string]any{"group": group}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g Groups) Delete(ctx context.Context, groupID int64) error {
	return g.doer.Delete(ctx, "groups/"+id(groupID), nil)
}
