package togglsdk

import "context"

type Tags struct {
	resource
}

func (t Tags) Create(ctx context.Context, tag Tag) (*Tag, error) {
	var out Tag
	if err := t.postData(ctx, "tags", map[string]any{"tag": tag}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t Tags) Update(ctx context.Context, tagID int64, tag Tag) (*Tag, error) {
	var out Tag
	if err := t.putData(ctx, "tags/"+id(tagID), map[string]any{"tag": tag}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t Tags) Delete(ctx context.Context, tagID int64) error {
	return t.doer.Delete(ctx, "tags/"+id(tagID), nil)
}
