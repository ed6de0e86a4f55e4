package togglsdk

import "context"

// Clients 聚合 `/clients` 下的接口（Toggl 的"客户"资源）。
type Clients struct {
	resource
}

func (c Clients) Create(ctx context.Context, client ClientInfo) (*ClientInfo, error) {
	var out ClientInfo
	if err := c.postData(ctx, "clients", map[string]any{"client": client}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Clients) Get(ctx context.Context, clientID int64) (*ClientInfo, error) {
	var out ClientInfo
	if err := c.getData(ctx, "clients/"+id(clientID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Clients) Update(ctx context.Context, clientID int64, client ClientInfo) (*ClientInfo, error) {
	var out ClientInfo
	if err := c.putData(ctx, "clients/"+id(clientID), map[string]any{"client": client}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Clients) Delete(ctx context.Context, clientID int64) error {
	return c.doer.Delete(ctx, "clients/"+id(clientID), nil)
}

func (c Clients) List(ctx context.Context) ([]ClientInfo, error) {
	var out []ClientInfo
	if err := c.doer.Get(ctx, "clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c Clients) Projects(ctx context.Context, clientID int64, active string) ([]Project, error) {
	var out []Project
	if err := c.doer.Get(ctx, "clients/"+id(clientID)+"/projects", activeQuery(active), &out); err != nil {
		return nil, err
	}
	return out, nil
}
