package togglsdk

import "time"

// 说明：
// - 字段对齐 Toggl v8 接口的 JSON 命名（snake_case），只收录常用字段。
// - 创建/更新时 v8 要求把对象包在资源名下（例如 {"project": {...}}），由各子客户端负责包装。
// - 服务端维护的时间字段用指针，避免零值被序列化进请求体。

type Workspace struct {
	ID                          int64      `json:"id,omitempty"`
	Name                        string     `json:"name,omitempty"`
	Premium                     bool       `json:"premium,omitempty"`
	Admin                       bool       `json:"admin,omitempty"`
	DefaultHourlyRate           float64    `json:"default_hourly_rate,omitempty"`
	DefaultCurrency             string     `json:"default_currency,omitempty"`
	OnlyAdminsMayCreateProjects bool       `json:"only_admins_may_create_projects,omitempty"`
	OnlyAdminsSeeBillableRates  bool       `json:"only_admins_see_billable_rates,omitempty"`
	Rounding                    int        `json:"rounding,omitempty"`
	RoundingMinutes             int        `json:"rounding_minutes,omitempty"`
	LogoURL                     string     `json:"logo_url,omitempty"`
	At                          *time.Time `json:"at,omitempty"`
}

type WorkspaceUser struct {
	ID        int64  `json:"id,omitempty"`
	UID       int64  `json:"uid,omitempty"`
	WID       int64  `json:"wid,omitempty"`
	Admin     bool   `json:"admin,omitempty"`
	Active    bool   `json:"active,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	InviteURL string `json:"invite_url,omitempty"`
}

type User struct {
	ID       int64  `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Fullname string `json:"fullname,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// ClientInfo 是 Toggl 里的"客户"资源（项目所属的客户方），与 SDK 的 Client 无关。
type ClientInfo struct {
	ID    int64      `json:"id,omitempty"`
	WID   int64      `json:"wid,omitempty"`
	Name  string     `json:"name,omitempty"`
	Notes string     `json:"notes,omitempty"`
	At    *time.Time `json:"at,omitempty"`
}

type Group struct {
	ID   int64      `json:"id,omitempty"`
	WID  int64      `json:"wid,omitempty"`
	Name string     `json:"name,omitempty"`
	At   *time.Time `json:"at,omitempty"`
}

type Tag struct {
	ID   int64  `json:"id,omitempty"`
	WID  int64  `json:"wid,omitempty"`
	Name string `json:"name,omitempty"`
}

type Project struct {
	ID             int64      `json:"id,omitempty"`
	WID            int64      `json:"wid,omitempty"`
	CID            int64      `json:"cid,omitempty"`
	Name           string     `json:"name,omitempty"`
	Active         *bool      `json:"active,omitempty"`
	IsPrivate      *bool      `json:"is_private,omitempty"`
	Template       bool       `json:"template,omitempty"`
	Billable       bool       `json:"billable,omitempty"`
	AutoEstimates  bool       `json:"auto_estimates,omitempty"`
	EstimatedHours int        `json:"estimated_hours,omitempty"`
	Color          string     `json:"color,omitempty"`
	HexColor       string     `json:"hex_color,omitempty"`
	Rate           float64    `json:"rate,omitempty"`
	At             *time.Time `json:"at,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

type ProjectUser struct {
	ID      int64   `json:"id,omitempty"`
	PID     int64   `json:"pid,omitempty"`
	UID     int64   `json:"uid,omitempty"`
	WID     int64   `json:"wid,omitempty"`
	Manager bool    `json:"manager,omitempty"`
	Rate    float64 `json:"rate,omitempty"`
	// Fields 为逗号分隔的额外返回字段，例如 "fullname"。
	Fields string `json:"fields,omitempty"`
}

type Task struct {
	ID               int64  `json:"id,omitempty"`
	Name             string `json:"name,omitempty"`
	PID              int64  `json:"pid,omitempty"`
	WID              int64  `json:"wid,omitempty"`
	UID              int64  `json:"uid,omitempty"`
	EstimatedSeconds int64  `json:"estimated_seconds,omitempty"`
	Active           bool   `json:"active,omitempty"`
}

type TimeEntry struct {
	ID          int64      `json:"id,omitempty"`
	WID         int64      `json:"wid,omitempty"`
	PID         int64      `json:"pid,omitempty"`
	TID         int64      `json:"tid,omitempty"`
	Description string     `json:"description,omitempty"`
	Billable    bool       `json:"billable,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	Stop        *time.Time `json:"stop,omitempty"`
	// Duration 单位为秒；正在计时的条目为负数（-start 的 unix 时间戳）。
	Duration    int64      `json:"duration,omitempty"`
	CreatedWith string     `json:"created_with,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	DurOnly     bool       `json:"duronly,omitempty"`
	At          *time.Time `json:"at,omitempty"`
}
