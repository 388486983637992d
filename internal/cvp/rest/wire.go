package rest

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/netauto/cvpctl/internal/model"
)

// --- JSON wire types (private, for CVP API payloads) ---

// codeJSON is a value the API sends either as a string or as a number.
type codeJSON string

func (c *codeJSON) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = codeJSON(s)
		return nil
	}

	*c = codeJSON(data)
	return nil
}

type errorJSON struct {
	ErrorCode    codeJSON `json:"errorCode"`
	ErrorMessage string   `json:"errorMessage"`
}

type loginJSON struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type loginRespJSON struct {
	SessionID string `json:"sessionId"`
	Username  string `json:"username"`
}

type deviceJSON struct {
	Hostname           string `json:"hostname"`
	FQDN               string `json:"fqdn"`
	IPAddress          string `json:"ipAddress"`
	SystemMacAddress   string `json:"systemMacAddress"`
	SerialNumber       string `json:"serialNumber"`
	ModelName          string `json:"modelName"`
	Version            string `json:"version"`
	ContainerName      string `json:"containerName"`
	ParentContainerKey string `json:"parentContainerKey"`
	StreamingStatus    string `json:"streamingStatus"`
}

func (d deviceJSON) toModel() model.Device {
	return model.Device{
		Hostname:           d.Hostname,
		FQDN:               d.FQDN,
		IPAddress:          d.IPAddress,
		SystemMacAddress:   d.SystemMacAddress,
		SerialNumber:       d.SerialNumber,
		ModelName:          d.ModelName,
		Version:            d.Version,
		ContainerName:      d.ContainerName,
		ParentContainerKey: d.ParentContainerKey,
		Streaming:          strings.EqualFold(d.StreamingStatus, "active"),
	}
}

// configletJSON keeps the raw document so backups store everything the server
// returns, not only the fields we know about.
type configletJSON struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Config string `json:"config"`
	Type   string `json:"type"`

	raw map[string]any
}

func (c *configletJSON) UnmarshalJSON(data []byte) error {
	type plain configletJSON
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = configletJSON(p)
	c.raw = raw
	return nil
}

func (c configletJSON) toModel() model.Configlet {
	return model.Configlet{
		Key:    c.Key,
		Name:   c.Name,
		Config: c.Config,
		Type:   c.Type,
		Raw:    c.raw,
	}
}

type configletListJSON struct {
	Total int             `json:"total"`
	Data  []configletJSON `json:"data"`
}

type deviceConfigletsJSON struct {
	Total         int             `json:"total"`
	ConfigletList []configletJSON `json:"configletList"`
}

type addConfigletJSON struct {
	Config string `json:"config"`
	Name   string `json:"name"`
}

type addConfigletRespJSON struct {
	Data struct {
		Key string `json:"key"`
	} `json:"data"`
}

type updateConfigletJSON struct {
	Config string `json:"config"`
	Key    string `json:"key"`
	Name   string `json:"name"`
}

type configletRefJSON struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type containerJSON struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type topologySearchJSON struct {
	ContainerList []containerJSON `json:"containerList"`
}

// tempActionJSON is a pending topology change. Configlet and container fields
// are only set for the node types using them.
type tempActionJSON struct {
	Info                     string   `json:"info"`
	InfoPreview              string   `json:"infoPreview"`
	Note                     string   `json:"note"`
	Action                   string   `json:"action"`
	NodeType                 string   `json:"nodeType"`
	NodeID                   string   `json:"nodeId"`
	NodeName                 string   `json:"nodeName,omitempty"`
	ToID                     string   `json:"toId"`
	ToIDType                 string   `json:"toIdType"`
	ToName                   string   `json:"toName,omitempty"`
	FromID                   string   `json:"fromId"`
	FromName                 string   `json:"fromName,omitempty"`
	NodeIPAddress            string   `json:"nodeIpAddress,omitempty"`
	NodeTargetIPAddress      string   `json:"nodeTargetIpAddress,omitempty"`
	ConfigletList            []string `json:"configletList,omitempty"`
	ConfigletNamesList       []string `json:"configletNamesList,omitempty"`
	IgnoreConfigletList      []string `json:"ignoreConfigletList,omitempty"`
	IgnoreConfigletNamesList []string `json:"ignoreConfigletNamesList,omitempty"`
	ChildTasks               []string `json:"childTasks"`
	ParentTask               string   `json:"parentTask"`
}

type tempActionsJSON struct {
	Data []tempActionJSON `json:"data"`
}

type saveTopologyRespJSON struct {
	Data struct {
		Status  string     `json:"status"`
		TaskIDs []codeJSON `json:"taskIds"`
	} `json:"data"`
}

func (s saveTopologyRespJSON) taskIDs() []string {
	ids := make([]string, 0, len(s.Data.TaskIDs))
	for _, id := range s.Data.TaskIDs {
		ids = append(ids, string(id))
	}
	return ids
}

type taskJSON struct {
	WorkOrderID                codeJSON `json:"workOrderId"`
	Description                string   `json:"description"`
	TaskStatus                 string   `json:"taskStatus"`
	WorkOrderUserDefinedStatus string   `json:"workOrderUserDefinedStatus"`
	NetElementHostName         string   `json:"netElementHostName"`
	CreatedBy                  string   `json:"createdBy"`
	CreatedDateInLongFormat    int64    `json:"createdDateInLongFormat"`
}

func (t taskJSON) toModel() model.Task {
	status := t.TaskStatus
	if status == "" {
		status = t.WorkOrderUserDefinedStatus
	}
	if status == "" {
		status = string(model.TaskStatusUnknown)
	}

	var createdAt time.Time
	if t.CreatedDateInLongFormat > 0 {
		createdAt = time.UnixMilli(t.CreatedDateInLongFormat).UTC()
	}

	return model.Task{
		ID:          string(t.WorkOrderID),
		Description: t.Description,
		Status:      model.TaskStatus(status),
		Hostname:    t.NetElementHostName,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   createdAt,
	}
}

type taskListJSON struct {
	Total int        `json:"total"`
	Data  []taskJSON `json:"data"`
}

type executeTaskJSON struct {
	Data []string `json:"data"`
}

type changeControlTaskJSON struct {
	TaskID              string `json:"taskId"`
	TaskOrder           int    `json:"taskOrder"`
	SnapshotTemplateKey string `json:"snapshotTemplateKey"`
	ClonedCcID          string `json:"clonedCcId"`
}

type changeControlJSON struct {
	TimeZone            string                  `json:"timeZone"`
	CountryID           string                  `json:"countryId"`
	DateTime            string                  `json:"dateTime"`
	CcName              string                  `json:"ccName"`
	SnapshotTemplateKey string                  `json:"snapshotTemplateKey"`
	Type                string                  `json:"type"`
	StopOnError         string                  `json:"stopOnError"`
	DeletedTaskIDs      []string                `json:"deletedTaskIds"`
	ChangeControlTasks  []changeControlTaskJSON `json:"changeControlTasks"`
}

func newChangeControlJSON(cc model.ChangeControl) changeControlJSON {
	tasks := make([]changeControlTaskJSON, 0, len(cc.Changes))
	for _, ch := range cc.Changes {
		tasks = append(tasks, changeControlTaskJSON{
			TaskID:              ch.TaskID,
			TaskOrder:           ch.Order,
			SnapshotTemplateKey: cc.SnapshotTemplate,
		})
	}

	return changeControlJSON{
		TimeZone:            cc.TimeZone,
		CountryID:           cc.Country,
		DateTime:            cc.ScheduleAt,
		CcName:              cc.Name,
		SnapshotTemplateKey: cc.SnapshotTemplate,
		Type:                cc.Type,
		StopOnError:         strconv.FormatBool(cc.StopOnError),
		DeletedTaskIDs:      []string{},
		ChangeControlTasks:  tasks,
	}
}

type changeControlRespJSON struct {
	Data string   `json:"data"`
	CcID codeJSON `json:"ccId"`
}
