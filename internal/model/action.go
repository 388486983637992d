package model

// ActionType is the kind of object an action works on.
type ActionType string

const (
	ActionTypeConfiglet     ActionType = "configlet"
	ActionTypeContainer     ActionType = "container"
	ActionTypeChangeControl ActionType = "change-control"
)

// Action names.
const (
	ActionAdd           = "add"
	ActionUpdate        = "update"
	ActionDelete        = "delete"
	ActionAddDevices    = "add-devices"
	ActionRemoveDevices = "remove-devices"
	ActionAttachDevice  = "attach-device"
	ActionCreate        = "create"
	ActionDestroy       = "destroy"
)

// Action is a single automation step loaded from an actions file. Apply is nil
// when the action doesn't say anything about deployment.
type Action struct {
	Name       string
	Type       ActionType
	Action     string
	Configlet  string
	Container  string
	Parent     string
	Devices    []string
	Apply      *bool
	Country    string
	TimeZone   string
	ScheduleAt string
	SnapshotID string
	Mode       ChangeOrderMode
}

// ShouldApply returns true when the action asks for its changes to be deployed.
func (a Action) ShouldApply() bool { return a.Apply != nil && *a.Apply }
