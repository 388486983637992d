package model

// Device is a network element registered in the server inventory.
type Device struct {
	Hostname           string
	FQDN               string
	IPAddress          string
	SystemMacAddress   string
	SerialNumber       string
	ModelName          string
	Version            string
	ContainerName      string
	ParentContainerKey string
	Streaming          bool
}

// Deployable returns true when the device has the information required to push
// changes to it.
func (d Device) Deployable() bool {
	return d.Hostname != "" && d.SystemMacAddress != ""
}
