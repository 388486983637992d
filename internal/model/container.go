package model

// Container is a node of the server provisioning topology.
type Container struct {
	Key  string
	Name string
	Root bool
}
