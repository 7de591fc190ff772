package dto

type PluginInfo struct {
	Name         string
	Version      string
	Enabled      bool
	Binary       string
	Capabilities []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type ShareInput struct {
	PluginName string
	Filename   string
	Mode       string
	Content    string
	Count      int
}

type ShareOutput struct {
	PluginName  string
	Destination string
	Detail      string
}

type AnnounceInput struct {
	PluginName string
	Message    string
}
