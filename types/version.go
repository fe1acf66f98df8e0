package types

// Version describes the server release and the client versions it will
// talk to, as served by /version.
type Version struct {
	Version               string `json:"version"`
	CLIVersionRequired    string `json:"cli_version_required"`
	CLIVersionRecommended string `json:"cli_version_recommended"`
}

var CurrentVersion = Version{
	Version: "0.2.0",
}
