package version

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// Name is the program name printed in version strings
const Name = "stylecfg"

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// Info describes the running binary
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the current version info
func Get() Info {
	return Info{
		Name:      Name,
		Version:   Version,
		BuildTime: BuildTime,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s %s)",
		i.Name, i.Version, i.Commit, i.BuildTime, i.GoVersion, i.Platform)
}

// JSON returns the info as an indented JSON document
func (i Info) JSON() string {
	data, _ := json.MarshalIndent(i, "", "  ")
	return string(data)
}

// Short returns the bare version
func Short() string {
	return Version
}

// Full returns the one-line description of the build
func Full() string {
	return Get().String()
}
