package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the mofc CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the build description printed by `mofc version`.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
}

// Colored renders the version with each numeric component highlighted.
// Suffixes after '-' or '+' are left plain.
func Colored(v string) string {
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + suffix
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mofc %s", Colored(i.Version))
	if i.GitCommit != "" {
		fmt.Fprintf(&b, " (%s)", i.GitCommit)
	}
	if i.BuildDate != "" {
		fmt.Fprintf(&b, " built %s", i.BuildDate)
	}
	return b.String()
}
