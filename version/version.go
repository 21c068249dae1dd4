package version

import (
	gover "github.com/hashicorp/go-version"
)

var (
	// The full version string
	Version = "0.3.0"
	// GitCommit is set with --ldflags "-X github.com/bytom/timepart/version.GitCommit=$(git rev-parse HEAD)"
	GitCommit string
)

func init() {
	if len(GitCommit) >= 8 {
		Version += "-" + GitCommit[:8]
	}
}

// CompatibleWith reports whether data written by another version can be read.
// RULES:
// | local |           remote           |
// |   -   |             -              |
// | 0.x.y |  same major&minor version. |
// | 1.x.y |     same major version.    |
func CompatibleWith(remoteVerStr string) (bool, error) {
	localVersion, err := gover.NewVersion(Version)
	if err != nil {
		return false, err
	}
	remoteVersion, err := gover.NewVersion(remoteVerStr)
	if err != nil {
		return false, err
	}

	local, remote := localVersion.Segments(), remoteVersion.Segments()
	if local[0] == 0 {
		return local[0] == remote[0] && local[1] == remote[1], nil
	}
	return local[0] == remote[0], nil
}
