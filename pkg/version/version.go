package version

import (
	"github.com/carlmjohnson/versioninfo"
)

/* injected */

var liftoffRelease string

/* ** */

type LiftoffVersionInfoGit struct {
	Commit string `json:"commit"`
	Dirty  bool   `json:"dirty"`
}

type LiftoffVersionInfo struct {
	Release string                `json:"release"`
	Git     LiftoffVersionInfoGit `json:"git"`
}

func GetLiftoffRelease() *LiftoffVersionInfo {
	release := liftoffRelease

	if release == "" {
		release = "unknown"
	}

	return &LiftoffVersionInfo{
		Release: release,
		Git: LiftoffVersionInfoGit{
			Commit: versioninfo.Revision,
			Dirty:  versioninfo.DirtyBuild,
		},
	}
}
