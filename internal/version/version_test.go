// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"go.astrophena.name/fixlicense/internal/testutil"
)

func TestLoadInfo(t *testing.T) {
	t.Parallel()

	platform := " (" + runtime.Version() + ", " + runtime.GOOS + "/" + runtime.GOARCH + ")\n"

	cases := map[string]struct {
		bi   *debug.BuildInfo
		want string
	}{
		"no build info": {
			want: "fixlicense devel" + platform,
		},
		"devel": {
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: "fixlicense devel" + platform,
		},
		"release": {
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}},
			want: "fixlicense v1.2.0" + platform,
		},
		"vcs": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "3f1c2a9"},
					{Key: "vcs.time", Value: "2026-10-19T10:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "fixlicense devel" + platform +
				"commit 3f1c2a9 (modified)\n" +
				"built at 2026-10-19T10:00:00Z\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := loadInfo("fixlicense", func() (*debug.BuildInfo, bool) {
				return tc.bi, tc.bi != nil
			})
			testutil.AssertEqual(t, got.String(), tc.want)
		})
	}
}

func TestCmdName(t *testing.T) {
	t.Parallel()

	if CmdName() == "" {
		t.Fatal("CmdName must not be empty")
	}
	testutil.AssertEqual(t, Version().Name, CmdName())
}
