// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package restrict

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/landlock-lsm/go-landlock/landlock"
)

func TestDoUnlessTesting(t *testing.T) {
	dir := t.TempDir()
	// Would deny writes everywhere else if applied.
	DoUnlessTesting(context.Background(), landlock.RODirs(dir))

	if err := os.WriteFile(filepath.Join(t.TempDir(), "ok"), []byte("ok"), 0o644); err != nil {
		t.Fatalf("sandbox must not be applied under go test: %v", err)
	}
}
