// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package set

import (
	"testing"

	"go.astrophena.name/fixlicense/internal/testutil"
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := New[string](3)
	testutil.AssertEqual(t, s.Add("b.c"), true)
	testutil.AssertEqual(t, s.Add("a.c"), true)
	testutil.AssertEqual(t, s.Add("b.c"), false)
	testutil.AssertEqual(t, s.ToSortedSlice(), []string{"a.c", "b.c"})
}
