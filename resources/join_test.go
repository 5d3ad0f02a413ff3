// This file is part of Snescore.
//
// Snescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Snescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Snescore.  If not, see <https://www.gnu.org/licenses/>.

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snescore/snescore/resources"
	"github.com/snescore/snescore/test"
)

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := resources.JoinPath("sram", "game.srm")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".snescore", "sram", "game.srm"))

	// the directory has been created but not the file
	_, err = os.Stat(filepath.Join(".snescore", "sram"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	pth2, err := resources.JoinPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth2, pth)
}

func TestUniqueFilename(t *testing.T) {
	fn := resources.UniqueFilename("state", "SUPER GAME")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "state_SUPER_GAME_"))

	fn = resources.UniqueFilename("state", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "state_2"))
}
