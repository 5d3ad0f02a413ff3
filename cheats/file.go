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

package cheats

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/logger"
)

// MalformedFile is returned when a cheat file cannot be parsed.
const MalformedFile = "cheats: line %d: %v"

// Read cheats from the reader and add them to the list. Cheats with invalid
// codes are logged and skipped.
func (ch *Cheats) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	var current *Entry
	var line int

	flush := func() {
		if current == nil {
			return
		}
		if _, err := ch.Add(current.Name, current.Code, current.Enabled); err != nil {
			logger.Logf(logger.Allow, "cheats", "%s: %v", current.Name, err)
		}
		current = nil
	}

	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// top level node
		if text[0] != ' ' && text[0] != '\t' {
			flush()
			if trimmed != "cheat" {
				return curated.Errorf(MalformedFile, line, fmt.Sprintf("unexpected node %q", trimmed))
			}
			current = &Entry{}
			continue
		}

		if current == nil {
			return curated.Errorf(MalformedFile, line, "attribute outside of cheat")
		}

		key, value, _ := strings.Cut(trimmed, ":")
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "name":
			current.Name = value
		case "code":
			if current.Code != "" {
				current.Code += "+"
			}
			current.Code += value
		case "enable":
			current.Enabled = true
		default:
			return curated.Errorf(MalformedFile, line, fmt.Sprintf("unknown attribute %q", key))
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(MalformedFile, line, err)
	}

	flush()
	return nil
}

// Write the list of cheats in the format understood by Read().
func (ch *Cheats) Write(w io.Writer) error {
	for i, e := range ch.entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		s := fmt.Sprintf("cheat\n  name: %s\n  code: %s\n", e.Name, e.Code)
		if e.Enabled {
			s += "  enable\n"
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
