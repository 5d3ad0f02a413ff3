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

package timing

// Event is a point in time reported by Advance().
type Event int

// List of valid Event values.
const (
	ScanlineBoundary Event = iota
	VBlankStart
	FrameComplete
	AudioSampleReady
)

func (ev Event) String() string {
	switch ev {
	case ScanlineBoundary:
		return "scanline"
	case VBlankStart:
		return "vblank"
	case FrameComplete:
		return "frame"
	case AudioSampleReady:
		return "audio"
	}
	return "unknown event"
}

// EventSink receives the events emitted by Advance().
type EventSink interface {
	TimingEvent(ev Event)
}
