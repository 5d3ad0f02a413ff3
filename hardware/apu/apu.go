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

package apu

// NumPorts is the number of communication ports. The ports are mirrored
// throughout $2140 to $217f.
const NumPorts = 4

// boot ROM handshake values.
const (
	readySignature0 = 0xaa
	readySignature1 = 0xbb
	kick            = 0xcc
)

// State of the APU ports.
type State struct {
	// values written by the CPU
	FromCPU [NumPorts]uint8

	// values read by the CPU
	ToCPU [NumPorts]uint8

	// the CPU has started a transfer
	Kicked bool

	// number of samples produced since reset
	Samples int64
}

// APU is the CPU facing side of the audio processing unit.
type APU struct {
	state *State
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU() *APU {
	apu := &APU{}
	apu.Reset()
	return apu
}

// Reset the ports to the boot ROM ready state.
func (apu *APU) Reset() {
	apu.state = &State{}
	apu.state.ToCPU[0] = readySignature0
	apu.state.ToCPU[1] = readySignature1
}

// Snapshot creates a copy of the APU state.
func (apu *APU) Snapshot() *State {
	n := *apu.state
	return &n
}

// Plumb a previously created snapshot into the APU.
func (apu *APU) Plumb(state *State) {
	n := *state
	apu.state = &n
}

// Read the port at address. Only the lowest two bits of the address are
// significant.
func (apu *APU) Read(addr uint16) uint8 {
	return apu.state.ToCPU[addr&0x03]
}

// Write to the port at address. Only the lowest two bits of the address are
// significant.
func (apu *APU) Write(addr uint16, data uint8) {
	port := addr & 0x03
	apu.state.FromCPU[port] = data

	if !apu.state.Kicked {
		if port != 0 || data != kick {
			return
		}
		apu.state.Kicked = true
	}

	apu.state.ToCPU[port] = data
}

// Sample returns the next stereo sample.
func (apu *APU) Sample() (int16, int16) {
	apu.state.Samples++
	return 0, 0
}
