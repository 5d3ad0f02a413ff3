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

package govern

import (
	"sync"

	"github.com/snescore/snescore/assert"
)

// Governor is the pause and resume handshake between the run loop and the
// controlling goroutines.
type Governor struct {
	mu   sync.Mutex
	cond *sync.Cond

	state State

	// a run loop is active
	loop bool

	// goroutine ID of the active run loop
	goroutine uint64

	pauseReq bool
	stopReq  bool
}

// NewGovernor is the preferred method of initialisation for the Governor
// type.
func NewGovernor() *Governor {
	g := &Governor{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// State returns the current state.
func (g *Governor) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Start is called by the run loop before it begins.
func (g *Governor) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loop = true
	g.goroutine = assert.GetGoRoutineID()
	g.stopReq = false
	g.state = Running
	g.cond.Broadcast()
}

// End is called by the run loop when it exits.
func (g *Governor) End() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loop = false
	g.pauseReq = false
	g.stopReq = false
	g.state = Ending
	g.cond.Broadcast()
}

// Check is called by the run loop at instruction boundaries. If a pause has
// been requested the function blocks until resumed. Returns false if the
// loop should exit.
func (g *Governor) Check() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopReq {
		return false
	}

	if !g.pauseReq {
		return true
	}

	g.state = Paused
	g.cond.Broadcast()

	for g.pauseReq && !g.stopReq {
		g.cond.Wait()
	}

	g.state = Running
	g.cond.Broadcast()

	return !g.stopReq
}

// Pause the run loop. Blocks until the loop is paused. Returns immediately if
// no loop is running.
func (g *Governor) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.loop {
		return
	}

	g.pauseReq = true
	for g.loop && g.state != Paused {
		g.cond.Wait()
	}
}

// Resume a paused run loop.
func (g *Governor) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pauseReq = false
	g.cond.Broadcast()
}

// Stop asks the run loop to exit. Does not wait for the loop to end.
func (g *Governor) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.loop {
		return
	}
	g.stopReq = true
	g.pauseReq = false
	g.cond.Broadcast()
}

// Quiesced returns true if no run loop is executing instructions. The run
// loop goroutine is always quiesced from its own point of view because it
// can only call this function between instructions.
func (g *Governor) Quiesced() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.loop || g.state == Paused || g.goroutine == assert.GetGoRoutineID()
}
