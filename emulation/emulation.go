// This file is part of mdcore.
//
// mdcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdcore.  If not, see <https://www.gnu.org/licenses/>.

// Package emulation defines the lifecycle state an external agent (the CLI,
// a devtools endpoint, a test harness) observes a running Console through,
// without that agent needing to import the hardware/console package
// directly.
package emulation

// Machine is a minimal abstraction of the running core. Exists mainly to
// avoid a circular import back into hardware/console.
//
// The only likely implementation of this interface is
// hardware/console.Console.
type Machine interface {
	// MasterCycle returns the scheduler's monotonic master-cycle counter.
	MasterCycle() uint64
}

// Agent defines the public functions required for an external observer
// (the stats endpoint, the CLI's headless loop) to interface with the
// running core.
type Agent interface {
	Machine() Machine

	// Send a request to set an emulation feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Immediate request for the state of the emulation.
	State() State
}

// State indicates the emulation's state.
type State int

// List of possible emulation states. Values are ordered so that order
// comparisons are meaningful: Running is "greater than" Stepping, Paused,
// etc.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

// Event describes an event that might occur in the emulation which is
// outside the scope of the Console itself - for example, when the
// emulation is paused an EventPause can be sent to an observer.
type Event int

// List of defined events.
const (
	EventPause Event = iota
	EventRun
	EventScreenshot
)
