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

// Package inputscript parses the line-based CSV controller script described
// in spec §6: "frame, p1_buttons, p2_buttons", a 12-character button string
// per port, sparse over frame number with last-defined-state semantics.
package inputscript

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mdcore/mdcore/curated"
	"github.com/mdcore/mdcore/hardware/controller"
)

// alphabet maps each of the 12 button-string letters to its bit, in the
// documented column order U,D,L,R,A,B,C,S,X,Y,Z,M. '.' (released) carries
// no bit and is skipped.
var alphabet = [12]struct {
	letter byte
	button controller.Button
}{
	{'U', controller.Up}, {'D', controller.Down}, {'L', controller.Left}, {'R', controller.Right},
	{'A', controller.A}, {'B', controller.B}, {'C', controller.C}, {'S', controller.Start},
	{'X', controller.X}, {'Y', controller.Y}, {'Z', controller.Z}, {'M', controller.Mode},
}

const (
	// ErrBadFieldCount is returned for a line that isn't exactly
	// frame,p1,p2.
	ErrBadFieldCount = "inputscript: line %d: expected 3 fields, got %d"
	// ErrBadFrameNumber is returned when the frame column doesn't parse
	// as a non-negative integer.
	ErrBadFrameNumber = "inputscript: line %d: invalid frame number %q: %v"
	// ErrBadButtonString is returned for a button column that isn't
	// exactly 12 characters over the documented alphabet.
	ErrBadButtonString = "inputscript: line %d: invalid button string %q: %v"
	// ErrFrameNotAscending is returned when a frame number doesn't
	// strictly increase from the previous line - the sparse/last-defined
	// model assumes an ordered script.
	ErrFrameNotAscending = "inputscript: line %d: frame %d is not greater than the previous frame %d"
)

// Event is one parsed line: the frame at which p1/p2's state takes effect.
type Event struct {
	Frame int
	P1    controller.Button
	P2    controller.Button
}

// Parse reads every line of a controller script, per spec §6. Lines are
// validated strictly so a malformed script fails to load rather than
// silently desyncing playback; an empty or malformed line never produces a
// best-effort partial Event.
func Parse(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var events []Event
	lastFrame := -1
	line := 0

	for {
		line++
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf("inputscript: line %d: %v", line, err)
		}

		if len(rec) != 3 {
			return nil, curated.Errorf(ErrBadFieldCount, line, len(rec))
		}

		frame, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, curated.Errorf(ErrBadFrameNumber, line, rec[0], err)
		}
		if frame <= lastFrame {
			return nil, curated.Errorf(ErrFrameNotAscending, line, frame, lastFrame)
		}
		lastFrame = frame

		p1, err := parseButtons(rec[1])
		if err != nil {
			return nil, curated.Errorf(ErrBadButtonString, line, rec[1], err)
		}
		p2, err := parseButtons(rec[2])
		if err != nil {
			return nil, curated.Errorf(ErrBadButtonString, line, rec[2], err)
		}

		events = append(events, Event{Frame: frame, P1: p1, P2: p2})
	}

	return events, nil
}

// parseButtons decodes one 12-character button string into a bitmask.
func parseButtons(s string) (controller.Button, error) {
	if len(s) != len(alphabet) {
		return 0, fmt.Errorf("expected %d characters, got %d", len(alphabet), len(s))
	}
	var mask controller.Button
	for i, want := range alphabet {
		switch s[i] {
		case want.letter:
			mask |= want.button
		case '.':
			// released; contributes nothing
		default:
			return 0, fmt.Errorf("column %d: expected %q or '.', got %q", i, want.letter, s[i])
		}
	}
	return mask, nil
}

// Script holds parsed Events in frame order and tracks playback position,
// latching the next due event's button state at each RunFrame's V-blank
// boundary per spec §6.
type Script struct {
	events []Event
	cursor int

	lastP1, lastP2 controller.Button
}

// New wraps already-parsed events into a stateful playback cursor.
func New(events []Event) *Script {
	return &Script{events: events}
}

// Advance applies every event due at or before frame, updating the
// sparse last-defined-state per port, and returns the resulting state.
func (s *Script) Advance(frame int) (p1, p2 controller.Button) {
	for s.cursor < len(s.events) && s.events[s.cursor].Frame <= frame {
		s.lastP1 = s.events[s.cursor].P1
		s.lastP2 = s.events[s.cursor].P2
		s.cursor++
	}
	return s.lastP1, s.lastP2
}

// Done reports whether every event has been consumed.
func (s *Script) Done() bool { return s.cursor >= len(s.events) }
