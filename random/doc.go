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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// Random's output is a function of the scheduler's master-cycle position, so
// two runs that reach the same master-cycle count draw the same sequence -
// useful for regression and comparison tooling where two independently
// started processes must agree, and for save-state round trips where the
// restored process must continue the same sequence the original would have.
//
// If the same random numbers are required every single time regardless of
// process start time, set ZeroSeed to true. This is useful for testing
// purposes.
package random
