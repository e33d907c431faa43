// This file is part of autopad.
//
// autopad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// autopad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with autopad.  If not, see <https://www.gnu.org/licenses/>.

// Package sequencer is the state machine at the heart of the controller. On
// every tick it reads one command from the script bank, has the mapper turn it
// into an input report and decides when to move to the next command and the
// next phase.
//
// All mutable state lives in a single Context value. Step() and Branch() are
// pure functions of the Context, which means the branch policy can be tested
// without running whole scripts. The Sequencer type is a convenience that
// owns a Context and a Bank and logs phase transitions.
//
// A command is asserted for Duration+1 ticks. When the sentinel is reached the
// branch policy is evaluated, in order, first match wins:
//
//  1. infinite loop mode at the end of PerformTask returns to EnterTarget and
//     zeroes the retry count
//  2. PerformTask returns to EnterTarget while the retry count is between 1
//     and 3 inclusive
//  3. RetrieveItem goes back to OpenMenu
//  4. the second visit to OpenMenu goes straight to RestoreSensitivity
//  5. a calibration phase that has just completed a press moves the
//     sensitivity one unit toward the target and runs again
//  6. with cartridge timing the navigation phases wait until the frame counter
//     reaches the hold carried by the sentinel
//  7. otherwise advance to the next phase in enumeration order
//
// Reaching Done freezes the Context. Every subsequent tick produces the
// neutral report.
package sequencer
