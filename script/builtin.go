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

package script

// short hand for the tables below
type c = Command

// Builtin returns the bank of scripts used when no script file is given.
//
// The scripts launch the drone from the Alterna kettle of stage 1-8 after
// clearing the stage four times. Durations are in frames at the rate the
// host polls the controller.
func Builtin() *Bank {
	b := &Bank{}

	// wait a moment after the host has configured the controller
	b.SetPhase(Connect, NewPhase(
		c{Nothing, 30},
		c{A, 10},
		c{Nothing, 60},
		c{End, 0},
	))

	// L+R on the change grip screen registers the controller
	b.SetPhase(Sync, NewPhase(
		c{Triggers, 10},
		c{Nothing, 30},
		c{A, 10},
		c{Nothing, 60},
		c{End, 0},
	))

	// from the plaza to Alterna. the cartridge version loads more slowly so
	// the sentinel carries a minimum hold
	b.SetPhase(NavigateToArea, NewPhase(
		c{X, 10},
		c{Nothing, 10},
		c{HatDown, 5},
		c{Nothing, 10},
		c{A, 10},
		c{Nothing, 540},
		c{End, 180},
	))

	// the options menu. visited twice, once to change settings for the
	// scripts and once to restore them
	b.SetPhase(OpenMenu, NewPhase(
		c{X, 10},
		c{Nothing, 10},
		c{L, 5},
		c{Nothing, 5},
		c{A, 5},
		c{Nothing, 5},
		c{End, 0},
	))

	b.SetPhase(DisableAssist, NewPhase(
		c{HatUp, 5},
		c{Nothing, 5},
		c{A, 5},
		c{Nothing, 5},
		c{HatDown, 5},
		c{Nothing, 5},
		c{End, 0},
	))

	// the calibration phases are driven by the calibration scripts
	b.SetPhase(CalibrateSensitivity, NewPhase(c{End, 0}))

	// super jump to the kettle of stage 1-8
	b.SetPhase(JumpToTarget, NewPhase(
		c{L, 10},
		c{Nothing, 10},
		c{L, 10},
		c{Nothing, 10},
		c{A, 10},
		c{Nothing, 10},
		c{HatUp, 5},
		c{Nothing, 5},
		c{HatUp, 5},
		c{Nothing, 5},
		c{HatUp, 5},
		c{Nothing, 10},
		c{A, 10},
		c{Nothing, 10},
		c{A, 10},
		c{Nothing, 330},
		c{End, 0},
	))

	// hold ZL to enter the kettle
	b.SetPhase(EnterTarget, NewPhase(
		c{ZL, 40},
		c{Nothing, 420},
		c{End, 120},
	))

	// clear stage 1-8
	b.SetPhase(PerformTask, NewPhase(
		c{HatRight, 5},
		c{Nothing, 10},
		c{A, 5},
		c{LeftStickUp, 85},
		c{A, 5},
		c{Nothing, 145},
		c{ZR, 45},
		c{Aim, 30},
		c{Nothing, 1200},
		c{End, 0},
	))

	// launch the drone and have it retrieve the item
	b.SetPhase(RetrieveItem, NewPhase(
		c{X, 10},
		c{Nothing, 5},
		c{MapCursor, 20},
		c{A, 5},
		c{Nothing, 10},
		c{A, 5},
		c{Nothing, 175},
		c{RightStickLeft, 23},
		c{LeftStickUp, 105},
		c{Jump, 20},
		c{LeftStickUp, 75},
		c{Nothing, 180},
		c{HatUp, 5},
		c{Nothing, 10},
		c{Nothing, 15},
		c{Nothing, 90},
		c{End, 0},
	))

	b.SetPhase(RestoreSensitivity, NewPhase(c{End, 0}))

	b.SetPhase(RestoreAssist, NewPhase(
		c{HatUp, 5},
		c{Nothing, 10},
		c{A, 5},
		c{Nothing, 10},
		c{End, 0},
	))

	// back to Splatsville
	b.SetPhase(ReturnToBase, NewPhase(
		c{B, 5},
		c{Nothing, 10},
		c{Plus, 5},
		c{Nothing, 10},
		c{A, 5},
		c{End, 0},
	))

	b.SetCalibration(Decrease, NewPhase(
		c{HatLeft, 4},
		c{Nothing, 4},
		c{End, 0},
	))

	b.SetCalibration(Increase, NewPhase(
		c{HatRight, 4},
		c{Nothing, 4},
		c{End, 0},
	))

	b.SetCalibration(Confirm, NewPhase(
		c{A, 5},
		c{Nothing, 5},
		c{End, 0},
	))

	return b
}
