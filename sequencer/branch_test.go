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

package sequencer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/autopad/autopad/script"
	"github.com/autopad/autopad/sequencer"
)

func TestBranch(t *testing.T) {
	cfg := sequencer.Config{Sensitivity: 10, CalibrationTarget: -10}
	cartridge := cfg
	cartridge.CartridgeTiming = true
	loop := cfg
	loop.InfiniteLoop = true

	hold := func(n int) script.Command {
		return script.Command{Symbol: script.End, Duration: n}
	}

	tests := []struct {
		name     string
		ctx      sequencer.Context
		sentinel script.Command
		want     sequencer.Context
	}{
		{
			name: "infinite loop",
			ctx:  sequencer.Context{Phase: script.PerformTask, StepIndex: 9, FrameCounter: 3, RetryCount: 7, Config: loop},
			want: sequencer.Context{Phase: script.EnterTarget, Config: loop},
		},
		{
			name: "first retry",
			ctx:  sequencer.Context{Phase: script.PerformTask, StepIndex: 9, Config: cfg},
			want: sequencer.Context{Phase: script.EnterTarget, RetryCount: 1, Config: cfg},
		},
		{
			name: "last retry",
			ctx:  sequencer.Context{Phase: script.PerformTask, StepIndex: 9, RetryCount: 2, Config: cfg},
			want: sequencer.Context{Phase: script.EnterTarget, RetryCount: 3, Config: cfg},
		},
		{
			name: "retries exhausted",
			ctx:  sequencer.Context{Phase: script.PerformTask, StepIndex: 9, RetryCount: 3, Config: cfg},
			want: sequencer.Context{Phase: script.RetrieveItem, RetryCount: 4, Config: cfg},
		},
		{
			name: "retrieve returns to menu",
			ctx:  sequencer.Context{Phase: script.RetrieveItem, StepIndex: 16, RetryCount: 4, MenuVisitCount: 1, Config: cfg},
			want: sequencer.Context{Phase: script.OpenMenu, RetryCount: 4, MenuVisitCount: 1, Config: cfg},
		},
		{
			name: "first menu visit",
			ctx:  sequencer.Context{Phase: script.OpenMenu, StepIndex: 6, Config: cfg},
			want: sequencer.Context{Phase: script.DisableAssist, MenuVisitCount: 1, Config: cfg},
		},
		{
			name: "second menu visit",
			ctx:  sequencer.Context{Phase: script.OpenMenu, StepIndex: 6, MenuVisitCount: 1, CalibrationCurrent: -10, CalibrationTarget: -10, Config: cfg},
			want: sequencer.Context{Phase: script.RestoreSensitivity, MenuVisitCount: 2, CalibrationCurrent: -10, CalibrationTarget: 10, Config: cfg},
		},
		{
			name: "calibration press",
			ctx:  sequencer.Context{Phase: script.CalibrateSensitivity, StepIndex: 2, FrameCounter: 1, CalibrationCurrent: 3, CalibrationTarget: -10, Config: cfg},
			want: sequencer.Context{Phase: script.CalibrateSensitivity, CalibrationCurrent: 2, CalibrationTarget: -10, Config: cfg},
		},
		{
			name: "restore press",
			ctx:  sequencer.Context{Phase: script.RestoreSensitivity, StepIndex: 2, CalibrationCurrent: -10, CalibrationTarget: 10, Config: cfg},
			want: sequencer.Context{Phase: script.RestoreSensitivity, CalibrationCurrent: -9, CalibrationTarget: 10, Config: cfg},
		},
		{
			name: "calibration converged",
			ctx:  sequencer.Context{Phase: script.CalibrateSensitivity, StepIndex: 2, CalibrationCurrent: -10, CalibrationTarget: -10, Config: cfg},
			want: sequencer.Context{Phase: script.JumpToTarget, CalibrationCurrent: -10, CalibrationTarget: -10, Config: cfg},
		},
		{
			name:     "cartridge wait",
			ctx:      sequencer.Context{Phase: script.NavigateToArea, StepIndex: 6, Config: cartridge},
			sentinel: hold(180),
			want:     sequencer.Context{Phase: script.NavigateToArea, StepIndex: 6, FrameCounter: 1, Config: cartridge},
		},
		{
			name:     "cartridge hold reached",
			ctx:      sequencer.Context{Phase: script.EnterTarget, StepIndex: 2, FrameCounter: 120, Config: cartridge},
			sentinel: hold(120),
			want:     sequencer.Context{Phase: script.PerformTask, Config: cartridge},
		},
		{
			name:     "digital ignores hold",
			ctx:      sequencer.Context{Phase: script.NavigateToArea, StepIndex: 6, Config: cfg},
			sentinel: hold(180),
			want:     sequencer.Context{Phase: script.OpenMenu, Config: cfg},
		},
		{
			name:     "hold only applies to navigation",
			ctx:      sequencer.Context{Phase: script.Sync, StepIndex: 4, Config: cartridge},
			sentinel: hold(180),
			want:     sequencer.Context{Phase: script.NavigateToArea, Config: cartridge},
		},
		{
			name: "enter calibration",
			ctx:  sequencer.Context{Phase: script.DisableAssist, StepIndex: 6, MenuVisitCount: 1, Config: cfg},
			want: sequencer.Context{Phase: script.CalibrateSensitivity, MenuVisitCount: 1, CalibrationCurrent: 10, CalibrationTarget: -10, Config: cfg},
		},
		{
			name: "return to base",
			ctx:  sequencer.Context{Phase: script.ReturnToBase, StepIndex: 5, RetryCount: 4, MenuVisitCount: 2, Config: cfg},
			want: sequencer.Context{Phase: script.Done, RetryCount: 4, MenuVisitCount: 2, Config: cfg},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sequencer.Branch(tc.ctx, tc.sentinel)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("Branch() mismatch (-want +got):\n%s", d)
			}
		})
	}
}
