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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/autopad/autopad/driver"
	"github.com/autopad/autopad/hardware/preferences"
	"github.com/autopad/autopad/hardware/transport"
	"github.com/autopad/autopad/heartbeat"
	"github.com/autopad/autopad/logger"
	"github.com/autopad/autopad/modalflag"
	"github.com/autopad/autopad/monitor"
	"github.com/autopad/autopad/paths"
	"github.com/autopad/autopad/prefs"
	"github.com/autopad/autopad/recorder"
	"github.com/autopad/autopad/script"
	"github.com/autopad/autopad/sequencer"
	"github.com/autopad/autopad/statsview"
	"github.com/autopad/autopad/version"
)

// exit values
const (
	exitParse = 10
	exitMode  = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "SCRIPTS", "PLAYBACK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParse)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "SCRIPTS":
		err = scripts(md)
	case "PLAYBACK":
		err = playback(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(exitMode)
	}
}

// the context is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadBank(filename string) (*script.Bank, error) {
	if filename == "" || filename == recorder.Builtin {
		return script.Builtin(), nil
	}
	return script.LoadFile(filename, script.Builtin())
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	device := md.AddString("device", "", "HID gadget device (eg. /dev/hidg0). the null device is used if empty")
	udc := md.AddString("udc", "", "state file of the USB device controller (eg. /sys/class/udc/<name>/state)")
	scriptFile := md.AddString("script", "", "script file replacing some or all of the built-in scripts")
	prefsOverride := md.AddString("prefs", "", "preference overrides (key::value; key::value)")
	record := md.AddString("record", "", "record sent reports to a transcript file. use AUTO for a file in the recordings directory")
	alert := md.AddString("alert", "", "write the heartbeat buzzer to a wav file")
	alertSound := md.AddString("alertsound", "", "wav or mp3 sample to use as the buzzer tone")
	mon := md.AddBool("monitor", false, "show status line. press q to quit")
	stats := md.AddBool("statsview", false, "launch statsview server (if available)")
	memvizFile := md.AddString("memviz", "", "write graphviz dot of the final sequencer state")
	log := md.AddBool("log", false, "echo log to stdout")
	maxTicks := md.AddInt("maxticks", 0, "stop after number of ticks. zero for no limit")
	linger := md.AddDuration("linger", 0, "stop this long after the run has finished. zero to never stop")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}
	pref, err := preferences.NewPreferences()
	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "autopad", "unused preference overrides: %s", unused)
		}
	}
	if err != nil {
		return err
	}

	cfg, err := pref.SequencerConfig()
	if err != nil {
		return err
	}

	bank, err := loadBank(*scriptFile)
	if err != nil {
		return err
	}

	var tr transport.Transport
	if *device == "" {
		tr = transport.NewNull()
		logger.Log(logger.Allow, "autopad", "using null device")
	} else {
		tr, err = transport.NewGadget(*device, *udc)
		if err != nil {
			return err
		}
	}

	runID := uuid.New()
	logger.Logf(logger.Allow, "autopad", "run %s", runID)

	if strings.ToUpper(*record) == "AUTO" {
		*record, err = paths.ResourcePath("recordings", paths.UniqueFilename("transcript", ""))
		if err != nil {
			tr.Close()
			return err
		}
	}

	if *record != "" {
		hdr := recorder.Header{
			RunID:  runID,
			Bank:   recorder.Builtin,
			Config: cfg,
		}
		hdr.Version, _, _ = version.Version()
		if *scriptFile != "" {
			hdr.Bank = *scriptFile
		}

		rec, err := recorder.NewRecorder(*record, tr, hdr)
		if err != nil {
			tr.Close()
			return err
		}
		tr = rec
	}
	defer tr.Close()

	hb := heartbeat.NewHeartbeat()
	var bz *heartbeat.Buzzer
	if *alert != "" {
		bz = heartbeat.NewBuzzer()
		if *alertSound != "" {
			s, err := heartbeat.LoadSample(*alertSound)
			if err != nil {
				return err
			}
			bz.SetSample(s)
		}
		hb.AttachBuzzer(bz)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	sq := sequencer.NewSequencer(bank, cfg)
	drv := driver.NewDriver(tr, sq, hb, driver.Options{
		Rate:     pref.Rate(),
		MaxTicks: *maxTicks,
		Linger:   *linger,
	})

	ctx, stop := signalContext()
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		// stop the monitor when the driver finishes
		defer cancel()
		return drv.Run(egCtx)
	})

	if *mon {
		m := monitor.NewMonitor(os.Stdin, os.Stdout, drv.Status)
		eg.Go(func() error {
			return m.Run(egCtx, cancel)
		})
	}

	err = eg.Wait()

	if *memvizFile != "" {
		f, ferr := os.Create(*memvizFile)
		if ferr != nil {
			return ferr
		}
		sq.Memviz(f)
		if ferr := f.Close(); ferr != nil {
			return ferr
		}
	}

	if bz != nil {
		if berr := bz.Write(*alert); berr != nil && err == nil {
			err = berr
		}
	}

	if err != nil {
		return err
	}

	st := drv.Status()
	fmt.Printf("! %d ticks: %s\n", st.Ticks, st.Context)

	return nil
}

func scripts(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("prints the scripts in use. a script file can be given to check it\nand to see how it combines with the built-in scripts.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var bank *script.Bank

	switch len(md.RemainingArgs()) {
	case 0:
		bank = script.Builtin()
	case 1:
		bank, err = loadBank(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return script.Write(os.Stdout, bank)
}

func playback(md *modalflag.Modes) error {
	md.NewMode()
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single transcript is required for %s mode", md)
	}

	plb, err := recorder.NewPlayback(md.GetArg(0))
	if err != nil {
		return err
	}
	defer plb.Close()

	hdr := plb.Header()
	bank, err := loadBank(hdr.Bank)
	if err != nil {
		return err
	}

	sq := sequencer.NewSequencer(bank, hdr.Config)
	drv := driver.NewDriver(plb, sq, nil, driver.Options{MaxTicks: plb.Len()})

	ctx, stop := signalContext()
	defer stop()

	start := time.Now()
	err = drv.Run(ctx)
	if err != nil {
		return err
	}

	if !plb.Complete() {
		return fmt.Errorf("playback of %s incomplete: %s", hdr.RunID, plb)
	}

	fmt.Printf("! playback of %s succeeded (%d reports in %s)\n", hdr.RunID, plb.Len(), time.Since(start).Round(time.Millisecond))
	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
