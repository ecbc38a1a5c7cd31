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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mdcore/mdcore/devtools"
	"github.com/mdcore/mdcore/hardware/cartridge"
	"github.com/mdcore/mdcore/hardware/clocks"
	"github.com/mdcore/mdcore/hardware/console"
	"github.com/mdcore/mdcore/inputscript"
	"github.com/mdcore/mdcore/logger"
	"github.com/mdcore/mdcore/modalflag"
	"github.com/mdcore/mdcore/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEVTOOLS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEVTOOLS":
		err = devtoolsCmd(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	region := md.AddString("region", "NTSC", "console region: NTSC, PAL")
	frames := md.AddInt("frames", 60, "number of frames to run")
	script := md.AddString("script", "", "input script to attach (see inputscript package)")
	state := md.AddString("state", "", "write a save state to this path on exit")
	wav := md.AddString("wav", "", "capture audio to this wav file on exit")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single ROM path is required for %s mode", md)
	}
	romPath := md.GetArg(0)

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	var reg clocks.Region
	switch strings.ToUpper(*region) {
	case "NTSC":
		reg = clocks.NTSC
	case "PAL":
		reg = clocks.PAL
	default:
		return fmt.Errorf("unknown region %q", *region)
	}

	c, err := newConsole(rom, reg)
	if err != nil {
		return err
	}

	var in *inputscript.Script
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return fmt.Errorf("opening input script: %w", err)
		}
		events, err := inputscript.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing input script: %w", err)
		}
		in = inputscript.New(events)
	}

	var wr *wavwriter.WavWriter
	if *wav != "" {
		wr = wavwriter.New(*wav)
	}

	for frame := 0; frame < *frames; frame++ {
		if in != nil {
			p1, p2 := in.Advance(frame)
			c.SetControllerState(1, p1)
			c.SetControllerState(2, p2)
		}

		c.RunFrame()

		if wr != nil {
			ymLeft, ymRight := c.YM.LastSample()
			psg := c.PSG.Sample()
			wr.AddSample(clampSample(int32(ymLeft)+int32(psg)), clampSample(int32(ymRight)+int32(psg)))
		}
	}

	if wr != nil {
		if err := wr.EndCapture(); err != nil {
			return fmt.Errorf("writing wav capture: %w", err)
		}
	}

	if *state != "" {
		data := c.SaveState()
		if err := os.WriteFile(*state, data, 0644); err != nil {
			return fmt.Errorf("writing save state: %w", err)
		}
	}

	return nil
}

func devtoolsCmd(md *modalflag.Modes) error {
	md.NewMode()

	region := md.AddString("region", "NTSC", "console region: NTSC, PAL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single ROM path is required for %s mode", md)
	}

	rom, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	var reg clocks.Region
	if strings.ToUpper(*region) == "PAL" {
		reg = clocks.PAL
	}

	c, err := newConsole(rom, reg)
	if err != nil {
		return err
	}

	devtools.WriteGraph(md.Output, c)
	return nil
}

func clampSample(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

func newConsole(rom []byte, region clocks.Region) (*console.Console, error) {
	cart, err := cartridge.New(rom, nil)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	return console.New(cart, region), nil
}
