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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/digest"
	"github.com/snescore/snescore/hardware"
	"github.com/snescore/snescore/hardware/govern"
	"github.com/snescore/snescore/hardware/output"
	"github.com/snescore/snescore/hardware/preferences"
	"github.com/snescore/snescore/logger"
	"github.com/snescore/snescore/modalflag"
	"github.com/snescore/snescore/prefs"
	"github.com/snescore/snescore/resources"
	"github.com/snescore/snescore/rewind"
	"github.com/snescore/snescore/savestate"
	"github.com/snescore/snescore/statsview"
	"github.com/snescore/snescore/version"
	"github.com/snescore/snescore/wavwriter"
	"github.com/user-none/eblitui/rdb"
	"github.com/user-none/eblitui/romloader"
)

// file extensions recognised when extracting a cartridge from an archive.
var cartridgeExtensions = []string{".sfc", ".smc", ".swc", ".fig"}

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc handler. the RUN mode stops the emulation gracefully so that
	// autosave files are written
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(os.Stdout, os.Args[1:], intChan))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit().
func launch(out io.Writer, args []string, intChan <-chan os.Signal) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "INFO", "VERIFY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, out, intChan)

	case "INFO":
		err = info(md, out)

	case "VERIFY":
		err = verify(md, out)

	case "VERSION":
		v, rev, _ := version.Version()
		fmt.Fprintf(out, "%s %s (%s)\n", version.ApplicationName, v, rev)
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// loadCartridge reads the cartridge image from the file, extracting it from an
// archive if necessary.
func loadCartridge(snes *hardware.SNES, filename string) (string, error) {
	data, name, err := romloader.Load(filename, cartridgeExtensions)
	if err != nil {
		return "", curated.Errorf("cartridge: %v", err)
	}
	return name, snes.LoadCartridge(data)
}

// loadFile returns nil and no error if the file does not exist.
func loadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func run(md *modalflag.Modes, out io.Writer, intChan <-chan os.Signal) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until interrupted")
	region := md.AddString("region", "", "television region: AUTO, NTSC, PAL (default from preferences)")
	cpuOverclock := md.AddString("cpu", "", "CPU overclock preset: None, Low, Medium, Max")
	superFXOverclock := md.AddString("superfx", "", "SuperFX overclock preset in MHz: None, 20, 40, 60, 80, 100, 120")
	randState := md.AddBool("randstate", false, "random power-on state")
	seed := md.AddInt64("seed", 0, "seed for the random power-on state. zero uses the clock")
	loadState := md.AddString("loadstate", "", "state file to load before running")
	saveState := md.AddString("savestate", "", "state file to write after running")
	sram := md.AddString("sram", "", "battery backed SRAM file. loaded if it exists and written after running")
	autosave := md.AddString("autosave", "", "override autosave preference: Off, SRAM, State, Both")
	wav := md.AddString("wav", "", "record audio to wav file")
	cheatFile := md.AddString("cheats", "", "cheat file to apply")
	digestOutput := md.AddBool("digest", false, "print digest of machine state and audio after running")
	rewindTo := md.AddInt("rewind", -1, "rewind to frame before writing state")
	memvizFile := md.AddString("memviz", "", "write graph of the machine state in dot format")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")
	log := md.AddBool("log", false, "echo debugging log to output")
	md.AdditionalHelp("Autosaved SRAM is kept in the sram directory of the resources path, named\n" +
		"after the cartridge identity. Autosaved states are written to the states directory.")
	cmdPrefs := md.AddString("prefs", "", "override preferences for this session. eg. \"rewind.snapshotFreq::1; hardware.randstate::true\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(out)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("cartridge required for %s mode", md)
	}
	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// the command line preferences stay on the stack until the mode ends
	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "snescore", "unused preferences: %s", unused)
			}
		}()
	}

	pref, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	// command line values take priority over the preferences file
	if *region != "" {
		if err := pref.Region.Set(*region); err != nil {
			return err
		}
	}
	if *cpuOverclock != "" {
		if err := pref.CPUOverclock.Set(*cpuOverclock); err != nil {
			return err
		}
	}
	if *superFXOverclock != "" {
		if err := pref.SuperFXOverclock.Set(*superFXOverclock); err != nil {
			return err
		}
	}
	if *randState {
		if err := pref.RandomState.Set(true); err != nil {
			return err
		}
	}

	autosaveMode := pref.AutoSaveMode()
	if *autosave != "" {
		autosaveMode, err = preferences.FindAutoSave(*autosave)
		if err != nil {
			return err
		}
	}

	cfg := pref.Config()
	cfg.RandSeed = *seed
	if cfg.RandSeed == 0 {
		cfg.RandSeed = time.Now().UnixNano()
	}

	snes, err := hardware.NewSNES(logger.Allow, cfg)
	if err != nil {
		return err
	}
	snes.FollowPreferences(pref)

	name, err := loadCartridge(snes, md.GetArg(0))
	if err != nil {
		return err
	}
	cart := snes.Cartridge()
	logger.Logf(logger.Allow, "snescore", "%s (%s)", name, cart)

	// SRAM file. an explicit filename takes priority over the autosave
	// location
	sramFile := *sram
	if sramFile == "" && autosaveMode.SRAM() && cart.Battery {
		sramFile, err = resources.JoinPath("sram", fmt.Sprintf("%s.srm", cart.Identity))
		if err != nil {
			return err
		}
	}
	if sramFile != "" {
		data, err := loadFile(sramFile)
		if err != nil {
			return err
		}
		if data != nil {
			if err := snes.LoadSRAM(data); err != nil {
				return err
			}
		}
	}

	if *loadState != "" {
		data, err := os.ReadFile(*loadState)
		if err != nil {
			return err
		}
		if err := snes.Load(data); err != nil {
			return err
		}
	}

	if *cheatFile != "" {
		f, err := os.Open(*cheatFile)
		if err != nil {
			return err
		}
		err = snes.ReadCheats(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(out)
		} else {
			fmt.Fprintln(out, "! statsview not available in this build")
		}
	}

	// the audio ring has a single consumer. when more than one sink is
	// required the samples are teed into a ring for each sink
	audio := newTee(snes.Audio)

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, audio.add())
		if err != nil {
			return err
		}
	}

	var stateDigest *digest.State
	var audioDigest *digest.Audio
	if *digestOutput {
		stateDigest = digest.NewState(snes)
		audioDigest = digest.NewAudio(audio.add())
	}

	var rw *rewind.Rewind
	if *rewindTo >= 0 {
		pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return err
		}
		rw, err = rewind.NewRewind(snes, pth)
		if err != nil {
			return err
		}
	}

	// called after every frame
	endOfFrame := func(_ int) (govern.State, error) {
		audio.drain()
		if aw != nil {
			aw.Drain()
		}
		if audioDigest != nil {
			audioDigest.Drain()
		}
		if stateDigest != nil {
			if err := stateDigest.NewFrame(); err != nil {
				return govern.Ending, err
			}
		}
		if rw != nil {
			if err := rw.Check(); err != nil {
				return govern.Ending, err
			}
		}

		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		return govern.Running, nil
	}

	startTime := time.Now()
	startFrame := snes.Timing.Frame()

	if *frames > 0 {
		err = snes.RunForFrameCount(*frames, endOfFrame)
	} else {
		err = snes.Run(func() (govern.State, error) {
			return endOfFrame(snes.Timing.Frame())
		})
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d frames in %.2fs\n", snes.Timing.Frame()-startFrame, time.Since(startTime).Seconds())
	if n := snes.Audio.Dropped(); n > 0 {
		fmt.Fprintf(out, "! %d audio samples dropped\n", n)
	}

	if rw != nil {
		frame, err := rw.RewindTo(*rewindTo)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "rewound to frame %d\n", frame)
	}

	if aw != nil {
		if err := aw.EndMixing(); err != nil {
			return err
		}
	}

	if *digestOutput {
		audioDigest.Flush()
		fmt.Fprintf(out, "state: %s\n", stateDigest.Hash())
		fmt.Fprintf(out, "audio: %s\n", audioDigest.Hash())
	}

	if sramFile != "" && cart.Battery && (*sram != "" || snes.BatteryBackupDirty()) {
		data, err := snes.SaveSRAM()
		if err != nil {
			return err
		}
		if err := os.WriteFile(sramFile, data, 0o600); err != nil {
			return err
		}
	}

	stateFile := *saveState
	if stateFile == "" && autosaveMode.State() {
		stateFile, err = resources.JoinPath("states", resources.UniqueFilename("state", cart.Header.Title))
		if err != nil {
			return err
		}
	}
	if stateFile != "" {
		data, err := snes.Save()
		if err != nil {
			return err
		}
		if err := os.WriteFile(stateFile, data, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(out, "state saved to %s\n", stateFile)
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		err = snes.Memviz(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func info(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	database := md.AddString("rdb", "", "game database for title lookup")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("cartridge required for %s mode", md)
	}

	var db *rdb.RDB
	if *database != "" {
		db, err = rdb.LoadRDB(*database)
		if err != nil {
			return err
		}
	}

	snes, err := hardware.NewSNES(logger.Allow, preferences.NewConfig())
	if err != nil {
		return err
	}

	for _, filename := range md.RemainingArgs() {
		name, err := loadCartridge(snes, filename)
		if err != nil {
			return err
		}
		cart := snes.Cartridge()
		hdr := cart.Header

		fmt.Fprintf(out, "%s\n", filepath.Base(name))
		fmt.Fprintf(out, "  title:    %s\n", hdr.Title)
		fmt.Fprintf(out, "  mapper:   %s\n", cart.Kind)
		fmt.Fprintf(out, "  region:   %s\n", snes.Timing.Spec().ID)
		fmt.Fprintf(out, "  fastrom:  %v\n", hdr.FastROM())
		fmt.Fprintf(out, "  rom:      %d bytes\n", len(cart.ROM))
		fmt.Fprintf(out, "  sram:     %d bytes (battery %v)\n", len(cart.SRAM), cart.Battery)
		fmt.Fprintf(out, "  version:  1.%d\n", hdr.Version)
		fmt.Fprintf(out, "  checksum: %04x (complement %04x)\n", hdr.Checksum, hdr.Complement)
		fmt.Fprintf(out, "  crc32:    %08x\n", cart.CRC32)

		if db != nil {
			if g := db.FindByCRC32(cart.CRC32); g != nil {
				fmt.Fprintf(out, "  game:     %s\n", rdb.GetDisplayName(g.Name))
				if g.Publisher != "" {
					fmt.Fprintf(out, "  publisher: %s\n", g.Publisher)
				}
				if g.ReleaseYear > 0 {
					fmt.Fprintf(out, "  released: %d\n", g.ReleaseYear)
				}
			} else {
				fmt.Fprintf(out, "  game:     not in database\n")
			}
		}
	}

	return nil
}

func verify(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	sram := md.AddBool("sram", false, "file is an SRAM buffer rather than a full state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires a cartridge and a state file", md)
	}

	snes, err := hardware.NewSNES(logger.Allow, preferences.NewConfig())
	if err != nil {
		return err
	}
	if _, err := loadCartridge(snes, md.GetArg(0)); err != nil {
		return err
	}

	data, err := os.ReadFile(md.GetArg(1))
	if err != nil {
		return err
	}

	hdr, err := savestate.ReadHeader(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", hdr)

	kind := savestate.KindFull
	if *sram {
		kind = savestate.KindSRAM
	}

	if err := snes.Codec().Validate(snes, kind, data); err != nil {
		return err
	}
	fmt.Fprintln(out, "ok")

	return nil
}

// tee copies samples from the source ring into any number of sink rings.
type tee struct {
	src     *output.AudioRing
	sinks   []*output.AudioRing
	scratch []output.Sample
}

func newTee(src *output.AudioRing) *tee {
	return &tee{
		src:     src,
		scratch: make([]output.Sample, src.Cap()),
	}
}

// add creates a new sink ring.
func (t *tee) add() *output.AudioRing {
	r := output.NewAudioRing(t.src.Cap())
	t.sinks = append(t.sinks, r)
	return r
}

func (t *tee) drain() {
	if len(t.sinks) == 0 {
		t.src.Discard()
		return
	}
	for {
		n := t.src.Pop(t.scratch)
		if n == 0 {
			return
		}
		for _, s := range t.scratch[:n] {
			for _, r := range t.sinks {
				r.Push(s.Left, s.Right)
			}
		}
	}
}
