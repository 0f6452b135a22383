package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/chip8vm/chip8vm/audio"
	"github.com/chip8vm/chip8vm/config"
	"github.com/chip8vm/chip8vm/display"
	"github.com/chip8vm/chip8vm/governor"
	"github.com/chip8vm/chip8vm/input"
	"github.com/chip8vm/chip8vm/vm"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		scale      int
		speed      int
		logPath    string
	)

	cmd := &cobra.Command{
		Use:   "run [rom-file]",
		Short: "Load and run a CHIP-8 program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmulator(args[0], configPath, scale, speed, logPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().IntVar(&scale, "scale", 0, "display scale factor (0 = use config/default)")
	cmd.Flags().IntVar(&speed, "speed", 0, "CPU clock speed in Hz (0 = use config/default)")
	cmd.Flags().StringVar(&logPath, "log", "", "if set, write debug output to this file instead of stderr")

	return cmd
}

func runEmulator(romPath, configPath string, scaleFlag, speedFlag int, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scaleFlag > 0 {
		cfg.Display.Scale = scaleFlag
	}
	if speedFlag > 0 {
		cfg.CPU.ClockHz = speedFlag
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	machine := vm.New()
	if err := machine.LoadROM(romData); err != nil {
		return fmt.Errorf("loading ROM into memory: %w", err)
	}

	disp, err := display.New("CHIP-8", int32(cfg.Display.Scale))
	if err != nil {
		return fmt.Errorf("initializing display: %w", err)
	}
	defer disp.Close()

	beeper, err := audio.New(cfg.Audio.Volume)
	if err != nil {
		logger.Printf("warning: audio unavailable: %v", err)
	} else {
		defer beeper.Close()
	}

	keyboard := input.New(machine.Keypad())

	gov := governor.New()
	gov.ClockHz = cfg.CPU.ClockHz
	gov.TimerHz = cfg.CPU.TimerHz

	logger.Printf("Running %s at %d Hz (scale %d)", romPath, cfg.CPU.ClockHz, cfg.Display.Scale)
	logger.Println("Keys: 1234 QWER ASDF ZXCV mapped to the CHIP-8 keypad")
	logger.Println("Esc: quit   P: pause/resume   R: reset")

	onTick := func() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				gov.Stop()

			case *sdl.KeyboardEvent:
				switch e.Type {
				case sdl.KEYDOWN:
					switch e.Keysym.Sym {
					case sdl.K_ESCAPE:
						gov.Stop()
					case sdl.K_p:
						gov.Pause(!gov.Paused())
						if gov.Paused() {
							disp.SetTitle("CHIP-8 (paused)")
						} else {
							disp.SetTitle("CHIP-8")
						}
					case sdl.K_r:
						machine.Reset()
						if err := machine.LoadROM(romData); err != nil {
							logger.Printf("reloading ROM: %v", err)
						}
					default:
						keyboard.HandleKeyDown(e.Keysym.Sym)
					}
				case sdl.KEYUP:
					keyboard.HandleKeyUp(e.Keysym.Sym)
				}
			}
		}

		if beeper != nil {
			beeper.Update(machine.SoundActive())
		}

		if machine.Framebuffer().Dirty() {
			disp.Render(machine.Framebuffer().Snapshot())
			machine.Framebuffer().AckDirty()
		}
	}

	err = gov.Run(machine, onTick)
	if errors.Is(err, governor.ErrStopped) {
		logger.Println("Emulator stopped.")
		return nil
	}

	snap := machine.Inspect()
	logger.Printf("Emulator halted at PC=%#03x: %s", snap.PC, snap.HaltReason)
	return err
}
