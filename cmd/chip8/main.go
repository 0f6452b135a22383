// Command chip8 runs a CHIP-8 program image through an SDL2 window.
// Its run subcommand takes a single positional argument, the program
// image path (chip8 run <rom-file>), and exits 0 on orderly shutdown or
// non-zero on load failure or an unrecoverable emulator halt.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chip8",
		Short: "CHIP-8 virtual machine",
		Long:  "A CHIP-8 interpreter: fetch-decode-execute core plus an SDL2 display, audio, and keyboard front end.",
	}

	root.AddCommand(newRunCmd())
	return root
}
