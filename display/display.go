// Package display presents a vm.Framebuffer snapshot in an SDL2 window.
// It is the host rendering surface kept outside the interpreter core:
// the core only marks a framebuffer dirty, never draws.
package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/chip8vm/chip8vm/vm"
)

// Display manages the SDL2 window and renderer.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
}

// New creates a window sized to the fixed 64x32 CHIP-8 resolution
// times scale.
func New(title string, scale int32) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		vm.FramebufferWidth*scale,
		vm.FramebufferHeight*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Display{
		window:   window,
		renderer: renderer,
		scale:    scale,
	}, nil
}

// Close cleans up SDL resources.
func (d *Display) Close() {
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
	sdl.Quit()
}

// Clear paints the window black.
func (d *Display) Clear() {
	d.renderer.SetDrawColor(0, 0, 0, 255)
	d.renderer.Clear()
}

// Render draws a framebuffer snapshot (row-major, origin top-left) to
// the window. The caller owns the snapshot; Render never touches the
// live vm.Framebuffer, so the renderer can run concurrently with the
// next step without racing it.
func (d *Display) Render(pixels [vm.FramebufferHeight][vm.FramebufferWidth]bool) {
	d.Clear()

	d.renderer.SetDrawColor(0, 255, 0, 255)

	for y := int32(0); y < vm.FramebufferHeight; y++ {
		for x := int32(0); x < vm.FramebufferWidth; x++ {
			if pixels[y][x] {
				rect := sdl.Rect{
					X: x * d.scale,
					Y: y * d.scale,
					W: d.scale,
					H: d.scale,
				}
				d.renderer.FillRect(&rect)
			}
		}
	}

	d.renderer.Present()
}

// SetTitle sets the window title, used by cmd/chip8 to show pause state.
func (d *Display) SetTitle(title string) {
	d.window.SetTitle(title)
}
