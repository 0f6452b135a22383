package vm

import "testing"

func TestXorPixelCollision(t *testing.T) {
	var fb Framebuffer

	if collision := fb.XorPixel(3, 4, true); collision {
		t.Error("first set should not collide")
	}
	if !fb.At(3, 4) {
		t.Error("pixel should be on after the first XOR")
	}

	if collision := fb.XorPixel(3, 4, true); !collision {
		t.Error("second XOR of the same bit should collide")
	}
	if fb.At(3, 4) {
		t.Error("pixel should be off after the colliding XOR")
	}
}

func TestClearBlanksEveryPixel(t *testing.T) {
	var fb Framebuffer
	fb.XorPixel(0, 0, true)
	fb.XorPixel(63, 31, true)

	fb.Clear()

	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			if fb.At(x, y) {
				t.Fatalf("pixel (%d,%d) should be false after Clear", x, y)
			}
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	var fb Framebuffer
	fb.XorPixel(0, 0, true)

	snap := fb.Snapshot()
	fb.XorPixel(1, 1, true)

	if snap[1][1] {
		t.Error("mutating the framebuffer after Snapshot must not affect the snapshot")
	}
}
