package vm

import "testing"

func TestAnyPressedReturnsLowestIndex(t *testing.T) {
	var k Keypad

	if _, ok := k.AnyPressed(); ok {
		t.Fatal("no key should be pressed initially")
	}

	k.SetKey(9, true)
	k.SetKey(3, true)
	k.SetKey(7, true)

	idx, ok := k.AnyPressed()
	if !ok {
		t.Fatal("expected a pressed key")
	}
	if idx != 3 {
		t.Errorf("AnyPressed() = %d, want the lowest index 3", idx)
	}
}

func TestSetKeyOutOfRangeIgnored(t *testing.T) {
	var k Keypad
	k.SetKey(16, true)
	if k.IsDown(16) {
		t.Error("IsDown(16) should be false, keys only go up to 15")
	}
}
