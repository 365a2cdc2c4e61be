package driver

import (
	"slices"
	"testing"
)

type fakeDevice struct {
	Device
	name string
}

func (d *fakeDevice) Name() string { return d.name }

func TestRegisterGet(t *testing.T) {
	Register("fake", func() Device { return &fakeDevice{name: "fake"} })
	defer Unregister("fake")

	if !IsRegistered("fake") {
		t.Fatal("IsRegistered(fake) = false after Register")
	}
	if !slices.Contains(Available(), "fake") {
		t.Errorf("Available() = %v, missing fake", Available())
	}

	d := Get("fake")
	if d == nil {
		t.Fatal("Get(fake) = nil")
	}
	if d.Name() != "fake" {
		t.Errorf("Name() = %q, want fake", d.Name())
	}
}

func TestGetUnknown(t *testing.T) {
	if d := Get("no-such-device"); d != nil {
		t.Errorf("Get(no-such-device) = %v, want nil", d)
	}
}

func TestUnregister(t *testing.T) {
	Register("transient", func() Device { return &fakeDevice{name: "transient"} })
	Unregister("transient")

	if IsRegistered("transient") {
		t.Error("IsRegistered(transient) = true after Unregister")
	}
	if Get("transient") != nil {
		t.Error("Get(transient) != nil after Unregister")
	}
}

func TestRegisterReplaces(t *testing.T) {
	Register("replaced", func() Device { return &fakeDevice{name: "first"} })
	Register("replaced", func() Device { return &fakeDevice{name: "second"} })
	defer Unregister("replaced")

	if got := Get("replaced").Name(); got != "second" {
		t.Errorf("Name() = %q, want second", got)
	}
}

func TestDefaultPriority(t *testing.T) {
	// A registered OpenGL factory outranks everything, but one that reports
	// unavailability (nil) falls through to the next candidate.
	Register(DeviceOpenGL, func() Device { return &fakeDevice{name: DeviceOpenGL} })
	Register(DeviceNull, func() Device { return &fakeDevice{name: DeviceNull} })
	defer Unregister(DeviceOpenGL)
	defer Unregister(DeviceNull)

	if got := Default().Name(); got != DeviceOpenGL {
		t.Fatalf("Default() = %q, want %q", got, DeviceOpenGL)
	}

	Register(DeviceOpenGL, func() Device { return nil })
	if got := Default().Name(); got != DeviceNull {
		t.Fatalf("Default() = %q after opengl unavailable, want %q", got, DeviceNull)
	}
}
