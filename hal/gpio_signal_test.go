package hal

import (
	"testing"
	"time"
)

func TestSignalPinRead(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	pin := newSignalPinWithClock("SIG", 10*time.Second, 2*time.Second, clock)
	if pin == nil {
		t.Fatal("expected pin")
	}

	steps := []struct {
		advance time.Duration
		want    bool
	}{
		{advance: 0, want: true},
		{advance: 3 * time.Second, want: false},
		{advance: 8 * time.Second, want: true}, // t=11s, phase 1s
		{advance: 1 * time.Second, want: false},
	}
	for i, s := range steps {
		now = now.Add(s.advance)
		level, err := pin.Read()
		if err != nil {
			t.Fatalf("step %d: Read: %v", i, err)
		}
		if level != s.want {
			t.Fatalf("step %d: expected %v, got %v", i, s.want, level)
		}
	}
}

func TestSignalPinRejectsOutput(t *testing.T) {
	pin := newSignalPinWithClock("SIG", time.Second, 0, nil)
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("expected configure error")
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("expected write error")
	}
	if newSignalPinWithClock(" ", time.Second, 0, nil) != nil {
		t.Fatal("expected nil pin for blank name")
	}
}

type countingLED struct{ on, off int }

func (l *countingLED) High() { l.on++ }
func (l *countingLED) Low()  { l.off++ }

func TestFindPin(t *testing.T) {
	led := &countingLED{}
	g := newVirtualGPIO([]GPIOPin{
		newLEDPin("LED", led),
		nil,
		newSignalPinWithClock("SIG5HZ", 200*time.Millisecond, 100*time.Millisecond, nil),
	})
	if g.PinCount() != 2 {
		t.Fatalf("expected nil pins dropped, got %d", g.PinCount())
	}
	if p := FindPin(g, "sig5hz"); p == nil || p.Name() != "SIG5HZ" {
		t.Fatalf("expected SIG5HZ, got %v", p)
	}
	if FindPin(g, "nope") != nil || FindPin(nil, "LED") != nil {
		t.Fatal("expected no pin")
	}
	if names := PinNames(g); len(names) != 2 || names[0] != "LED" {
		t.Fatalf("unexpected names %v", names)
	}

	p := FindPin(g, "LED")
	_ = p.Write(true)
	_ = p.Write(false)
	if led.on != 1 || led.off != 1 {
		t.Fatalf("expected LED driven once each way, got %+v", led)
	}
}
