package app

import "tracegraph/hal"

// maxKeysPerStep bounds input handling so a stuck key cannot starve sampling.
const maxKeysPerStep = 16

func (s *System) drainKeys() {
	in := s.h.Input()
	if in == nil {
		return
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return
	}
	ch := kbd.Events()
	if ch == nil {
		return
	}
	for i := 0; i < maxKeysPerStep; i++ {
		select {
		case ev := <-ch:
			s.HandleKey(ev)
		default:
			return
		}
	}
}

// HandleKey applies one key press:
//
//	left/right  move the pointer one sample older/newer (shows it)
//	home/end    pointer to the newest/oldest sample
//	esc         hide the pointer
//	p           pause or resume sampling
//	d           toggle dotted trace
//	a           toggle time axis
//	r           toggle manual range
//	c           clear the charts
func (s *System) HandleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft:
		s.pointer = true
		s.setPointer(s.pointerIdx + 1)
	case hal.KeyRight:
		s.pointer = true
		if s.pointerIdx > 0 {
			s.setPointer(s.pointerIdx - 1)
		}
	case hal.KeyHome:
		s.pointer = true
		s.setPointer(0)
	case hal.KeyEnd:
		s.pointer = true
		s.setPointer(uint16(s.float.DataLen()))
	case hal.KeyEscape:
		s.pointer = false
	}

	switch ev.Rune {
	case 'p', 'P', ' ':
		s.sampling = !s.sampling
		if led := s.h.LED(); led != nil {
			if s.sampling {
				led.High()
			} else {
				led.Low()
			}
		}
	case 'd', 'D':
		s.dotted = !s.dotted
	case 'a', 'A':
		s.axis = !s.axis
	case 'r', 'R':
		s.manual = !s.manual
	case 'c', 'C':
		s.float.Clear()
		if s.ints != nil {
			s.ints.Clear()
		}
	}
	s.apply()
}

func (s *System) setPointer(idx uint16) {
	if n := s.float.DataLen(); int(idx) > n {
		idx = uint16(n)
	}
	s.pointerIdx = idx
}
