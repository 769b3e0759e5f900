package event

import (
	"testing"

	"github.com/jmigpin/scrollview/util/mathutil"
)

func TestScreenFrame(t *testing.T) {
	sf := ScreenFrame{Height: 600}
	p := mathutil.PF(10, 100)
	p2 := sf.ToTop(p)
	if p2 != mathutil.PF(10, 500) {
		t.Fatal(p2)
	}
	if p3 := sf.ToScreen(p2); p3 != p {
		t.Fatal(p3)
	}
}

func TestWithPoint(t *testing.T) {
	ev := &MouseWheel{Point: mathutil.PF(1, 1), Delta: 120}
	ev2 := WithPoint(ev, mathutil.PF(2, 3)).(*MouseWheel)
	if ev2.Point != mathutil.PF(2, 3) || ev2.Delta != 120 {
		t.Fatal(ev2)
	}
	if ev.Point != mathutil.PF(1, 1) {
		t.Fatal("original event was modified")
	}
}
