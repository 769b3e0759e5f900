// Line based scripts of window input, used to replay interactions on a headless ui.
//
//	# comment
//	down X Y [left|middle|right]
//	move X Y
//	up X Y [left|middle|right]
//	wheel X Y DELTA
//	key X Y up|down|pageup|pagedown|home|end
//	expose
//
// Points are in screen space (origin at the bottom-left).
package inputscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Returns *event.WindowInput and *event.WindowExpose events.
func Parse(r io.Reader) ([]interface{}, error) {
	p := &parser{}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		args := strings.Fields(s)
		ev, err := p.parseCmd(args)
		if err != nil {
			return nil, fmt.Errorf("inputscript:%d: %w", line, err)
		}
		p.evs = append(p.evs, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("inputscript: %w", err)
	}
	return p.evs, nil
}

//----------

type parser struct {
	evs     []interface{}
	buttons event.MouseButtons // currently pressed
}

type cmdFn func(p *parser, args []string) (interface{}, error)

var cmds = map[string]cmdFn{
	"down":   cmdDown,
	"up":     cmdUp,
	"move":   cmdMove,
	"wheel":  cmdWheel,
	"key":    cmdKey,
	"expose": cmdExpose,
}

func (p *parser) parseCmd(args []string) (interface{}, error) {
	fn, ok := cmds[args[0]]
	if !ok {
		return nil, fmt.Errorf("unknown cmd: %q", args[0])
	}
	return fn(p, args)
}

//----------

func cmdDown(p *parser, args []string) (interface{}, error) {
	pt, b, err := parsePointButton(args)
	if err != nil {
		return nil, err
	}
	p.buttons |= event.MouseButtons(b)
	return &event.WindowInput{Point: pt, Event: &event.MouseDown{Point: pt, Button: b}}, nil
}

func cmdUp(p *parser, args []string) (interface{}, error) {
	pt, b, err := parsePointButton(args)
	if err != nil {
		return nil, err
	}
	p.buttons &^= event.MouseButtons(b)
	return &event.WindowInput{Point: pt, Event: &event.MouseUp{Point: pt, Button: b}}, nil
}

func cmdMove(p *parser, args []string) (interface{}, error) {
	if err := checkArgs(args, 2); err != nil {
		return nil, err
	}
	pt, err := parsePoint(args[1:])
	if err != nil {
		return nil, err
	}
	return &event.WindowInput{Point: pt, Event: &event.MouseMove{Point: pt, Buttons: p.buttons}}, nil
}

func cmdWheel(p *parser, args []string) (interface{}, error) {
	if err := checkArgs(args, 3); err != nil {
		return nil, err
	}
	pt, err := parsePoint(args[1:])
	if err != nil {
		return nil, err
	}
	d, err := strconv.Atoi(args[3])
	if err != nil {
		return nil, fmt.Errorf("wheel: delta: %w", err)
	}
	return &event.WindowInput{Point: pt, Event: &event.MouseWheel{Point: pt, Delta: d}}, nil
}

func cmdKey(p *parser, args []string) (interface{}, error) {
	if err := checkArgs(args, 3); err != nil {
		return nil, err
	}
	pt, err := parsePoint(args[1:])
	if err != nil {
		return nil, err
	}
	ks, ok := keySyms[args[3]]
	if !ok {
		return nil, fmt.Errorf("key: unknown key: %q", args[3])
	}
	return &event.WindowInput{Point: pt, Event: &event.KeyDown{Point: pt, KeySym: ks}}, nil
}

func cmdExpose(p *parser, args []string) (interface{}, error) {
	if err := checkArgs(args, 0); err != nil {
		return nil, err
	}
	return &event.WindowExpose{}, nil
}

//----------

var keySyms = map[string]event.KeySym{}

func init() {
	for k := event.KSymUp; k <= event.KSymEnd; k++ {
		keySyms[k.String()] = k
	}
}

var buttonNames = map[string]event.MouseButton{
	"left":   event.ButtonLeft,
	"middle": event.ButtonMiddle,
	"right":  event.ButtonRight,
}

func parsePointButton(args []string) (mathutil.PointF, event.MouseButton, error) {
	if len(args) != 3 && len(args) != 4 {
		return mathutil.PointF{}, 0, fmt.Errorf("%v: expecting 2 or 3 args, got %v", args[0], len(args)-1)
	}
	pt, err := parsePoint(args[1:])
	if err != nil {
		return mathutil.PointF{}, 0, err
	}
	b := event.ButtonLeft
	if len(args) == 4 {
		u, ok := buttonNames[args[3]]
		if !ok {
			return mathutil.PointF{}, 0, fmt.Errorf("%v: unknown button: %q", args[0], args[3])
		}
		b = u
	}
	return pt, b, nil
}

func parsePoint(args []string) (mathutil.PointF, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return mathutil.PointF{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return mathutil.PointF{}, fmt.Errorf("y: %w", err)
	}
	return mathutil.PF(x, y), nil
}

func checkArgs(args []string, n int) error {
	if len(args)-1 != n {
		return fmt.Errorf("%v: expecting %v args, got %v", args[0], n, len(args)-1)
	}
	return nil
}
