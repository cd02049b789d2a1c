package driver

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Command is one edit of the session state, the headless counterpart of a
// key press.
type Command int

const (
	Up Command = iota
	Down
	Left
	Right
	Narrower
	Wider
	Taller
	Shorter
	Deeper
	Shallower
	RotateCCW
	RotateCW
	ToggleQuadtree
	ToggleChangetree
	TogglePoints
	ToggleMode
	Redraw
	Quit
)

type commandInfo struct {
	name string
	key  string
	help string
}

var commands = map[Command]commandInfo{
	Up:               {"up", "", "move shape up (arrow keys)"},
	Down:             {"down", "", "move shape down (arrow keys)"},
	Left:             {"left", "", "move shape left (arrow keys)"},
	Right:            {"right", "", "move shape right (arrow keys)"},
	Narrower:         {"narrower", "a", "make shape narrower"},
	Wider:            {"wider", "d", "make shape wider"},
	Taller:           {"taller", "w", "make shape taller"},
	Shorter:          {"shorter", "s", "make shape shorter"},
	Deeper:           {"deeper", "+", "increase tree depth"},
	Shallower:        {"shallower", "-", "decrease tree depth"},
	RotateCCW:        {"ccw", "z", "rotate shape counterclockwise"},
	RotateCW:         {"cw", "x", "rotate shape clockwise"},
	ToggleQuadtree:   {"toggle-quadtree", "q", "hide/show quadtree"},
	ToggleChangetree: {"toggle-changetree", "e", "hide/show change tree"},
	TogglePoints:     {"toggle-points", "c", "hide/show points"},
	ToggleMode:       {"toggle-mode", "r", "draw change tree recursively or leaves only"},
	Redraw:           {"redraw", "", "rebuild without changing anything"},
	Quit:             {"quit", "escape", "stop"},
}

var byName = func() map[string]Command {
	m := make(map[string]Command, 2*len(commands))
	for c, info := range commands {
		m[info.name] = c
		if info.key != "" {
			m[info.key] = c
		}
	}
	return m
}()

func (c Command) String() string {
	if info, ok := commands[c]; ok {
		return info.name
	}
	return "command(?)"
}

// ParseCommand accepts a command name such as "wider" or the key it was
// bound to, such as "d". Case is ignored.
func ParseCommand(s string) (Command, error) {
	if c, ok := byName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return 0, errors.Errorf("unknown command %q", s)
}

// ReadScript parses one command per line. Blank lines and lines starting
// with # are skipped.
func ReadScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := ParseCommand(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		cmds = append(cmds, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return cmds, nil
}

// Controls writes the command reference, one command per line.
func Controls(w io.Writer) error {
	all := make([]Command, 0, len(commands))
	for c := range commands {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	bw := bufio.NewWriter(w)
	for _, c := range all {
		info := commands[c]
		key := info.key
		if key == "" {
			key = "-"
		}
		if _, err := bw.WriteString(padRight(info.name, 18) + padRight(key, 11) + info.help + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
