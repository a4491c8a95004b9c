package trace

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine parses one line of a Valgrind memory trace. Data operations are
// indented by one space (" L 04f6b868,8"), instruction fetches start at the
// first column ("I 0400d7d4,8"). Lines that match neither form yield an
// error.
func ParseLine(line string) (Event, error) {
	op, rest, err := splitOp(line)
	if err != nil {
		return Event{}, err
	}

	addrStr, sizeStr, found := strings.Cut(strings.TrimSpace(rest), ",")
	if !found {
		return Event{}, fmt.Errorf("trace line misses size: %q", line)
	}

	addr, err := strconv.ParseUint(addrStr, 16, 64)
	if err != nil {
		return Event{}, fmt.Errorf("bad address in trace line %q: %w",
			line, err)
	}

	size, err := strconv.Atoi(strings.TrimSpace(sizeStr))
	if err != nil {
		return Event{}, fmt.Errorf("bad size in trace line %q: %w", line, err)
	}

	return Event{Op: op, Address: addr, Size: size}, nil
}

func splitOp(line string) (Op, string, error) {
	if len(line) < 2 {
		return 0, "", fmt.Errorf("trace line too short: %q", line)
	}

	if line[0] == byte(OpInstruction) {
		return OpInstruction, line[1:], nil
	}

	if line[0] == ' ' {
		switch op := Op(line[1]); op {
		case OpLoad, OpStore, OpModify:
			return op, line[2:], nil
		}
	}

	return 0, "", fmt.Errorf("unrecognized trace line: %q", line)
}
