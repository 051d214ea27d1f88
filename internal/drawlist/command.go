package drawlist

import (
	"fmt"

	"github.com/grindlemire/tuicore/internal/style"
)

// Opcode identifies a command on the wire.
type Opcode uint16

const (
	OpClear       Opcode = 1
	OpFillRect    Opcode = 2
	OpDrawText    Opcode = 3
	OpPushClip    Opcode = 4
	OpPopClip     Opcode = 5
	OpDrawTextRun Opcode = 6
)

// opSizes holds the encoded size of each command, header included.
var opSizes = [...]int{
	OpClear:       cmdHeaderSize,
	OpFillRect:    cmdHeaderSize + 16 + styleSize,
	OpDrawText:    cmdHeaderSize + 20 + styleSize + 4,
	OpPushClip:    cmdHeaderSize + 16,
	OpPopClip:     cmdHeaderSize,
	OpDrawTextRun: cmdHeaderSize + 16,
}

var opNames = [...]string{
	OpClear:       "clear",
	OpFillRect:    "fill-rect",
	OpDrawText:    "draw-text",
	OpPushClip:    "push-clip",
	OpPopClip:     "pop-clip",
	OpDrawTextRun: "draw-text-run",
}

func (op Opcode) valid() bool {
	return op >= OpClear && op <= OpDrawTextRun
}

// Size returns the encoded size of a command with this opcode, or 0 for
// unknown opcodes.
func (op Opcode) Size() int {
	if !op.valid() {
		return 0
	}
	return opSizes[op]
}

func (op Opcode) String() string {
	if !op.valid() {
		return fmt.Sprintf("opcode(%d)", uint16(op))
	}
	return opNames[op]
}

// Segment is one independently styled piece of a text run.
type Segment struct {
	Text  string
	Style style.Style
}

// Command is one drawing operation. Which fields are meaningful depends on
// Op:
//
//	OpClear        none
//	OpFillRect     X, Y, Width, Height, Style
//	OpDrawText     X, Y, Text, Style
//	OpPushClip     X, Y, Width, Height
//	OpPopClip      none
//	OpDrawTextRun  X, Y, Run
type Command struct {
	Op            Opcode
	X, Y          int
	Width, Height int
	Text          string
	Style         style.Style
	Run           []Segment
}
