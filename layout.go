// layout.go re-exports the types callers need from the internal packages.
// Any changes to those types must be mirrored here.
package tuicore

import (
	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/style"
)

// Node is one widget in a committed tree.
type Node = layout.Node

// Props holds everything a widget carries.
type Props = layout.Props

// Span is one styled piece of a rich text row.
type Span = layout.Span

// Kind selects how a node is measured, arranged and drawn.
type Kind = layout.Kind

const (
	KindText     = layout.KindText
	KindRichText = layout.KindRichText
	KindSpacer   = layout.KindSpacer
	KindDivider  = layout.KindDivider
	KindProgress = layout.KindProgress
	KindRow      = layout.KindRow
	KindColumn   = layout.KindColumn
	KindBox      = layout.KindBox
	KindGrid     = layout.KindGrid
	KindLayers   = layout.KindLayers
	KindCustom   = layout.KindCustom
)

// MeasureFunc sizes a KindCustom node.
type MeasureFunc = layout.MeasureFunc

// Axis specifies the main direction of a container.
type Axis = layout.Axis

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Geometry is the resolved layout of a node and its children.
type Geometry = layout.Geometry

// Cache memoizes measurements and arrangements by node identity.
type Cache = layout.Cache

// Style is the visual style of text and fills.
type Style = style.Style

// Color is a terminal color. The zero value is the terminal default.
type Color = style.Color

// Border selects a box-drawing glyph set.
type Border = style.Border

const (
	BorderNone    = style.BorderNone
	BorderSingle  = style.BorderSingle
	BorderDouble  = style.BorderDouble
	BorderRounded = style.BorderRounded
	BorderThick   = style.BorderThick
)

// Limits bounds the size of a frame's drawlist.
type Limits = drawlist.Limits

var (
	Auto          = layout.Auto
	Fixed         = layout.Fixed
	Percent       = layout.Percent
	ParseValue    = layout.ParseValue
	ParseSpacing  = layout.ParseSpacing
	EdgeAll       = layout.EdgeAll
	EdgeSymmetric = layout.EdgeSymmetric
	EdgeTRBL      = layout.EdgeTRBL
	NewRect       = layout.NewRect
	NewCache      = layout.NewCache
	NewText       = layout.NewText
	NewRow        = layout.NewRow
	NewColumn     = layout.NewColumn
	DefaultLimits = drawlist.DefaultLimits
	ANSIColor     = style.ANSIColor
	RGBColor      = style.RGBColor
	HexColor      = style.HexColor
)

// Errors returned by Engine.Frame, matchable with errors.Is.
var (
	ErrNilNode        = layout.ErrNilNode
	ErrNoMeasureFunc  = layout.ErrNoMeasureFunc
	ErrDrawlistBudget = drawlist.ErrDrawlistBudget
	ErrBlobBudget     = drawlist.ErrBlobBudget
	ErrCommandBudget  = drawlist.ErrCommandBudget
	ErrStringBudget   = drawlist.ErrStringBudget
	ErrBlobCount      = drawlist.ErrBlobCount
	ErrSegmentBudget  = drawlist.ErrSegmentBudget
	ErrClipDepth      = drawlist.ErrClipDepth
)
