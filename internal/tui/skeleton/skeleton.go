// Package skeleton renders fixed-geometry placeholders in place of content
// while a document is loading.
//
// Every placeholder-capable region of the details view is a named Slot. A
// Renderer holds the slot geometries and the single loading flag; Slot
// decides per slot whether the placeholder or the real content is drawn.
package skeleton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/dossier/internal/core/config"
	"github.com/colonyops/dossier/internal/core/styles"
)

// Pixel sizes are mapped to terminal cells.
const (
	PixelsPerColumn = 8
	PixelsPerRow    = 16
)

// SlotID names a placeholder-capable region.
type SlotID string

const (
	ActionButtons           SlotID = "actionButtons"
	ItemLength              SlotID = "itemLength"
	Status                  SlotID = "status"
	WriteOff                SlotID = "writeOff"
	AccountFieldDescription SlotID = "accountFieldDescription"
	AttachmentSize          SlotID = "attachmentSize"
	AttachmentStatus        SlotID = "attachmentStatus"
	AttachmentActions       SlotID = "attachmentActions"
	SideComponentIcon       SlotID = "sideComponentIcon"
	SideComponentTitle      SlotID = "sideComponentTitle"
	SideComponentSubTitle   SlotID = "sideComponentSubTitle"
	SideComponentSubAction  SlotID = "sideComponentSubAction"
	Stepper                 SlotID = "stepper"

	// Slots without a configured geometry; they fall back to
	// DefaultGeometry.
	SubTitle       SlotID = "subTitle"
	AttachmentName SlotID = "attachmentName"
)

// Geometry is the size and shape of a placeholder. Width and Height are in
// pixels; a zero Height means one text line.
type Geometry struct {
	Width     int
	Height    int
	Component bool // stands in for a whole widget rather than a line of text
	Circle    bool
}

// DefaultGeometry is used for slots without a configured geometry.
var DefaultGeometry = Geometry{Width: 120}

// Config maps slots to their placeholder geometry.
type Config map[SlotID]Geometry

// DefaultConfig returns the built-in geometry for the thirteen configured
// slots.
func DefaultConfig() Config {
	return Config{
		ActionButtons:           {Width: 184, Height: 32, Component: true},
		ItemLength:              {Width: 42},
		Status:                  {Width: 80, Component: true},
		WriteOff:                {Width: 80},
		AccountFieldDescription: {Width: 150, Height: 16},
		AttachmentSize:          {Width: 60, Height: 16},
		AttachmentStatus:        {Width: 80, Component: true},
		AttachmentActions:       {Width: 20, Component: true},
		SideComponentIcon:       {Width: 64, Height: 64, Component: true, Circle: true},
		SideComponentTitle:      {Width: 300, Height: 24},
		SideComponentSubTitle:   {Width: 420},
		SideComponentSubAction:  {Width: 120, Height: 16, Component: true},
		Stepper:                 {Width: 430, Height: 32, Component: true},
	}
}

// Known reports whether id is a slot the details view renders.
func Known(id SlotID) bool {
	if id == SubTitle || id == AttachmentName {
		return true
	}
	_, ok := DefaultConfig()[id]
	return ok
}

// Slots returns the configured slot ids, sorted.
func (c Config) Slots() []SlotID {
	ids := make([]SlotID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Geometry returns the geometry for id, or DefaultGeometry when id is not
// configured.
func (c Config) Geometry(id SlotID) Geometry {
	if g, ok := c[id]; ok {
		return g
	}
	return DefaultGeometry
}

// WithOverrides returns a copy of c with the user's geometry overrides
// applied. Zero width or height keep the built-in value.
func (c Config) WithOverrides(overrides map[string]config.Geometry) (Config, error) {
	out := make(Config, len(c)+len(overrides))
	for id, g := range c {
		out[id] = g
	}

	for name, o := range overrides {
		id := SlotID(name)
		if !Known(id) {
			return nil, fmt.Errorf("unknown skeleton slot %q", name)
		}

		g := out.Geometry(id)
		if o.Width > 0 {
			g.Width = o.Width
		}
		if o.Height > 0 {
			g.Height = o.Height
		}
		if o.Component != nil {
			g.Component = *o.Component
		}
		if o.Circle != nil {
			g.Circle = *o.Circle
		}
		out[id] = g
	}

	return out, nil
}

// Cells converts the pixel geometry to terminal columns and rows, rounding
// up. Both are at least one.
func (g Geometry) Cells() (cols, rows int) {
	cols = (g.Width + PixelsPerColumn - 1) / PixelsPerColumn
	rows = (g.Height + PixelsPerRow - 1) / PixelsPerRow
	return max(cols, 1), max(rows, 1)
}

// Renderer draws slots as placeholders or content depending on one loading
// flag.
type Renderer struct {
	config  Config
	loading bool
}

// NewRenderer creates a renderer. A nil config uses DefaultConfig.
func NewRenderer(cfg Config, loading bool) Renderer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return Renderer{config: cfg, loading: loading}
}

// Loading reports whether the renderer draws placeholders.
func (r Renderer) Loading() bool {
	return r.loading
}

// Slot renders the placeholder for id while loading and content otherwise.
// content is never called while loading.
func (r Renderer) Slot(id SlotID, content func() string) string {
	if r.loading {
		return r.Placeholder(id)
	}
	return content()
}

// Placeholder renders the placeholder shape for id.
func (r Renderer) Placeholder(id SlotID) string {
	return styles.SkeletonStyle.Render(Shape(r.config.Geometry(id)))
}

// Shape draws the unstyled placeholder for g.
func Shape(g Geometry) string {
	cols, rows := g.Cells()

	switch {
	case g.Circle && cols >= 3 && rows >= 2:
		return circle(cols, rows)
	case g.Component:
		return block(cols, rows)
	default:
		return textLines(cols, rows)
	}
}

func block(cols, rows int) string {
	line := strings.Repeat("▒", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// textLines mimics a paragraph: the last of several lines is shorter.
func textLines(cols, rows int) string {
	lines := make([]string, rows)
	for i := range lines {
		width := cols
		if rows > 1 && i == rows-1 {
			width = max(cols*2/3, 1)
		}
		lines[i] = lipgloss.PlaceHorizontal(cols, lipgloss.Left, strings.Repeat("░", width))
	}
	return strings.Join(lines, "\n")
}

func circle(cols, rows int) string {
	inner := cols - 2
	lines := make([]string, 0, rows)
	lines = append(lines, "╭"+strings.Repeat("─", inner)+"╮")
	for i := 0; i < rows-2; i++ {
		lines = append(lines, "│"+strings.Repeat("░", inner)+"│")
	}
	lines = append(lines, "╰"+strings.Repeat("─", inner)+"╯")
	return strings.Join(lines, "\n")
}
