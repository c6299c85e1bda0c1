package ast

import "github.com/droe-lang/droe-sub001/internal/source"

// ComponentAttrs are presentation hooks a later styling pass fills in.
// The parser leaves them empty.
type ComponentAttrs struct {
	ID      string
	Classes []string
	Styles  map[string]string
}

// TitleComponent: title ARGS
type TitleComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (t *TitleComponent) INode()               {} // Implements Node interface
func (t *TitleComponent) Stmt()                {} // Implements Statement interface
func (t *TitleComponent) Pos() source.Position { return t.Position }

// TextComponent: text ARGS
type TextComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (t *TextComponent) INode()               {} // Implements Node interface
func (t *TextComponent) Stmt()                {} // Implements Statement interface
func (t *TextComponent) Pos() source.Position { return t.Position }

// InputComponent: input ARGS
type InputComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (i *InputComponent) INode()               {} // Implements Node interface
func (i *InputComponent) Stmt()                {} // Implements Statement interface
func (i *InputComponent) Pos() source.Position { return i.Position }

// TextareaComponent: textarea ARGS
type TextareaComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (t *TextareaComponent) INode()               {} // Implements Node interface
func (t *TextareaComponent) Stmt()                {} // Implements Statement interface
func (t *TextareaComponent) Pos() source.Position { return t.Position }

// DropdownComponent: dropdown ARGS
type DropdownComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (d *DropdownComponent) INode()               {} // Implements Node interface
func (d *DropdownComponent) Stmt()                {} // Implements Statement interface
func (d *DropdownComponent) Pos() source.Position { return d.Position }

// ToggleComponent: toggle ARGS
type ToggleComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (t *ToggleComponent) INode()               {} // Implements Node interface
func (t *ToggleComponent) Stmt()                {} // Implements Statement interface
func (t *ToggleComponent) Pos() source.Position { return t.Position }

// CheckboxComponent: checkbox ARGS
type CheckboxComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (c *CheckboxComponent) INode()               {} // Implements Node interface
func (c *CheckboxComponent) Stmt()                {} // Implements Statement interface
func (c *CheckboxComponent) Pos() source.Position { return c.Position }

// RadioComponent: radio ARGS
type RadioComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (r *RadioComponent) INode()               {} // Implements Node interface
func (r *RadioComponent) Stmt()                {} // Implements Statement interface
func (r *RadioComponent) Pos() source.Position { return r.Position }

// ButtonComponent: button ARGS
type ButtonComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (b *ButtonComponent) INode()               {} // Implements Node interface
func (b *ButtonComponent) Stmt()                {} // Implements Statement interface
func (b *ButtonComponent) Pos() source.Position { return b.Position }

// ImageComponent: image ARGS
type ImageComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (i *ImageComponent) INode()               {} // Implements Node interface
func (i *ImageComponent) Stmt()                {} // Implements Statement interface
func (i *ImageComponent) Pos() source.Position { return i.Position }

// VideoComponent: video ARGS
type VideoComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (v *VideoComponent) INode()               {} // Implements Node interface
func (v *VideoComponent) Stmt()                {} // Implements Statement interface
func (v *VideoComponent) Pos() source.Position { return v.Position }

// AudioComponent: audio ARGS
type AudioComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (a *AudioComponent) INode()               {} // Implements Node interface
func (a *AudioComponent) Stmt()                {} // Implements Statement interface
func (a *AudioComponent) Pos() source.Position { return a.Position }

// SlotComponent: slot ARGS. Marks where a layout hosts screen content.
type SlotComponent struct {
	Args []*Literal
	ComponentAttrs
	source.Position
}

func (s *SlotComponent) INode()               {} // Implements Node interface
func (s *SlotComponent) Stmt()                {} // Implements Statement interface
func (s *SlotComponent) Pos() source.Position { return s.Position }
