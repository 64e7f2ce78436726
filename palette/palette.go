/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palette derives a tonal color scale from a single base color.
//
// A palette is a set of tokens under color.<name>: one Color token per
// tonal step, a numeric key token recording which step sits closest to
// the base color's lightness, and an alias at color.<name> pointing at
// that key tone. Tones are generated in the HCL color space so the hue
// and chroma of the base color survive across the scale.
package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/cascade-design/cascade/config"
	"github.com/cascade-design/cascade/convert"
	"github.com/cascade-design/cascade/token"
)

// ErrInvalidBaseColor is returned when the palette base color cannot
// be parsed as a CSS color.
var ErrInvalidBaseColor = errors.New("invalid palette base color")

// tonalSteps are the lightness percentages of a generated scale, from
// near-black to near-white.
var tonalSteps = [...]int{5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95}

// Tone is one entry of a generated scale.
type Tone struct {
	Step  int
	Color token.Color
}

// Palette is a generated tonal scale for one named base color.
type Palette struct {
	Name    string
	Base    token.Color
	Tones   []Tone
	KeyStep int
}

// Generate builds the tonal scale for a base color. The base may be
// any CSS color notation.
func Generate(name, base string) (*Palette, error) {
	parsed, err := csscolorparser.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %q for palette %q: %v", ErrInvalidBaseColor, base, name, err)
	}

	col := colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}
	hue, chroma, baseLight := col.Hcl()

	p := &Palette{
		Name:  name,
		Base:  token.Color(parsed.HexString()),
		Tones: make([]Tone, 0, len(tonalSteps)),
	}

	keyDelta := math.Inf(1)
	for _, step := range tonalSteps {
		light := float64(step) / 100
		tone := colorful.Hcl(hue, chroma, light).Clamped()
		p.Tones = append(p.Tones, Tone{Step: step, Color: token.Color(tone.Hex())})

		if delta := math.Abs(light - baseLight); delta < keyDelta {
			keyDelta = delta
			p.KeyStep = step
		}
	}
	return p, nil
}

// Tokens expands the palette into token entries under color.<name>.
// Tone tokens come first in ascending step order, then the key step
// number, then the alias at the palette root.
func (p *Palette) Tokens() *token.Set {
	set := token.NewSet()
	root := "color." + p.Name
	for _, tone := range p.Tones {
		set.Add(fmt.Sprintf("%s.%02d", root, tone.Step), tone.Color)
	}
	set.Add(root+".key", token.Number(p.KeyStep))
	set.Add(root, token.Alias(fmt.Sprintf("%s.%02d", root, p.KeyStep)))
	return set
}

// Apply generates every configured palette and merges the loaded set on
// top, so token files can override or alias generated entries. Palettes
// are generated in name order for deterministic output.
func Apply(set *token.Set, palettes map[string]config.Palette) (*token.Set, error) {
	if len(palettes) == 0 {
		return set, nil
	}

	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	generated := token.NewSet()
	for _, name := range names {
		p, err := Generate(name, palettes[name].Base)
		if err != nil {
			return nil, err
		}
		generated = convert.Merge(generated, p.Tokens())
	}

	return convert.Merge(generated, set), nil
}
