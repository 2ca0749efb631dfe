// Package assets supplies the glyph shown for each prompt.
package assets

import "github.com/verte-zerg/reflex/internal/model"

// DefaultIcons holds the built-in glyph of every default prompt.
var DefaultIcons = map[model.PromptID]string{
	"GenericA":         "A",
	"GenericB":         "B",
	"GenericY":         "Y",
	"GenericX":         "X",
	"GenericLB":        "LB",
	"GenericLT":        "LT",
	"GenericRB":        "RB",
	"GenericRT":        "RT",
	"GenericL3":        "L3",
	"GenericR3":        "R3",
	"GenericSelect":    "SELECT",
	"GenericStart":     "START",
	"GenericDPadUp":    "▲",
	"GenericDPadLeft":  "◀",
	"GenericDPadRight": "▶",
	"GenericDPadDown":  "▼",

	"PlaystationCross":     "✕",
	"PlaystationCircle":    "○",
	"PlaystationTriangle":  "△",
	"PlaystationSquare":    "□",
	"PlaystationL1":        "L1",
	"PlaystationL2":        "L2",
	"PlaystationR1":        "R1",
	"PlaystationR2":        "R2",
	"PlaystationL3":        "L3",
	"PlaystationR3":        "R3",
	"PlaystationSelect":    "SHARE",
	"PlaystationStart":     "OPTIONS",
	"PlaystationDPadUp":    "⇧",
	"PlaystationDPadLeft":  "⇦",
	"PlaystationDPadRight": "⇨",
	"PlaystationDPadDown":  "⇩",
}

// IconSet resolves prompts to glyphs.
type IconSet struct {
	icons map[model.PromptID]string
}

// NewIconSet layers overrides on top of DefaultIcons. An empty override removes the icon.
func NewIconSet(overrides map[model.PromptID]string) *IconSet {
	icons := make(map[model.PromptID]string, len(DefaultIcons)+len(overrides))
	for id, glyph := range DefaultIcons {
		icons[id] = glyph
	}
	for id, glyph := range overrides {
		if glyph == "" {
			delete(icons, id)
			continue
		}
		icons[id] = glyph
	}
	return &IconSet{icons: icons}
}

// IconFor returns the glyph of a prompt, if one exists.
func (s *IconSet) IconFor(id model.PromptID) (string, bool) {
	glyph, ok := s.icons[id]
	return glyph, ok
}
