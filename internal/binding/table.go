// Package binding maps device families to their canonical prompt sets.
package binding

import "github.com/verte-zerg/reflex/internal/model"

// Binding ties a prompt to the terminal key that emulates the button.
type Binding struct {
	Prompt model.PromptID
	Key    string
}

// Table lists the ordered button set of each family.
type Table map[model.DeviceFamily][]Binding

// DefaultTable holds the 16-button layouts. Generic buttons use lowercase keys and
// PlayStation buttons the shifted keys, so both families can be bound at once.
var DefaultTable = Table{
	model.FamilyGeneric: {
		{Prompt: "GenericA", Key: "j"},
		{Prompt: "GenericB", Key: "l"},
		{Prompt: "GenericY", Key: "i"},
		{Prompt: "GenericX", Key: "k"},
		{Prompt: "GenericLB", Key: "q"},
		{Prompt: "GenericLT", Key: "1"},
		{Prompt: "GenericRB", Key: "e"},
		{Prompt: "GenericRT", Key: "3"},
		{Prompt: "GenericL3", Key: "z"},
		{Prompt: "GenericR3", Key: "m"},
		{Prompt: "GenericSelect", Key: "tab"},
		{Prompt: "GenericStart", Key: "enter"},
		{Prompt: "GenericDPadUp", Key: "w"},
		{Prompt: "GenericDPadLeft", Key: "a"},
		{Prompt: "GenericDPadRight", Key: "d"},
		{Prompt: "GenericDPadDown", Key: "s"},
	},
	model.FamilyPlayStation: {
		{Prompt: "PlaystationCross", Key: "J"},
		{Prompt: "PlaystationCircle", Key: "L"},
		{Prompt: "PlaystationTriangle", Key: "I"},
		{Prompt: "PlaystationSquare", Key: "K"},
		{Prompt: "PlaystationL1", Key: "Q"},
		{Prompt: "PlaystationL2", Key: "!"},
		{Prompt: "PlaystationR1", Key: "E"},
		{Prompt: "PlaystationR2", Key: "#"},
		{Prompt: "PlaystationL3", Key: "Z"},
		{Prompt: "PlaystationR3", Key: "M"},
		{Prompt: "PlaystationSelect", Key: "shift+tab"},
		{Prompt: "PlaystationStart", Key: "ctrl+j"},
		{Prompt: "PlaystationDPadUp", Key: "W"},
		{Prompt: "PlaystationDPadLeft", Key: "A"},
		{Prompt: "PlaystationDPadRight", Key: "D"},
		{Prompt: "PlaystationDPadDown", Key: "S"},
	},
}
