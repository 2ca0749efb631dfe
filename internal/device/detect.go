// Package device classifies connected controllers into device families.
package device

import (
	"sort"
	"strings"

	"github.com/verte-zerg/reflex/internal/model"
)

// Lister reports the names of connected controllers.
type Lister interface {
	ListDevices() ([]string, error)
}

// Rule maps a case-insensitive name fragment to a family.
type Rule struct {
	Contains string
	Family   model.DeviceFamily
}

// DefaultRules recognizes XInput-style and Sony controllers.
var DefaultRules = []Rule{
	{Contains: "xinput", Family: model.FamilyGeneric},
	{Contains: "xbox", Family: model.FamilyGeneric},
	{Contains: "x-box", Family: model.FamilyGeneric},
	{Contains: "generic", Family: model.FamilyGeneric},
	{Contains: "sony", Family: model.FamilyPlayStation},
	{Contains: "playstation", Family: model.FamilyPlayStation},
	{Contains: "dualshock", Family: model.FamilyPlayStation},
	{Contains: "dualsense", Family: model.FamilyPlayStation},
}

// Detector turns device names into the set of connected families.
type Detector struct {
	lister Lister
	rules  []Rule
}

// NewDetector returns a Detector using DefaultRules.
func NewDetector(lister Lister) *Detector {
	return &Detector{lister: lister, rules: DefaultRules}
}

// Classify returns the family of a device name, if any rule matches.
func (d *Detector) Classify(name string) (model.DeviceFamily, bool) {
	lower := strings.ToLower(name)
	for _, rule := range d.rules {
		if strings.Contains(lower, rule.Contains) {
			return rule.Family, true
		}
	}
	return "", false
}

// Families lists connected devices and returns the recognized families, sorted.
func (d *Detector) Families() ([]model.DeviceFamily, error) {
	names, err := d.lister.ListDevices()
	if err != nil {
		return nil, err
	}
	seen := map[model.DeviceFamily]struct{}{}
	for _, name := range names {
		if family, ok := d.Classify(name); ok {
			seen[family] = struct{}{}
		}
	}
	families := make([]model.DeviceFamily, 0, len(seen))
	for family := range seen {
		families = append(families, family)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })
	return families, nil
}

// StaticLister reports a fixed list of device names, e.g. from --device.
type StaticLister []string

// ListDevices implements Lister.
func (s StaticLister) ListDevices() ([]string, error) {
	return append([]string(nil), s...), nil
}
