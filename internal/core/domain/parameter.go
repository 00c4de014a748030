package domain

import (
	"strings"
	"unicode"
)

// ValueKind only informs formatting; segmentation treats every value as a string.
type ValueKind string

const (
	ValueKindBoolean ValueKind = "boolean"
	ValueKindString  ValueKind = "string"
	ValueKindNumber  ValueKind = "number"
)

// ParameterDescriptor identifies one analyzable dimension. ID is the dotted
// path used to look the value up in an event payload.
type ParameterDescriptor struct {
	ID          string
	DisplayName string
	ValueKind   ValueKind
	Known       bool
}

// Paths of the parameters that are always offered for analysis.
const (
	ParamBatteryStatus     = "metadata.props.batteryStatus"
	ParamMotionState       = "metadata.props.motionState"
	ParamChargeState       = "metadata.props.chargeState"
	ParamMessageType       = "metadata.props.msgType"
	ParamHydrophobicStatus = "metadata.props.hydrophobicStatus"
)

var knownParameters = []ParameterDescriptor{
	{ID: ParamBatteryStatus, DisplayName: "Battery Status", ValueKind: ValueKindString, Known: true},
	{ID: ParamMotionState, DisplayName: "Motion State", ValueKind: ValueKindBoolean, Known: true},
	{ID: ParamChargeState, DisplayName: "Charge State", ValueKind: ValueKindString, Known: true},
	{ID: ParamMessageType, DisplayName: "Message Type", ValueKind: ValueKindString, Known: true},
	{ID: ParamHydrophobicStatus, DisplayName: "Hydrophobic Status", ValueKind: ValueKindBoolean, Known: true},
}

// KnownParameters returns the fixed descriptor set in priority order.
func KnownParameters() []ParameterDescriptor {
	out := make([]ParameterDescriptor, len(knownParameters))
	copy(out, knownParameters)
	return out
}

// KnownParameter returns the fixed descriptor for id, if there is one.
func KnownParameter(id string) (ParameterDescriptor, bool) {
	for _, p := range knownParameters {
		if p.ID == id {
			return p, true
		}
	}
	return ParameterDescriptor{}, false
}

// NewParameterDescriptor builds a descriptor for an arbitrary path.
func NewParameterDescriptor(id string, kind ValueKind) ParameterDescriptor {
	if p, ok := KnownParameter(id); ok {
		return p
	}
	return ParameterDescriptor{ID: id, DisplayName: DisplayName(id), ValueKind: kind}
}

// DisplayName turns the last path segment into a title cased label:
// "metadata.props.gpsFix_quality" becomes "Gps Fix Quality".
func DisplayName(id string) string {
	seg := id
	if i := strings.LastIndex(id, "."); i >= 0 {
		seg = id[i+1:]
	}

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(seg)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	if len(words) == 0 {
		return id
	}
	return strings.Join(words, " ")
}
