package model

import (
	"encoding/json"
	"fmt"
)

// Tier is a reminder escalation level. Tiers are totally ordered:
// first < second < third < final < collection < legal.
type Tier int

const (
	TierFirst Tier = iota + 1
	TierSecond
	TierThird
	TierFinal
	TierCollection
	TierLegal
)

// AutomaticTiers are the tiers the resolver and scheduler may pick.
// Collection and legal are only reached through manual escalation.
var AutomaticTiers = []Tier{TierFirst, TierSecond, TierThird, TierFinal}

// Severity of the in-app notification created for a reminder.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var tierNames = map[Tier]string{
	TierFirst:      "first",
	TierSecond:     "second",
	TierThird:      "third",
	TierFinal:      "final",
	TierCollection: "collection",
	TierLegal:      "legal",
}

var tierTemplates = map[Tier]string{
	TierFirst:      "friendly",
	TierSecond:     "firm",
	TierThird:      "urgent",
	TierFinal:      "legal",
	TierCollection: "collection",
	TierLegal:      "legal",
}

var tierSeverities = map[Tier]Severity{
	TierFirst:      SeverityLow,
	TierSecond:     SeverityMedium,
	TierThird:      SeverityHigh,
	TierFinal:      SeverityCritical,
	TierCollection: SeverityCritical,
	TierLegal:      SeverityCritical,
}

// ParseTier converts a stored tier name back into a Tier.
func ParseTier(s string) (Tier, error) {
	for t, name := range tierNames {
		if name == s {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown reminder tier %q", s)
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}

	return fmt.Sprintf("tier(%d)", int(t))
}

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool {
	_, ok := tierNames[t]
	return ok
}

// Template returns the name of the message template used for the tier.
func (t Tier) Template() string {
	return tierTemplates[t]
}

// Severity returns the notification severity for the tier.
func (t Tier) Severity() Severity {
	return tierSeverities[t]
}

// EscalationLevel returns the 1-based position of the tier in the escalation order.
func (t Tier) EscalationLevel() int {
	if !t.Valid() {
		return 0
	}

	return int(t)
}

// NotificationType returns the in-app notification type for the tier.
func (t Tier) NotificationType() string {
	return "lending_overdue_" + t.String()
}

func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// MarshalText lets tiers be used as JSON object keys.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(data []byte) error {
	parsed, err := ParseTier(string(data))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
