package model

import (
	"github.com/google/uuid"
)

// Plan is the subscription tier of a user. It scales the default grace periods.
type Plan string

const (
	PlanBasic      Plan = "basic"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// Channel is an outbound delivery channel.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelPush     Channel = "push"
	ChannelWhatsApp Channel = "whatsapp"
)

// AllChannels lists channels in the order they are attempted and recorded.
var AllChannels = []Channel{ChannelEmail, ChannelSMS, ChannelPush, ChannelWhatsApp}

// Tones supported by the reminder templates.
const (
	ToneFriendly     = "friendly"
	ToneProfessional = "professional"
	ToneDirect       = "direct"
)

// User is the lender together with the contact details reminders are sent to.
type User struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	PushToken string           `json:"push_token"`
	WhatsApp  string           `json:"whatsapp"`
	Plan      Plan             `json:"plan"`
	Settings  ReminderSettings `json:"settings"` // raw stored settings, see Preferences for resolved values
}

// Recipient returns the address used for the given channel, empty if unknown.
func (u User) Recipient(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return u.Email
	case ChannelSMS:
		return u.Phone
	case ChannelPush:
		return u.PushToken
	case ChannelWhatsApp:
		if u.WhatsApp != "" {
			return u.WhatsApp
		}
		return u.Phone
	default:
		return ""
	}
}

// Preferences resolves the stored settings against the defaults of the user's plan.
func (u User) Preferences() Preferences {
	return u.Settings.Resolve(u.Plan)
}

// ChannelToggles turns individual channels on or off.
type ChannelToggles struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	Push     bool `json:"push"`
	WhatsApp bool `json:"whatsapp"`
}

// Enabled reports whether ch is switched on.
func (c ChannelToggles) Enabled(ch Channel) bool {
	switch ch {
	case ChannelEmail:
		return c.Email
	case ChannelSMS:
		return c.SMS
	case ChannelPush:
		return c.Push
	case ChannelWhatsApp:
		return c.WhatsApp
	default:
		return false
	}
}

// EnabledChannels returns the enabled channels in AllChannels order.
func (c ChannelToggles) EnabledChannels() []Channel {
	var out []Channel
	for _, ch := range AllChannels {
		if c.Enabled(ch) {
			out = append(out, ch)
		}
	}

	return out
}

// GracePeriods holds per-type grace periods in days.
type GracePeriods struct {
	Emergency    int `json:"emergency" validate:"min=0,max=30"`
	NonEmergency int `json:"nonEmergency" validate:"min=0,max=30"`
}

// EscalationSchedule holds the day offsets, counted after grace, at which each tier starts.
type EscalationSchedule struct {
	First  int `json:"first" validate:"min=0,max=180"`
	Second int `json:"second" validate:"min=0,max=180,gtfield=First"`
	Third  int `json:"third" validate:"min=0,max=180,gtfield=Second"`
	Final  int `json:"final" validate:"min=0,max=180,gtfield=Third"`
}

// Offset returns the threshold for one of the automatic tiers.
func (s EscalationSchedule) Offset(t Tier) (int, bool) {
	switch t {
	case TierFirst:
		return s.First, true
	case TierSecond:
		return s.Second, true
	case TierThird:
		return s.Third, true
	case TierFinal:
		return s.Final, true
	default:
		return 0, false
	}
}

// ContactWindow is the hour range, in Timezone, during which reminders may be sent.
// EndHour < StartHour describes a window wrapping around midnight.
type ContactWindow struct {
	StartHour int    `json:"startHour" validate:"min=0,max=23"`
	EndHour   int    `json:"endHour" validate:"min=0,max=23,nefield=StartHour"`
	Timezone  string `json:"timezone" validate:"required,timezone"`
}

// Preferences are the fully resolved reminder settings of a user.
type Preferences struct {
	Enabled       bool               `json:"enabled"`
	Channels      ChannelToggles     `json:"channels"`
	GracePeriods  GracePeriods       `json:"gracePeriods"`
	Escalation    EscalationSchedule `json:"escalation"`
	ContactWindow ContactWindow      `json:"contactWindow"`
	Tone          string             `json:"tone" validate:"oneof=friendly professional direct"`
}

// GracePeriod returns the configured grace period for the lending type.
func (p Preferences) GracePeriod(t LendingType) int {
	if t == LendingEmergency {
		return p.GracePeriods.Emergency
	}

	return p.GracePeriods.NonEmergency
}

// ReminderSettings is the stored, sparse form of Preferences. Nil fields fall back
// to defaults, so an empty object means "all defaults".
type ReminderSettings struct {
	Enabled       *bool               `json:"enabled,omitempty"`
	Channels      *ChannelToggles     `json:"channels,omitempty"`
	GracePeriods  *GracePeriodUpdate  `json:"gracePeriods,omitempty"`
	Escalation    *EscalationSchedule `json:"escalation,omitempty"`
	ContactWindow *ContactWindow      `json:"contactWindow,omitempty"`
	Tone          *string             `json:"tone,omitempty"`
}

// GracePeriodUpdate allows setting one grace period without touching the other.
type GracePeriodUpdate struct {
	Emergency    *int `json:"emergency,omitempty"`
	NonEmergency *int `json:"nonEmergency,omitempty"`
}

// IsEmpty reports whether no setting has been stored.
func (s ReminderSettings) IsEmpty() bool {
	return s == ReminderSettings{}
}

// Merge overlays the non-nil fields of upd on top of s.
func (s ReminderSettings) Merge(upd ReminderSettings) ReminderSettings {
	out := s

	if upd.Enabled != nil {
		out.Enabled = upd.Enabled
	}
	if upd.Channels != nil {
		out.Channels = upd.Channels
	}
	if upd.GracePeriods != nil {
		gp := GracePeriodUpdate{}
		if s.GracePeriods != nil {
			gp = *s.GracePeriods
		}
		if upd.GracePeriods.Emergency != nil {
			gp.Emergency = upd.GracePeriods.Emergency
		}
		if upd.GracePeriods.NonEmergency != nil {
			gp.NonEmergency = upd.GracePeriods.NonEmergency
		}
		out.GracePeriods = &gp
	}
	if upd.Escalation != nil {
		out.Escalation = upd.Escalation
	}
	if upd.ContactWindow != nil {
		out.ContactWindow = upd.ContactWindow
	}
	if upd.Tone != nil {
		out.Tone = upd.Tone
	}

	return out
}

// Resolve fills every unset field with the default for the plan.
func (s ReminderSettings) Resolve(plan Plan) Preferences {
	p := DefaultPreferences(plan)

	if s.Enabled != nil {
		p.Enabled = *s.Enabled
	}
	if s.Channels != nil {
		p.Channels = *s.Channels
	}
	if s.GracePeriods != nil {
		if s.GracePeriods.Emergency != nil {
			p.GracePeriods.Emergency = *s.GracePeriods.Emergency
		}
		if s.GracePeriods.NonEmergency != nil {
			p.GracePeriods.NonEmergency = *s.GracePeriods.NonEmergency
		}
	}
	if s.Escalation != nil {
		p.Escalation = *s.Escalation
	}
	if s.ContactWindow != nil {
		p.ContactWindow = *s.ContactWindow
	}
	if s.Tone != nil {
		p.Tone = *s.Tone
	}

	return p
}

var defaultGracePeriods = map[Plan]GracePeriods{
	PlanBasic:      {Emergency: 1, NonEmergency: 3},
	PlanPremium:    {Emergency: 2, NonEmergency: 5},
	PlanEnterprise: {Emergency: 3, NonEmergency: 7},
}

// DefaultGracePeriods returns the system grace periods for a plan; unknown plans get basic.
func DefaultGracePeriods(plan Plan) GracePeriods {
	if gp, ok := defaultGracePeriods[plan]; ok {
		return gp
	}

	return defaultGracePeriods[PlanBasic]
}

// DefaultContactWindow is used when the user never chose one.
var DefaultContactWindow = ContactWindow{StartHour: 9, EndHour: 18, Timezone: "UTC"}

// DefaultEscalation is the schedule applied when the user never configured one.
var DefaultEscalation = EscalationSchedule{First: 1, Second: 7, Third: 14, Final: 30}

// DefaultPreferences returns the preferences of a user with no stored settings.
func DefaultPreferences(plan Plan) Preferences {
	return Preferences{
		Enabled: true,
		Channels: ChannelToggles{
			Email: true,
			Push:  true,
		},
		GracePeriods:  DefaultGracePeriods(plan),
		Escalation:    DefaultEscalation,
		ContactWindow: DefaultContactWindow,
		Tone:          ToneProfessional,
	}
}

// DefaultSettings is the explicit settings document written on first read.
func DefaultSettings(plan Plan) ReminderSettings {
	p := DefaultPreferences(plan)
	gp := GracePeriodUpdate{
		Emergency:    &p.GracePeriods.Emergency,
		NonEmergency: &p.GracePeriods.NonEmergency,
	}

	return ReminderSettings{
		Enabled:       &p.Enabled,
		Channels:      &p.Channels,
		GracePeriods:  &gp,
		Escalation:    &p.Escalation,
		ContactWindow: &p.ContactWindow,
		Tone:          &p.Tone,
	}
}
