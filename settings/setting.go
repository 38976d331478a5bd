package settings

// Kind tags which variant of Setting is populated.
type Kind uint8

// The Setting variants: Toggle, I32Range, Select, OptionalSelect,
// ModifiableSelect, MultiSelect, Equalizer, Information, ImportString,
// Action.
const (
	KindToggle Kind = iota
	KindI32Range
	KindSelect
	KindOptionalSelect
	KindModifiableSelect
	KindMultiSelect
	KindEqualizer
	KindInformation
	KindImportString
	KindAction
)

// Setting is the value-carrying descriptor of a setting's type, range,
// and current value, as projected by a SettingHandler's Get.
type Setting struct {
	Kind Kind

	// Toggle
	BoolValue bool

	// I32Range
	Min, Max, Step, I32Value int32

	// Select / OptionalSelect / ModifiableSelect / MultiSelect
	Options           []string
	LocalizedOptions  []string
	SelectValue       string
	OptionalValue     *string
	MultiValues       []string

	// Equalizer
	BandHz             []uint32
	EqMin, EqMax       int16
	FractionDigits     uint8
	EqValue            []int16

	// Information
	InfoValue           string
	InfoTranslatedValue string

	// ImportString takes no extra fields; Action is a pure trigger.
}

// Toggle builds a Toggle setting.
func Toggle(value bool) Setting { return Setting{Kind: KindToggle, BoolValue: value} }

// I32Range builds an I32Range setting.
func I32Range(min, max, step, value int32) Setting {
	return Setting{Kind: KindI32Range, Min: min, Max: max, Step: step, I32Value: value}
}

// Select builds a Select setting.
func Select(options, localized []string, value string) Setting {
	return Setting{Kind: KindSelect, Options: options, LocalizedOptions: localized, SelectValue: value}
}

// OptionalSelect builds an OptionalSelect setting.
func OptionalSelect(options, localized []string, value *string) Setting {
	return Setting{Kind: KindOptionalSelect, Options: options, LocalizedOptions: localized, OptionalValue: value}
}

// ModifiableSelect builds a ModifiableSelect setting, whose option list
// the user may append to or remove from.
func ModifiableSelect(options, localized []string, value string) Setting {
	return Setting{Kind: KindModifiableSelect, Options: options, LocalizedOptions: localized, SelectValue: value}
}

// MultiSelect builds a MultiSelect setting.
func MultiSelect(options, localized, values []string) Setting {
	return Setting{Kind: KindMultiSelect, Options: options, LocalizedOptions: localized, MultiValues: values}
}

// Equalizer builds an Equalizer setting.
func Equalizer(bandHz []uint32, min, max int16, fractionDigits uint8, value []int16) Setting {
	return Setting{
		Kind: KindEqualizer, BandHz: bandHz, EqMin: min, EqMax: max,
		FractionDigits: fractionDigits, EqValue: value,
	}
}

// Information builds a read-only Information setting.
func Information(value, translated string) Setting {
	return Setting{Kind: KindInformation, InfoValue: value, InfoTranslatedValue: translated}
}

// ImportString builds an ImportString setting, used to accept a
// previously-exported blob (e.g. a custom equalizer profile string).
func ImportString(value string) Setting {
	return Setting{Kind: KindImportString, InfoValue: value}
}

// Action builds a trigger-only setting, e.g. "reset buttons to default".
func Action() Setting { return Setting{Kind: KindAction} }

// IsReadOnly reports whether this setting can only be read, never set.
func (s Setting) IsReadOnly() bool {
	return s.Kind == KindInformation
}
