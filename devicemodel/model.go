// Package devicemodel enumerates the Soundcore device models the
// control core knows how to drive and maps each onto the device family
// whose module assembly it shares (§4.7).
package devicemodel

// Model is the closed set of supported Soundcore device models.
type Model string

// The supported models. Every one resolves, via Family, to one of the
// handful of device assemblies in devices/.
const (
	A3028 Model = "A3028"
	A3027 Model = "A3027"
	A3031 Model = "A3031"
	A3033 Model = "A3033"
	A3926 Model = "A3926"
	A3930 Model = "A3930"
	A3931 Model = "A3931"
	A3933 Model = "A3933"
	A3935 Model = "A3935"
	A3936 Model = "A3936"
	A3939 Model = "A3939"
	A3940 Model = "A3940"
	A3945 Model = "A3945"
	A3947 Model = "A3947"
	A3948 Model = "A3948"
	A3951 Model = "A3951"
	A3955 Model = "A3955"
	A3957 Model = "A3957"
	A3959 Model = "A3959"
	A3035 Model = "A3035"
	A3040 Model = "A3040"
	A3116 Model = "A3116"
)

// All lists every supported model, in the order device-model selector
// UIs should present them.
var All = []Model{
	A3028, A3027, A3031, A3033,
	A3926, A3930, A3931, A3933, A3935,
	A3936, A3939, A3940, A3945, A3947, A3948, A3951, A3955, A3957, A3959,
	A3035, A3040, A3116,
}

// Family identifies which devices/ assembly builds and drives a model.
type Family string

const (
	// FamilyClassic covers classic-SoundModes models with a plain
	// two-channel equalizer (A3028-style).
	FamilyClassic Family = "classic"
	// FamilyClassicDRC covers dual-channel classic-SoundModes models
	// whose equalizer write also carries a DRC-compressed curve
	// (A3931-style).
	FamilyClassicDRC Family = "classic-drc"
	// FamilyHearID covers dual-channel classic-SoundModes models whose
	// equalizer is fused with a custom hear-ID profile (A3926-style).
	FamilyHearID Family = "hearid"
	// FamilyTypeTwo covers the richer SoundModesTypeTwo surface used by
	// newer models (A3936-style).
	FamilyTypeTwo Family = "type-two"
)

// families maps every supported model onto the closest-matching
// assembly. Grouping rationale is recorded in DESIGN.md: models within
// a family share sound-mode shape, equalizer shape, and button/battery
// layout closely enough to share one assembly, differing only in
// cosmetic details (name, preset tables) that a device registry entry
// supplies separately.
var families = map[Model]Family{
	A3028: FamilyClassic,
	A3027: FamilyClassic,
	A3031: FamilyClassic,
	A3033: FamilyClassic,
	A3035: FamilyClassic,
	A3040: FamilyClassic,
	A3116: FamilyClassic,

	A3931: FamilyClassicDRC,
	A3933: FamilyClassicDRC,
	A3935: FamilyClassicDRC,
	A3930: FamilyClassicDRC,

	A3926: FamilyHearID,

	A3936: FamilyTypeTwo,
	A3939: FamilyTypeTwo,
	A3940: FamilyTypeTwo,
	A3945: FamilyTypeTwo,
	A3947: FamilyTypeTwo,
	A3948: FamilyTypeTwo,
	A3951: FamilyTypeTwo,
	A3955: FamilyTypeTwo,
	A3957: FamilyTypeTwo,
	A3959: FamilyTypeTwo,
}

// FamilyOf returns the assembly family for m, defaulting to
// FamilyClassic for any model not explicitly mapped.
func FamilyOf(m Model) Family {
	if f, ok := families[m]; ok {
		return f
	}
	return FamilyClassic
}

func (m Model) String() string { return string(m) }
