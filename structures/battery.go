package structures

// SingleBattery describes a device with one shared battery (no
// left/right split), such as earlier single-unit models.
type SingleBattery struct {
	Level      uint8 // 0..=5
	IsCharging bool
}

// DualBattery describes a TWS device with independently reported left
// and right battery levels, and optionally a charging case.
type DualBattery struct {
	Left      SingleBattery
	Right     SingleBattery
	HasCase   bool
	Case      SingleBattery
}

// ParseSingleBattery parses a 2-byte {level, charging} body.
func ParseSingleBattery(body []byte) (SingleBattery, error) {
	if len(body) < 2 {
		return SingleBattery{}, errShortBody("SingleBattery", 2, len(body))
	}
	level := body[0]
	if level > 5 {
		level = 5
	}
	return SingleBattery{Level: level, IsCharging: body[1] != 0}, nil
}

// ParseDualBattery parses a 4-byte {left_level, right_level,
// left_charging, right_charging} body, the common Soundcore dual-battery
// layout.
func ParseDualBattery(body []byte) (DualBattery, error) {
	if len(body) < 4 {
		return DualBattery{}, errShortBody("DualBattery", 4, len(body))
	}
	clamp := func(v byte) uint8 {
		if v > 5 {
			return 5
		}
		return v
	}
	return DualBattery{
		Left:  SingleBattery{Level: clamp(body[0]), IsCharging: body[2] != 0},
		Right: SingleBattery{Level: clamp(body[1]), IsCharging: body[3] != 0},
	}, nil
}
