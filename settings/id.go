// Package settings defines the device-model-agnostic settings surface:
// the closed SettingId enumeration, the Setting value-carrying
// descriptor, and the Value sum type used to write settings back.
package settings

// Id is the closed enumeration over every setting the UI can render.
// Not every model registers every Id; a Device only exposes the ones
// its module collection has a SettingHandler for.
type Id string

// The full catalogue of settings any model may expose. A given model
// registers only the subset its capability modules add.
const (
	IdAmbientSoundMode                         Id = "AmbientSoundMode"
	IdNoiseCancelingMode                       Id = "NoiseCancelingMode"
	IdTransparencyMode                         Id = "TransparencyMode"
	IdCustomNoiseCanceling                     Id = "CustomNoiseCanceling"
	IdManualNoiseCanceling                     Id = "ManualNoiseCanceling"
	IdAdaptiveNoiseCanceling                   Id = "AdaptiveNoiseCanceling"
	IdWindNoiseSuppression                     Id = "WindNoiseSuppression"
	IdNoiseCancelingAdaptiveSensitivityLevel   Id = "NoiseCancelingAdaptiveSensitivityLevel"
	IdAmbientSoundModeCycle                    Id = "AmbientSoundModeCycle"

	IdEqualizerPreset  Id = "EqualizerPreset"
	IdVolumeAdjustments Id = "VolumeAdjustments"

	IdLeftSinglePress            Id = "LeftSinglePress"
	IdLeftDoublePress            Id = "LeftDoublePress"
	IdLeftLongPress              Id = "LeftLongPress"
	IdRightSinglePress           Id = "RightSinglePress"
	IdRightDoublePress           Id = "RightDoublePress"
	IdRightLongPress             Id = "RightLongPress"
	IdResetButtonsToDefault      Id = "ResetButtonsToDefault"

	IdBatteryLevelLeft     Id = "BatteryLevelLeft"
	IdBatteryLevelRight    Id = "BatteryLevelRight"
	IdBatteryLevel         Id = "BatteryLevel"
	IdIsChargingLeft       Id = "IsChargingLeft"
	IdIsChargingRight      Id = "IsChargingRight"
	IdIsCharging           Id = "IsCharging"

	IdFirmwareVersionLeft  Id = "FirmwareVersionLeft"
	IdFirmwareVersionRight Id = "FirmwareVersionRight"
	IdFirmwareVersion      Id = "FirmwareVersion"
	IdSerialNumber         Id = "SerialNumber"

	IdTwsStatus Id = "TwsStatus"

	IdAutoPowerOff       Id = "AutoPowerOff"
	IdAutoPowerOffDuration Id = "AutoPowerOffDuration"
	IdTouchTone          Id = "TouchTone"
	IdLimitHighVolume    Id = "LimitHighVolume"

	IdAgeRange Id = "AgeRange"
	IdGender   Id = "Gender"

	IdHearIDEnabled Id = "HearIDEnabled"
)

// Category groups related settings for presentation purposes (§4.6
// settings_in_category).
type Category string

// The categories a model's settings are grouped under.
const (
	CategorySoundModes  Category = "SoundModes"
	CategoryEqualizer   Category = "Equalizer"
	CategoryButtons     Category = "Buttons"
	CategoryBattery     Category = "Battery"
	CategoryDeviceInfo  Category = "DeviceInfo"
	CategoryMisc        Category = "Misc"
)
