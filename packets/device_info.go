package packets

import "github.com/soundcore-go/soundcore-core/structures"

// ParseFirmwareSerialUpdate parses the unsolicited firmware+serial
// report: left firmware (major, minor), right firmware (major, minor),
// then the serial number as the remaining ASCII bytes.
func ParseFirmwareSerialUpdate(body []byte) (structures.DualFirmwareVersion, structures.SerialNumber, error) {
	if len(body) < 4 {
		return structures.DualFirmwareVersion{}, "", errShort("FirmwareSerialUpdate", 4, len(body))
	}
	fw := structures.DualFirmwareVersion{
		Left:  structures.FirmwareVersion{Major: body[0], Minor: body[1]},
		Right: structures.FirmwareVersion{Major: body[2], Minor: body[3]},
	}
	return fw, structures.SerialNumber(body[4:]), nil
}

// ParseTwsStatusUpdate parses the unsolicited TWS connection-status
// report: a single boolean byte.
func ParseTwsStatusUpdate(body []byte) (structures.TwsStatus, error) {
	if len(body) < 1 {
		return structures.TwsStatus{}, errShort("TwsStatusUpdate", 1, len(body))
	}
	return structures.TwsStatus{IsConnected: body[0] != 0}, nil
}
