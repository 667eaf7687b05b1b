// Package device enumerates serial devices and opens them as line
// sources for the NMEA dispatcher.
package device

import (
	"io"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// Type classifies the transport a serial device hangs off.
type Type uint8

const (
	// TypeUnknown is a port whose transport could not be determined.
	TypeUnknown Type = iota
	// TypeUSB is a USB-attached serial adapter.
	TypeUSB
)

func (t Type) String() string {
	if t == TypeUSB {
		return "USB"
	}
	return "Unknown"
}

// Info describes one enumerated serial device.
type Info struct {
	// Name is the platform port name (COM3, /dev/ttyUSB0, ...).
	Name string
	// Type is the transport classification.
	Type Type
	// VID is the USB vendor ID as reported by the platform, empty for
	// non-USB ports.
	VID string
	// PID is the USB product ID, empty for non-USB ports.
	PID string
	// SerialNumber is the USB serial number, when reported.
	SerialNumber string
	// Product is the USB product string, when reported.
	Product string
}

// List enumerates serial devices matching the filter. A nil filter
// matches everything.
func List(filter func(*enumerator.PortDetails) bool) ([]Info, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}
	log.Info().Int("count", len(ports)).Msg("enumerated serial ports")

	var out []Info
	for _, p := range ports {
		if filter != nil && !filter(p) {
			continue
		}
		info := Info{Name: p.Name}
		if p.IsUSB {
			log.Debug().Str("port", p.Name).Str("vid", p.VID).Str("pid", p.PID).Msg("USB port")
			info.Type = TypeUSB
			info.VID = p.VID
			info.PID = p.PID
			info.SerialNumber = p.SerialNumber
			info.Product = p.Product
		}
		out = append(out, info)
	}
	log.Info().Int("count", len(out)).Msg("serial ports after filtering")
	return out, nil
}

// ListUSB enumerates USB-attached serial devices only.
func ListUSB() ([]Info, error) {
	return List(func(p *enumerator.PortDetails) bool { return p.IsUSB })
}

// Open opens a serial port at the given baud rate as a byte stream
// suitable for stream.NewReader. 8 data bits, no parity, one stop bit.
func Open(name string, baud int) (io.ReadWriteCloser, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	log.Info().Str("port", name).Int("baud", baud).Msg("serial port open")
	return port, nil
}
