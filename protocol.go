package ssd1306

import (
	"github.com/pkg/errors"
)

// Control bytes prefixed to every I²C transmission.
const (
	flagLongCommand  = 0x00 // a command of 2 or more bytes follows
	flagShortCommand = 0x80 // a single command byte follows
	flagData         = 0x40 // display RAM data follows
)

// Command bytes, see the SSD1306 datasheet section 9.
const (
	cmdColumnAddress   = 0x21 // start, end column
	cmdPageAddress     = 0x22 // start, end page
	cmdAddressingMode  = 0x20 // mode
	cmdScrollRight     = 0x26
	cmdScrollLeft      = 0x27
	cmdScrollStop      = 0x2E
	cmdScrollStart     = 0x2F
	cmdContrast        = 0x81 // level
	cmdChargePump      = 0x8D // setting
	cmdSegmentRemap    = 0xA1 // column 127 is mapped to SEG0
	cmdEntireDisplay   = 0xA4 // | 1 to light every pixel
	cmdNormalDisplay   = 0xA6 // | 1 to inverse
	cmdDisplayOff      = 0xAE // | 1 to turn the panel on
	cmdScanReverse     = 0xC8 // scan from COM[N-1] to COM0
	addressingVertical = 0x01
	chargePumpEnable   = 0x14
)

// sendShort sends a single byte command.
func (d *Dev) sendShort(cmd byte) error {
	if err := d.c.Tx([]byte{flagShortCommand, cmd}, nil); err != nil {
		return errors.Wrapf(err, "ssd1306: command 0x%02X", cmd)
	}
	return nil
}

// sendLong sends a command followed by its parameters.
func (d *Dev) sendLong(cmd byte, params ...byte) error {
	w := make([]byte, 0, 2+len(params))
	w = append(w, flagLongCommand, cmd)
	w = append(w, params...)
	if err := d.c.Tx(w, nil); err != nil {
		return errors.Wrapf(err, "ssd1306: command 0x%02X", cmd)
	}
	return nil
}

// sendData sends display RAM bytes.
func (d *Dev) sendData(pixels []byte) error {
	w := make([]byte, 0, 1+len(pixels))
	w = append(w, flagData)
	w = append(w, pixels...)
	if err := d.c.Tx(w, nil); err != nil {
		return errors.Wrapf(err, "ssd1306: data (%d bytes)", len(pixels))
	}
	return nil
}

// receive reads n bytes from the controller.
func (d *Dev) receive(n int) ([]byte, error) {
	r := make([]byte, n)
	if err := d.c.Tx(nil, r); err != nil {
		return nil, errors.Wrap(err, "ssd1306: read")
	}
	return r, nil
}

func b2u(b bool) byte {
	if b {
		return 1
	}
	return 0
}
