// Package ssd1306 controls a monochrome SSD1306 OLED display via I²C.
//
// The driver composes frames in memory and only transmits the smallest
// rectangle of changed bytes on Render.
//
// See the examples for how to use this package.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/kcgauge/ssd1306/font"
	"github.com/kcgauge/ssd1306/image1bit"
	"github.com/kcgauge/ssd1306/widget"
)

// DefaultAddr is the usual I²C address of SSD1306 modules.
const DefaultAddr = 0x3C

// DefaultContrast is the contrast set at initialization when Opts.Contrast is 0.
const DefaultContrast = 0x7F

var (
	// ErrHalted is returned by operations on a halted device.
	ErrHalted = errors.New("ssd1306: halted")
	// ErrBufferSize is returned by Write for a frame of the wrong length.
	ErrBufferSize = errors.New("ssd1306: invalid buffer size")
)

// Glyphs provides the fonts used by Print and DrawValue.
type Glyphs interface {
	font.Provider
	widget.NumeralSource
}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 64, must be a multiple of 8 and ≤64)

	Addr     uint16           // I²C address (default: 0x3C)
	Speed    physic.Frequency // Bus speed, left untouched when 0
	Contrast byte             // Initial contrast (default: 0x7F)

	// Optional collaborators
	Glyphs Glyphs       // Fonts (default: font.New())
	Logger *slog.Logger // Logger (default: slog.Default())
}

// Dev is the device handle for the SSD1306 display.
//
// Dev is not safe for concurrent use: callers sharing a Dev between
// goroutines must serialize calls themselves.
type Dev struct {
	// Communication
	c conn.Conn

	// Display geometry
	rect image.Rectangle

	// Pixel buffers
	pending   *image1bit.VerticalLSB // Frame being composed
	committed *image1bit.VerticalLSB // Frame shown by the display

	glyphs Glyphs
	log    *slog.Logger

	// State
	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewI2C creates a new SSD1306 device connected via I²C and initializes it.
//
// opts can be nil to use defaults (128x64 display at 0x3C).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 64}
	}

	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H > 64 || opts.H%image1bit.PageHeight != 0 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}

	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	if opts.Speed != 0 {
		if err := b.SetSpeed(opts.Speed); err != nil {
			return nil, fmt.Errorf("ssd1306: failed to set bus speed: %w", err)
		}
	}

	glyphs := opts.Glyphs
	if glyphs == nil {
		set, err := font.New()
		if err != nil {
			return nil, err
		}
		glyphs = set
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	d := &Dev{
		c:         &i2c.Dev{Bus: b, Addr: addr},
		rect:      rect,
		pending:   image1bit.NewVerticalLSB(rect),
		committed: image1bit.NewVerticalLSB(rect),
		glyphs:    glyphs,
		log:       logger.With("device", "ssd1306", "addr", fmt.Sprintf("0x%02X", addr)),
	}
	// Every committed byte differs from the blank pending frame, so the
	// first Render rewrites the whole display RAM.
	d.committed.Fill(0xFF)

	contrast := opts.Contrast
	if contrast == 0 {
		contrast = DefaultContrast
	}
	if err := d.init(contrast); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(contrast byte) error {
	if err := d.sendLong(cmdChargePump, chargePumpEnable); err != nil {
		return err
	}
	if err := d.sendLong(cmdAddressingMode, addressingVertical); err != nil {
		return err
	}
	if err := d.sendShort(cmdSegmentRemap); err != nil {
		return err
	}
	if err := d.sendShort(cmdScanReverse); err != nil {
		return err
	}

	// Clear garbage in display RAM
	if err := d.Render(); err != nil {
		return err
	}

	if err := d.SetContrast(contrast); err != nil {
		return err
	}
	if err := d.Fill(false); err != nil {
		return err
	}
	if err := d.Invert(false); err != nil {
		return err
	}
	if err := d.Power(true); err != nil {
		return err
	}

	d.log.Info("display initialized", "width", d.rect.Dx(), "height", d.rect.Dy())
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write replaces the pending frame with raw pixel data in VerticalLSB
// format and renders it.
// The data must be exactly d.rect.Dx() * d.rect.Dy() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.pending.Pix) {
		return 0, ErrBufferSize
	}
	copy(d.pending.Pix, pixels)
	if err := d.Render(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the pending frame and renders the changes.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	draw.Draw(d.pending, dst, src, sp, draw.Src)
	return d.Render()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendLong(cmdContrast, level)
}

// Fill lights every pixel regardless of the display RAM when enabled.
func (d *Dev) Fill(enable bool) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendShort(cmdEntireDisplay | b2u(enable))
}

// Invert inverts the display (lit pixels become dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendShort(cmdNormalDisplay | b2u(invert))
}

// Power turns the panel on or off. The display RAM is retained while off.
func (d *Dev) Power(on bool) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendShort(cmdDisplayOff | b2u(on))
}

// Status reads the controller status byte. Bit 6 is set while the panel is
// off. Many I²C modules do not wire the read path.
func (d *Dev) Status() (byte, error) {
	r, err := d.receive(1)
	if err != nil {
		return 0, err
	}
	return r[0], nil
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendShort(cmdDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed defines the horizontal scroll step interval in frames.
type ScrollSpeed byte

const (
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts horizontal scrolling of the pages from startPage
// to endPage (inclusive, each < height/8).
// If right is true, scrolls right; otherwise scrolls left.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return ErrHalted
	}

	pages := d.rect.Dy() / image1bit.PageHeight
	if int(startPage) >= pages || int(endPage) >= pages || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}

	cmd := byte(cmdScrollLeft)
	if right {
		cmd = cmdScrollRight
	}
	if err := d.sendLong(cmd,
		0x00, // Dummy byte
		startPage,
		byte(speed),
		endPage,
		0x00, 0xFF, // Dummy bytes
	); err != nil {
		return err
	}
	return d.sendShort(cmdScrollStart)
}

// StopScroll stops scrolling. The display RAM must be rewritten after a
// scroll, so the next Render sends the whole frame.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.sendShort(cmdScrollStop); err != nil {
		return err
	}
	d.invalidate()
	return nil
}

// invalidate makes every committed byte differ from its pending byte.
func (d *Dev) invalidate() {
	for i, b := range d.pending.Pix {
		d.committed.Pix[i] = ^b
	}
}
