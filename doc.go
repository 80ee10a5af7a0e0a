// Package ssd1306 controls a SSD1306 monochrome OLED display via I²C.
//
// The SSD1306 is a 1-bit OLED controller driving up to 128×64 pixels. This
// driver implements the display.Drawer interface from periph.io and adds a
// small compositor for text and odometer style numbers.
//
// # Display Characteristics
//
// - 1 bit per pixel, on or off
// - 128 columns and up to 8 pages of 8 rows each (128×64 or 128×32)
// - Display RAM organized column-major: one byte covers 8 rows of a column
// - Hardware scrolling support (horizontal only)
// - Adjustable contrast (0-255)
// - Display inversion
//
// # Hardware Connection
//
// Connect the SSD1306 display to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// Most modules answer at address 0x3C. Modules with the address jumper
// moved answer at 0x3D.
//
// # Basic Usage
//
// Example of creating the display and showing a reading:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//		"github.com/kcgauge/ssd1306"
//		"github.com/kcgauge/ssd1306/font"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device
//		dev, _ := ssd1306.NewI2C(bus, &ssd1306.Opts{W: 128, H: 64})
//		defer dev.Halt()
//
//		// Compose the frame
//		dev.Print(0, 0, "Oil temp     1/1", font.Text, ssd1306.AlignLeft)
//		dev.Print(0, 16, "°C", font.Text, ssd1306.AlignLeft)
//		dev.DrawValue(127, 22, 87.5, ssd1306.AlignRight)
//
//		// Send the changes
//		dev.Render()
//	}
//
// # Drawing Model
//
// The driver keeps two frames: the pending frame, which every drawing call
// modifies, and the committed frame, which mirrors the display RAM. Drawing
// never talks to the display. Render compares both frames, computes the
// smallest rectangle of columns and pages holding every difference and
// sends only that rectangle:
//
//	dev.DrawMap(40, 15, m) // touches pages 1 and 2 of columns 40-42
//	dev.Render()           // sends 6 bytes of pixel data
//
// A Render with nothing changed sends nothing. When a transmission fails the
// committed frame is left untouched, so the next Render sends the same
// rectangle again.
//
// The first Render after NewI2C rewrites the whole display RAM.
//
// # Full-Frame Update
//
// Write raw pixel data in the display RAM layout, column-major with one
// byte per column and page (1024 bytes for 128×64):
//
//	pixels := make([]byte, 128*64/8)
//	// ... fill pixels ...
//	dev.Write(pixels)
//
// Draw accepts any image.Image and converts it to 1 bit.
//
// # Text and Values
//
// Print draws a string with the 8×16 text font or the 25×35 numeral font.
// Right alignment puts the last pixel of the string on the given column.
// Print draws nothing when a character has no glyph.
//
// DrawValue draws a number with the numeral font. When the value has a
// fractional part the units digit rolls toward the next digit like a
// mechanical odometer, and higher digits follow when the units are about
// to carry:
//
//	for v := 9.0; v <= 10; v += 0.1 {
//		dev.Clear(24, 16, 104, 48)
//		dev.DrawValue(127, 22, v, ssd1306.AlignRight)
//		dev.Render()
//	}
//
// # Hardware Scrolling
//
// The display supports horizontal scrolling:
//
//	// Start scrolling right
//	dev.ScrollHorizontal(0, 7, ssd1306.Speed5Frames, true)
//	time.Sleep(5 * time.Second)
//
//	// Stop scrolling
//	dev.StopScroll()
//
// Scrolling moves the content of the display RAM, so StopScroll makes the
// next Render resend the whole frame.
//
// # Performance
//
// A full frame is 1024 bytes. On a 400kHz bus:
// - Full-frame update: ~25ms
// - Odometer value update: ~5-10ms (depends on the number of digits)
// - Hardware scrolling: Smooth (handled by display)
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package ssd1306
