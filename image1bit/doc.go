// Package image1bit provides monochrome image formats for the SSD1306 display controller.
//
// The SSD1306 addresses its RAM in columns of "pages": each byte holds 8
// vertically stacked pixels, the least significant bit being the topmost one.
// VerticalLSB stores whole columns contiguously so that a rectangle can be
// streamed to the controller in its vertical addressing mode without any
// reordering.
//
// Memory layout example for a 2x16 image (2 columns, 2 pages per column):
//
//	Pix[0] = column 0, rows 0-7     Pix[1] = column 0, rows 8-15
//	Pix[2] = column 1, rows 0-7     Pix[3] = column 1, rows 8-15
//
//	Pixel (1, 10) is bit 2 of Pix[3].
//
// This package provides:
//
// - Bit: a color type with two states, on and off
// - BitModel: a color model converting standard Go colors to Bit
// - VerticalLSB: a draw.Image backed by the controller's packed layout
// - PixelMap: a rectangular grid of booleans used to compose glyphs and widgets
//
// Example usage:
//
//	// Create a 128x64 frame
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Turn a pixel on
//	img.SetBit(10, 20, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
