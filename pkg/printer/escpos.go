package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11
	FontWide   = 0x10
	FontTall   = 0x01
)

// codePage860 is the ESC t table number for PC860 (Portuguese) on
// Epson-compatible printers.
const codePage860 = 3

// Document builds an ESC/POS byte stream for thermal printers. Text is
// transcoded to CP860 so accented Portuguese prints correctly; runes the
// code page lacks become '?'.
type Document struct {
	buf   bytes.Buffer
	width int
	enc   *encoding.Encoder
}

// NewDocument creates a document for the given character width
// (32 for 58mm paper, 48 for 80mm).
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{
		width: charWidth,
		enc:   encoding.ReplaceUnsupported(charmap.CodePage860.NewEncoder()),
	}
	d.Init()
	return d
}

// Width is the line width in characters.
func (d *Document) Width() int {
	return d.width
}

// Init resets the printer and selects the Portuguese code page.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	d.buf.Write([]byte{ESC, 't', codePage860})
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

func (d *Document) write(s string) {
	out, err := d.enc.String(s)
	if err != nil {
		out = s
	}
	d.buf.WriteString(out)
}

// Text writes a line of text. Embedded newlines start new lines.
func (d *Document) Text(s string) *Document {
	for _, line := range strings.Split(s, "\n") {
		d.write(line)
		d.buf.WriteByte(LF)
	}
	return d
}

// TextF writes a formatted line of text.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator prints a full-width line of char.
func (d *Document) Separator(char rune) *Document {
	d.write(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints key flush left and value flush right on one line.
func (d *Document) KeyValue(key, value string) *Document {
	d.columns(key, value)
	return d
}

// ItemLine prints "2x Name ... 20,00"; names too long for the line are cut.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	d.columns(fmt.Sprintf("%dx %s", qty, name), total)
	return d
}

func (d *Document) columns(left, right string) {
	room := d.width - utf8.RuneCountInString(right) - 1
	if room < 1 {
		room = 1
	}
	left = truncate(left, room)
	spaces := d.width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	d.write(left + strings.Repeat(" ", spaces) + right)
	d.buf.WriteByte(LF)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// Cut sends the full paper cut command.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
