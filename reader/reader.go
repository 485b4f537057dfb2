// Package reader loads PDF files and exposes their pages as positioned
// word tokens plus raw text, which is the input the extraction
// strategies consume.
//
// PDF content streams place glyphs on a bottom-origin axis and emit
// them in small fragments. The reader merges fragments into words using
// font-size-relative kerning and flips the vertical axis so that
// smaller Y means closer to the top of the page, matching the reading
// order the rest of the module assumes. Only relative geometry matters
// downstream, so the page's own text extent serves as the flip
// reference and the media box is never consulted.
package reader

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ebarrera/manifiesto/model"
)

// File is an open PDF document.
type File struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the PDF at path. The caller must Close the returned File.
func Open(path string) (*File, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &File{f: f, r: r}, nil
}

// PageCount returns the number of pages in the document.
func (d *File) PageCount() int {
	return d.r.NumPage()
}

// Page extracts page number (1-based) as positioned tokens and raw
// text. Pages that cannot be decoded come back empty rather than
// failing the whole document.
func (d *File) Page(number int) (*model.Page, error) {
	if number < 1 || number > d.r.NumPage() {
		return nil, fmt.Errorf("page %d out of range 1..%d", number, d.r.NumPage())
	}

	p := d.r.Page(number)
	if p.V.IsNull() {
		return &model.Page{Number: number}, nil
	}

	words := mergeWords(p.Content().Text)
	tokens := flip(words)

	text, err := p.GetPlainText(nil)
	if err != nil || strings.TrimSpace(text) == "" {
		text = joinLines(words)
	}

	return &model.Page{Number: number, Tokens: tokens, Text: text}, nil
}

// Close releases the underlying file handle.
func (d *File) Close() error {
	return d.f.Close()
}

// mergeWords assembles content-stream fragments into words. Fragments
// on the same baseline whose horizontal gap is within a fraction of the
// font size belong to one word; a larger gap starts a new word. Input
// order is not trusted: fragments are baseline-sorted first, with
// near-equal Y values nudged together.
func mergeWords(chars []pdf.Text) []pdf.Text {
	const nudge = 1.0

	sort.Sort(pdf.TextVertical(chars))
	old := -100000.0
	for i, c := range chars {
		if c.Y != old && math.Abs(old-c.Y) < nudge {
			chars[i].Y = old
		} else {
			old = c.Y
		}
	}
	sort.Sort(pdf.TextVertical(chars))

	var words []pdf.Text
	for i := 0; i < len(chars); {
		// Find all fragments on this baseline.
		j := i + 1
		for j < len(chars) && chars[j].Y == chars[i].Y {
			j++
		}

		for k := i; k < j; {
			ck := chars[k]
			s := ck.S
			end := ck.X + ck.W
			charSpace := ck.FontSize / 3
			if charSpace == 0 {
				charSpace = 2
			}

			l := k + 1
			for l < j {
				cl := chars[l]
				if strings.TrimSpace(cl.S) == "" {
					// An explicit space fragment ends the word.
					l++
					break
				}
				if cl.X > end+charSpace {
					break
				}
				s += cl.S
				end = cl.X + cl.W
				l++
			}

			if w := strings.TrimSpace(s); w != "" {
				words = append(words, pdf.Text{
					Font:     ck.Font,
					FontSize: ck.FontSize,
					X:        ck.X,
					Y:        ck.Y,
					W:        end - ck.X,
					S:        w,
				})
			}
			k = l
		}
		i = j
	}
	return words
}

// flip converts bottom-origin words to top-origin tokens.
func flip(words []pdf.Text) []model.Token {
	var maxY float64
	for _, w := range words {
		if w.Y > maxY {
			maxY = w.Y
		}
	}

	tokens := make([]model.Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, model.Token{
			Text: w.S,
			X:    w.X,
			Y:    maxY - w.Y,
		})
	}
	return tokens
}

// joinLines rebuilds plain text from baseline-sorted words. Used when
// the PDF carries no extractable text stream for a page.
func joinLines(words []pdf.Text) string {
	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			if w.Y != words[i-1].Y {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(w.S)
	}
	return sb.String()
}
