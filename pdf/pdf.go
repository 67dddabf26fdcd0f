package pdf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrExtractionFailed is matched by every error returned from ExtractText.
var ErrExtractionFailed = errors.New("extraction failed")

// ExtractionError reports why the text of a single file could not be read.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrExtractionFailed, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() []error {
	return []error{ErrExtractionFailed, e.Err}
}

type Document struct {
	f     *os.File
	r     *pdf.Reader
	fonts map[string]*pdf.Font

	Path     string
	NumPages int
}

// Open parses the cross-reference table of the file at path.
// The caller must Close the returned document.
func Open(path string) (doc *Document, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	// The reader panics on some malformed trailers.
	defer func() {
		if r := recover(); r != nil {
			f.Close()
			doc = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Document{
		f:        f,
		r:        r,
		fonts:    make(map[string]*pdf.Font),
		Path:     path,
		NumPages: r.NumPage(),
	}, nil
}

func (doc *Document) Close() error {
	if doc.f != nil {
		return doc.f.Close()
	}
	return nil
}

type Page struct {
	page pdf.Page
	doc  *Document

	PageNum int
}

// GetPage returns the zero-indexed page, or nil if it is out of range
// or missing from the page tree.
func (doc *Document) GetPage(page int) *Page {
	if page < 0 || page >= doc.NumPages {
		return nil
	}

	p := doc.r.Page(page + 1)
	if p.V.IsNull() {
		return nil
	}
	return &Page{page: p, doc: doc, PageNum: page}
}

// Text returns the text content of the page.
// Fonts are cached on the document so each charmap is parsed once.
func (page *Page) Text() (string, error) {
	for _, name := range page.page.Fonts() {
		if _, ok := page.doc.fonts[name]; !ok {
			font := page.page.Font(name)
			page.doc.fonts[name] = &font
		}
	}

	text, err := page.page.GetPlainText(page.doc.fonts)
	if err != nil {
		return "", err
	}
	return cleanText(text), nil
}

// cleanText drops the arrow and shape glyphs used as bullets, plus two C1
// control characters that some producers leak into the text layer.
func cleanText(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x25B6 && r <= 0x25FF:
			return -1
		case r == 0x0080 || r == 0x0089:
			return -1
		}
		return r
	}, text)
}

// ExtractText returns the text of every page of the PDF at path,
// concatenated in page order with no separator.
// All failures, including panics from the parser, are returned as *ExtractionError.
func ExtractText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Path: path, Err: fmt.Errorf("%v", r)}
		}
	}()

	doc, err := Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	defer doc.Close()

	var sb strings.Builder
	for i := range doc.NumPages {
		// Null entries in the page tree carry no text.
		page := doc.GetPage(i)
		if page == nil {
			continue
		}

		pageText, err := page.Text()
		if err != nil {
			return "", &ExtractionError{Path: path, Err: fmt.Errorf("page %d: %w", i+1, err)}
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
