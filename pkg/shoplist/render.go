package shoplist

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultFontSize = 12
	lineHeightRatio = 0.6
	fontFamily      = "ShopList"
)

type RenderOptions struct {
	// FontPath 覆盖内置的 Go Regular 字体，需为 UTF-8 TTF
	FontPath string
	FontSize float64

	// 内容流不压缩
	plain bool
}

// Render 生成 A4 文档，每个食材一行，超出一页时自动分页
func Render(w io.Writer, l *List, opts RenderOptions) error {
	_, err := render(w, l, opts)
	return err
}

func render(w io.Writer, l *List, opts RenderOptions) (int, error) {
	size := opts.FontSize
	if size <= 0 {
		size = defaultFontSize
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetCompression(!opts.plain)

	if opts.FontPath != "" {
		font, err := os.ReadFile(opts.FontPath)
		if err != nil {
			return 0, fmt.Errorf("shop list font: %w", err)
		}
		pdf.AddUTF8FontFromBytes(fontFamily, "", font)
	} else {
		pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	}
	pdf.SetFont(fontFamily, "", size)
	pdf.AddPage()

	lineHeight := size * lineHeightRatio
	for _, line := range l.Lines() {
		pdf.MultiCell(0, lineHeight, line, "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return 0, err
	}
	pages := pdf.PageCount()
	return pages, pdf.Output(w)
}
