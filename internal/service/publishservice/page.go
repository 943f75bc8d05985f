package publishservice

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/pagemint/pagemint/internal/domain"
)

// The page layout is a single self-contained document: a stack of
// images for the image tool, or the bilingual article with the
// Arabic section rendered right-to-left. Every page carries the
// attribution footer.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { max-width: 720px; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.6; }
img { max-width: 100%; display: block; margin: 1rem 0; }
footer { margin-top: 3rem; font-size: 0.8rem; color: #888; }
</style>
</head>
<body>
{{- if .Title}}
<h1>{{.Title}}</h1>
{{- end}}
{{- range .ImageURLs}}
<img src="{{.}}" alt="">
{{- end}}
{{- range .ParagraphsEN}}
<p>{{.}}</p>
{{- end}}
{{- if .ParagraphsAR}}
<section dir="rtl" lang="ar">
{{- if .TitleTranslated}}
<h1>{{.TitleTranslated}}</h1>
{{- end}}
{{- range .ParagraphsAR}}
<p>{{.}}</p>
{{- end}}
</section>
{{- end}}
<footer>Made with PageMint</footer>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Title           string
	TitleTranslated string
	ParagraphsEN    []string
	ParagraphsAR    []string
	ImageURLs       []string
}

func renderPage(content *domain.Content, imageURLs []string) ([]byte, error) {
	data := pageData{
		Title:           content.Title,
		TitleTranslated: content.TitleTranslated,
		ParagraphsEN:    paragraphs(content.BodyEN),
		ParagraphsAR:    paragraphs(content.BodyAR),
		ImageURLs:       imageURLs,
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paragraphs(body string) []string {
	var out []string
	for _, p := range strings.Split(body, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
