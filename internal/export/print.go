package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// PrintTitle is the document title of the printable contract.
const PrintTitle = "Contrato - Prompt Pronto"

var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: 'Times New Roman', serif; padding: 40px; line-height: 1.6; color: #000; }
  h1, h2, h3 { color: #000; }
  pre { white-space: pre-wrap; font-family: 'Times New Roman', serif; }
  .footer { margin-top: 50px; font-size: 12px; text-align: center; color: #666; border-top: 1px solid #ccc; padding-top: 10px; }
</style>
</head>
<body>
<pre>{{.Body}}</pre>
<div class="footer">Gerado via Prompt Pronto</div>
<script>setTimeout(function () { window.print(); }, 250);</script>
</body>
</html>
`))

// WritePrintDocument renders text as a standalone page that opens the
// browser's print dialog once loaded. The text is HTML-escaped.
func WritePrintDocument(w io.Writer, text string) error {
	if err := printTmpl.Execute(w, struct{ Title, Body string }{PrintTitle, text}); err != nil {
		return fmt.Errorf("render print document: %w", err)
	}
	return nil
}

// PrintDocument is WritePrintDocument into memory.
func PrintDocument(text string) ([]byte, error) {
	var b bytes.Buffer
	err := WritePrintDocument(&b, text)
	return b.Bytes(), err
}
