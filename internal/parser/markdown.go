package parser

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// scaffoldFenceLanguages are the fence info strings accepted as scaffold
// blocks inside a Markdown design doc.
var scaffoldFenceLanguages = map[string]bool{
	"yaml":     true,
	"yml":      true,
	"scaffold": true,
}

// ExtractScaffoldBlock returns the contents of the first fenced yaml/scaffold
// code block in a Markdown document. Design docs commonly carry prose around
// the scaffold; only the first matching fence is used, and a document without
// one is an error rather than an empty scaffold.
func ExtractScaffoldBlock(source []byte) ([]byte, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var block []byte
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || block != nil {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := string(fenced.Language(source))
		if !scaffoldFenceLanguages[lang] {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		block = buf.Bytes()
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	if block == nil {
		return nil, fmt.Errorf("no fenced yaml or scaffold block found")
	}
	return block, nil
}
