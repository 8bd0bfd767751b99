package readme

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"toc-generator/internal/domain/model"
	"toc-generator/internal/domain/ports"
)

// Document reads a previously generated report from disk.
type Document struct {
	path string
}

var _ ports.ListingReader = (*Document)(nil)

// NewDocument creates a Document for path.
func NewDocument(path string) *Document {
	return &Document{path: path}
}

// ReadListing returns the document content and the names in its detail table.
// A missing file yields an error wrapping fs.ErrNotExist.
func (d *Document) ReadListing(_ context.Context) (*model.Listing, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	names, err := ListedNames(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &model.Listing{Content: data, Names: names}, nil
}

// ListedNames parses r as HTML and returns the text of the first cell of every data row
// in the last table, which is the detail table of a generated report.
func ListedNames(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	tables := findAll(doc, atom.Table)
	if len(tables) == 0 {
		return nil, nil
	}

	var names []string
	for _, row := range findAll(tables[len(tables)-1], atom.Tr) {
		cells := children(row, atom.Td)
		if len(cells) == 0 {
			continue
		}
		names = append(names, strings.TrimSpace(textOf(cells[0])))
	}
	return names, nil
}

func findAll(node *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = append(found, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return found
}

func children(node *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == a {
			found = append(found, child)
		}
	}
	return found
}

func textOf(node *html.Node) string {
	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}
