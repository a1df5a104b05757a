package convert

import (
	"strings"

	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// convertBlocks converts a block sequence, concatenating the zero or more
// blocks produced by each node in order.
func (w *walker) convertBlocks(nodes []*mdast.Node, depth int) []adf.Block {
	var out []adf.Block
	for _, node := range nodes {
		out = append(out, w.convertBlock(node, depth)...)
	}
	return out
}

func (w *walker) convertBlock(node *mdast.Node, depth int) []adf.Block {
	if node == nil {
		return nil
	}

	switch node.Type {
	case mdast.Paragraph:
		content := w.flatten(node.Children, nil, depth)
		if len(content) == 0 {
			return nil
		}
		return []adf.Block{adf.Paragraph{Content: content}}

	case mdast.Heading:
		return []adf.Block{adf.Heading{
			Level:   node.IntAttr(mdast.AttrLevel),
			Content: w.flatten(node.Children, nil, depth),
		}}

	case mdast.BlockCode:
		return []adf.Block{adf.CodeBlock{
			Language: strings.TrimSpace(node.StringAttr(mdast.AttrInfo)),
			Text:     node.Raw,
		}}

	case mdast.BlockQuote:
		if !w.enter(node, depth+1) {
			return nil
		}
		content := w.convertBlocks(node.Children, depth+1)
		if len(content) == 0 {
			return nil
		}
		return []adf.Block{adf.Blockquote{Content: content}}

	case mdast.List:
		if !w.enter(node, depth+1) {
			return nil
		}
		return []adf.Block{w.convertList(node, depth+1)}

	case mdast.ThematicBreak:
		return []adf.Block{adf.Rule{}}

	case mdast.Table:
		return []adf.Block{w.convertTable(node, depth)}

	default:
		w.drop(interfaces.WarningUnknownBlock, node)
		return nil
	}
}

func (w *walker) convertList(node *mdast.Node, depth int) adf.Block {
	items := []adf.ListItem{}
	for _, child := range node.Children {
		if child == nil || child.Type != mdast.ListItem {
			continue
		}
		items = append(items, adf.ListItem{Content: w.convertListItem(child, depth)})
	}

	if node.BoolAttr(mdast.AttrOrdered) {
		return adf.OrderedList{Items: items}
	}
	return adf.BulletList{Items: items}
}

// convertListItem collapses the two shapes a line of item text can take
// (block_text in tight lists, paragraph in loose ones) into a paragraph.
// Nested lists stay siblings of that paragraph.
func (w *walker) convertListItem(item *mdast.Node, depth int) []adf.Block {
	var out []adf.Block
	for _, child := range item.Children {
		if child == nil {
			continue
		}
		switch child.Type {
		case mdast.BlockText, mdast.Paragraph:
			if content := w.flatten(child.Children, nil, depth); len(content) > 0 {
				out = append(out, adf.Paragraph{Content: content})
			}
		default:
			out = append(out, w.convertBlock(child, depth)...)
		}
	}
	return out
}
