package convert

import (
	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// convertTable emits the head row followed by every body row in source
// order. Cells are never dropped: an empty cell still wraps a paragraph.
func (w *walker) convertTable(node *mdast.Node, depth int) adf.Table {
	var head, body []adf.TableRow

	for _, section := range node.Children {
		if section == nil {
			continue
		}
		switch section.Type {
		case mdast.TableHead:
			head = append(head, adf.TableRow{Cells: w.convertCells(section.Children, true, depth)})
		case mdast.TableBody:
			for _, row := range section.Children {
				if row == nil {
					continue
				}
				body = append(body, adf.TableRow{Cells: w.convertCells(row.Children, false, depth)})
			}
		}
	}

	rows := make([]adf.TableRow, 0, len(head)+len(body))
	rows = append(rows, head...)
	rows = append(rows, body...)
	return adf.Table{Rows: rows}
}

func (w *walker) convertCells(cells []*mdast.Node, header bool, depth int) []adf.Block {
	out := make([]adf.Block, 0, len(cells))
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		content := []adf.Block{adf.Paragraph{Content: w.flatten(cell.Children, nil, depth)}}
		if header {
			out = append(out, adf.TableHeader{Content: content})
		} else {
			out = append(out, adf.TableCell{Content: content})
		}
	}
	return out
}
