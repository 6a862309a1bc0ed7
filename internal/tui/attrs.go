package tui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the attributes table. With a picked feature it
// shows that feature's properties as key/value rows; otherwise it falls
// back to a one-row dataset summary.
func (m *Model) refreshAttrs() {
	var cols []table.Column
	var rows []table.Row
	if m.picked != nil && len(m.picked.Properties) > 0 {
		cols = []table.Column{
			{Title: "key", Width: 18},
			{Title: "value", Width: 36},
		}
		keys := make([]string, 0, len(m.picked.Properties))
		for k := range m.picked.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, table.Row{k, formatAttr(m.picked.Properties[k])})
		}
	} else {
		cols, rows = m.summaryRow()
	}
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func (m *Model) summaryRow() ([]table.Column, []table.Row) {
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<unsaved>"
	}
	if mdl := m.vp.Model(); mdl != nil {
		cols := []table.Column{
			{Title: "name", Width: 18},
			{Title: "elements", Width: 10},
			{Title: "selected", Width: 18},
		}
		sel := m.vp.SelectedElement()
		if sel == "" {
			sel = "-"
		}
		return cols, []table.Row{{name, fmt.Sprintf("%d", len(mdl.Elements)), sel}}
	}
	layers := m.vp.Layers()
	if layers.Len() == 0 {
		return nil, nil
	}
	b := m.vp.Bounds()
	cols := []table.Column{
		{Title: "name", Width: 18},
		{Title: "layers", Width: 8},
		{Title: "bounds", Width: 36},
	}
	row := table.Row{
		name,
		fmt.Sprintf("%d", layers.Len()),
		fmt.Sprintf("[%.5f, %.5f, %.5f, %.5f]", b.MinX, b.MinY, b.MaxX, b.MaxY),
	}
	return cols, []table.Row{row}
}

func formatAttr(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
