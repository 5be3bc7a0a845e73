package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/charmingruby/unfold/internal/catalog"
)

func render(w io.Writer, format string, rows []Row) error {
	switch format {
	case "plain":
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, r.Value); err != nil {
				return err
			}
		}
		return nil
	case "table":
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Index", "Value"})
		for _, r := range rows {
			table.Append([]string{strconv.Itoa(r.Index), fmt.Sprint(r.Value)})
		}
		table.Render()
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderCatalog(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Sequence", "Default seed", "Description"})
	table.SetAutoWrapText(false)
	for _, e := range catalog.Entries() {
		table.Append([]string{e.Name, e.DefaultSeed, e.Description})
	}
	table.Render()
	return nil
}
