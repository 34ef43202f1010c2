package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

const defaultJSONIndent = 2

func outputFormat() (string, error) {
	output := viper.GetString("output")
	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, output)
	}
}

// outputRecords renders records as one table row per record, or as a JSON
// or YAML document.
func outputRecords(w io.Writer, records xinca.RecordSet) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return encodeJSON(w, records)
	case constants.FormatYAML:
		return encodeYAML(w, records)
	}

	if len(records) == 0 {
		_, err = fmt.Fprintln(w, "No records found")

		return err
	}

	columns := recordColumns(records)

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, record := range records {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = formatValue(record[column])
		}

		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// outputRecord renders a single record as property/value rows.
func outputRecord(w io.Writer, record xinca.Record) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return encodeJSON(w, record)
	case constants.FormatYAML:
		return encodeYAML(w, record)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, key := range sortedKeys(record) {
		_ = table.Append([]string{key, formatValue(record[key])})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	return encoder.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(plainValue(v))
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// plainValue replaces json.Number with int64 or float64 so YAML renders
// numbers unquoted.
func plainValue(v any) any {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}

		if f, err := value.Float64(); err == nil {
			return f
		}

		return value.String()
	case xinca.RecordSet:
		out := make([]any, len(value))
		for i, record := range value {
			out[i] = plainValue(record)
		}

		return out
	case xinca.Record:
		return plainValue(map[string]any(value))
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			out[key] = plainValue(item)
		}

		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = plainValue(item)
		}

		return out
	default:
		return v
	}
}

func recordColumns(records xinca.RecordSet) []string {
	seen := make(map[string]struct{})

	var columns []string

	for _, record := range records {
		for key := range record {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
	}

	slices.Sort(columns)

	return columns
}

func sortedKeys(record xinca.Record) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// formatValue renders a cell. Nested values are compact JSON; long values
// are truncated.
func formatValue(v any) string {
	var text string

	switch value := v.(type) {
	case nil:
		text = ""
	case string:
		text = value
	case map[string]any, []any:
		data, err := json.Marshal(value)
		if err != nil {
			text = fmt.Sprint(value)
		} else {
			text = string(data)
		}
	default:
		text = fmt.Sprint(value)
	}

	if utf8.RuneCountInString(text) > constants.StringTruncationLimit {
		return string([]rune(text)[:constants.StringTruncationLimit-3]) + "..."
	}

	return text
}
