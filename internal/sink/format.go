package sink

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format represents the output format for region operations.
type Format uint8

const (
	FormatAuto   Format = iota // derive from output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid sink format: %q (expected: auto|text|ndjson)", s)
	}
}

// FormatOp formats a region operation according to the specified format.
func FormatOp(op Op, format Format) []byte {
	switch format {
	case FormatNDJSON:
		return formatNDJSON(op)
	default:
		return formatText(op)
	}
}

// formatText formats an operation as human-readable text.
// Format: [seq] →/← label
func formatText(op Op) []byte {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%8d] ", op.Seq))

	switch op.Kind {
	case OpBegin:
		sb.WriteString("\u2192 ") // →
	case OpEnd:
		sb.WriteString("\u2190 ") // ←
	}

	sb.WriteString(op.Label)
	sb.WriteString("\n")
	return []byte(sb.String())
}

// formatNDJSON formats an operation as newline-delimited JSON.
func formatNDJSON(op Op) []byte {
	type jsonOp struct {
		Time  string `json:"time"`
		Seq   uint64 `json:"seq"`
		Op    string `json:"op"`
		Label string `json:"label"`
	}

	j := jsonOp{
		Time:  op.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:   op.Seq,
		Op:    op.Kind.String(),
		Label: op.Label,
	}

	data, _ := json.Marshal(j)
	data = append(data, '\n')
	return data
}
