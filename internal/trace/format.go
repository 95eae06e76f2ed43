package trace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // decided from the output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
}

// FormatEvent renders ev as one line.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev)
}

type jsonEvent struct {
	Time     string `json:"time"`
	Seq      uint64 `json:"seq"`
	Kind     string `json:"kind"`
	Scope    string `json:"scope"`
	SpanID   uint64 `json:"span_id,omitempty"`
	ParentID uint64 `json:"parent_id,omitempty"`
	File     string `json:"file,omitempty"`
	Name     string `json:"name"`
	Detail   string `json:"detail,omitempty"`
	Failed   bool   `json:"failed,omitempty"`
	Attrs    []Attr `json:"attrs,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	data, _ := json.Marshal(jsonEvent{
		Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		File:     ev.File,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Failed:   ev.Failed,
		Attrs:    ev.Attrs,
	})
	return append(data, '\n')
}

// formatText renders
//
//	15:04:05.000 [file] a.mof   ← class:X (ok) {props=2}
//
// with ✗ in place of the arrow for failed events.
func formatText(ev *Event) []byte {
	var sb strings.Builder
	sb.WriteString(ev.Time.Format("15:04:05.000"))
	fmt.Fprintf(&sb, " [%s]", ev.Scope)
	if ev.File != "" && ev.Scope != ScopeFile {
		sb.WriteString(" ")
		sb.WriteString(ev.File)
	}
	sb.WriteString(" ")
	sb.WriteString(strings.Repeat("  ", int(ev.Scope)-1))

	switch {
	case ev.Failed:
		sb.WriteString("✗ ")
	case ev.Kind == KindSpanBegin:
		sb.WriteString("→ ")
	case ev.Kind == KindSpanEnd:
		sb.WriteString("← ")
	default:
		sb.WriteString("• ")
	}
	sb.WriteString(ev.Name)

	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	if len(ev.Attrs) > 0 {
		sb.WriteString(" {")
		for i, a := range ev.Attrs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.Key)
			sb.WriteByte('=')
			sb.WriteString(a.Value)
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
