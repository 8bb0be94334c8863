package notion

// props.go — property extractors and write-payload builders.
//
// Extractors tolerate missing or empty cells and hand back zero values;
// whether a zero value skips the record is the caller's call.

import (
	"strings"
	"time"
)

// --- extractors ---

// pageTitle concatenates the plain text of a title cell and trims the
// surrounding whitespace. Empty when the property is missing or not a
// title.
func pageTitle(p page, prop string) string {
	v, ok := p.Properties[prop]
	if !ok || v.Type != "title" {
		return ""
	}
	var sb strings.Builder
	for _, rt := range v.Title {
		sb.WriteString(rt.PlainText)
	}
	return strings.TrimSpace(sb.String())
}

// pageNumber returns the number cell, nil when the cell is empty or
// the property is missing or of another type.
func pageNumber(p page, prop string) *float64 {
	v, ok := p.Properties[prop]
	if !ok || v.Type != "number" {
		return nil
	}
	return v.Number
}

// --- builders ---

func titleProp(s string) propValue {
	return propValue{Title: []richText{{Text: &textSpan{Content: s}}}}
}

func textProp(s string) propValue {
	return propValue{RichText: []richText{{Text: &textSpan{Content: s}}}}
}

func numberProp(f float64) propValue {
	return propValue{Number: &f}
}

// dateProp renders t as ISO-8601 with the zone offset, matching what
// bucket starts carry.
func dateProp(t time.Time) propValue {
	return propValue{Date: &dateValue{Start: t.Format(time.RFC3339)}}
}

func selectProp(name string) propValue {
	return propValue{Select: &selectValue{Name: name}}
}

func relationProp(pageID string) propValue {
	return propValue{Relation: []relationRef{{ID: pageID}}}
}
