// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package liststore

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/listwarden/models"
)

// Decode parses a raw document into its current shape. It never fails:
// absent or malformed input yields an empty document. Each top-level key is
// lower-cased and trimmed. An entry may be {"emoji", "items"} or a legacy
// bare array of items; anything else is dropped. Scalar items are coerced
// to strings; null and nested values are skipped.
func Decode(raw []byte, catalog models.Catalog) models.Document {
	doc := models.Document{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		slog.Warn("ignoring unreadable list document", "error", err)
		return doc
	}

	// Sorted so that keys colliding after lower-casing resolve the same way
	// on every load.
	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := strings.ToLower(strings.TrimSpace(key))
		entry, ok := decodeEntry(top[key], catalog.EmojiFor(name))
		if !ok {
			slog.Debug("dropping malformed list entry", "list", key)
			continue
		}
		doc[name] = entry
	}
	return doc
}

func decodeEntry(raw json.RawMessage, defaultEmoji string) (models.ListEntry, bool) {
	var value any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return models.ListEntry{}, false
	}

	switch v := value.(type) {
	case map[string]any:
		emoji := defaultEmoji
		if e, ok := v["emoji"]; ok {
			if s, ok := scalarString(e); ok {
				emoji = s
			}
		}
		rawItems, present := v["items"]
		if !present {
			return models.ListEntry{Emoji: emoji, Items: []string{}}, true
		}
		list, ok := rawItems.([]any)
		if !ok {
			return models.ListEntry{}, false
		}
		return models.ListEntry{Emoji: emoji, Items: coerceItems(list)}, true
	case []any:
		return models.ListEntry{Emoji: defaultEmoji, Items: coerceItems(v)}, true
	default:
		return models.ListEntry{}, false
	}
}

func coerceItems(list []any) []string {
	out := make([]string, 0, len(list))
	for _, x := range list {
		if s, ok := scalarString(x); ok {
			out = append(out, s)
		}
	}
	return out
}

// scalarString renders a scalar the way earlier versions of the bot
// stored it: null is "None", booleans are "True"/"False". Arrays and
// objects are not scalars and are skipped.
func scalarString(x any) (string, bool) {
	switch v := x.(type) {
	case string:
		return v, true
	case json.Number:
		return numberString(v), true
	case bool:
		if v {
			return "True", true
		}
		return "False", true
	case nil:
		return "None", true
	default:
		return "", false
	}
}

// numberString keeps integer literals as written. Anything with a fraction
// or exponent is a float: shortest round-trip digits, at least one decimal,
// exponent form below 1e-4 and from 1e16 up ("100.0", "2.5e-05", "1e+16").
func numberString(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if s == "-0" {
			return "0"
		}
		return s
	}

	f, err := strconv.ParseFloat(s, 64)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case err != nil:
		return s
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}

// Reconcile resynchronizes a loaded document to the catalog: every catalog
// list is present with its configured emoji, prior items are kept, and
// lists outside the catalog are discarded.
func Reconcile(loaded models.Document, catalog models.Catalog) models.Document {
	doc := make(models.Document, len(catalog))
	for _, def := range catalog {
		items := []string{}
		if prior, ok := loaded[def.Name]; ok && prior.Items != nil {
			items = append(items, prior.Items...)
		}
		doc[def.Name] = models.ListEntry{Emoji: def.Emoji, Items: items}
	}
	return doc
}

// Encode serializes the document as indented UTF-8 JSON. Non-ASCII text is
// written as-is and HTML characters are not escaped.
func Encode(doc models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode list document: %w", err)
	}
	return buf.Bytes(), nil
}

// NeedsSeed reports whether raw holds no usable items: it is absent, not a
// JSON object, or every entry (in either shape) is empty.
func NeedsSeed(raw []byte) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return true
	}

	var top map[string]any
	if err := json.Unmarshal(raw, &top); err != nil {
		return true
	}

	for _, v := range top {
		switch entry := v.(type) {
		case map[string]any:
			if truthy(entry["items"]) {
				return false
			}
		case []any:
			if len(entry) > 0 {
				return false
			}
		}
	}
	return true
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	default:
		return true
	}
}
