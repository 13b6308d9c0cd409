package flatten

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

// priceLevelNum maps the upstream price-level enum tokens to compact
// integers. Unmapped tokens keep the original token and get a nil
// numeric companion.
var priceLevelNum = map[string]int{
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// addrTypeToCol maps addressComponents type tags to output columns.
// One column per group; the first component carrying a tag wins.
var addrTypeToCol = map[string]string{
	"street_number":               "addr_street_number",
	"route":                       "addr_route",
	"sublocality_level_1":         "addr_sublocality",
	"sublocality":                 "addr_sublocality",
	"locality":                    "addr_locality",
	"administrative_area_level_2": "addr_admin_area2",
	"administrative_area_level_1": "addr_admin_area1",
	"country":                     "addr_country",
	"postal_code":                 "addr_postal_code",
	"postal_code_suffix":          "addr_postal_code_suffix",
}

// asJSON serialises a value to a compact JSON string without HTML
// escaping. nil in, nil out.
func asJSON(v any) any {
	if v == nil {
		return nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// stringify renders a single joined-list element.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any, []any:
		s, _ := asJSON(t).(string)
		return s
	default:
		return fmt.Sprint(t)
	}
}

// joinAny joins a decoded JSON array with sep. Non-arrays and empty
// arrays yield nil so the column reads as blank, matching the other
// degraded shapes.
func joinAny(v any, sep string) any {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = stringify(item)
	}
	return strings.Join(parts, sep)
}

// coalesce returns the first value that is neither nil nor an empty
// string.
func coalesce(vals ...any) any {
	for _, v := range vals {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}

// expandViewport extracts the low/high corner coordinates of a
// geographic bounds object into four scalar columns.
func expandViewport(rec *domain.Record, v any) {
	vp, ok := v.(map[string]any)
	if !ok {
		return
	}
	low, _ := vp["low"].(map[string]any)
	high, _ := vp["high"].(map[string]any)
	rec.Set("viewport_low_lat", low["latitude"])
	rec.Set("viewport_low_lng", low["longitude"])
	rec.Set("viewport_high_lat", high["latitude"])
	rec.Set("viewport_high_lng", high["longitude"])
}

// expandHours flattens an opening-hours block under the given column
// prefix. Only the parts present in the block produce columns; the raw
// period list is kept as JSON for full fidelity.
func expandHours(rec *domain.Record, prefix string, v any) {
	hours, ok := v.(map[string]any)
	if !ok {
		return
	}
	if val, ok := hours["openNow"]; ok {
		b, _ := val.(bool)
		rec.Set(prefix+"_open_now", b)
	}
	if val, ok := hours["weekdayDescriptions"]; ok {
		rec.Set(prefix+"_weekday_desc", joinAny(val, " | "))
	}
	if val, ok := hours["nextCloseTime"]; ok {
		rec.Set(prefix+"_next_close_time", val)
	}
	if val, ok := hours["periods"]; ok {
		rec.Set(prefix+"_periods_json", asJSON(val))
	}
}

// expandPriceRange extracts the starting price's units and currency.
func expandPriceRange(rec *domain.Record, v any) {
	pr, ok := v.(map[string]any)
	if !ok {
		return
	}
	start, _ := pr["startPrice"].(map[string]any)
	rec.Set("price_start_units", start["units"])
	rec.Set("price_start_currency", start["currencyCode"])
}

// expandPlusCode extracts the global and compound plus codes.
func expandPlusCode(rec *domain.Record, v any) {
	pc, ok := v.(map[string]any)
	if !ok {
		return
	}
	rec.Set("pluscode_global", pc["globalCode"])
	rec.Set("pluscode_compound", pc["compoundCode"])
}

// expandAddressComponents maps typed address components onto canonical
// addr_* columns. Long text is preferred over short text; the first
// component carrying a recognised tag fills the column and later ones
// are ignored. The country component's short text additionally fills
// addr_country_code.
func expandAddressComponents(rec *domain.Record, v any) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for _, item := range list {
		comp, ok := item.(map[string]any)
		if !ok {
			continue
		}
		long := coalesce(comp["longText"], comp["long_name"])
		short := coalesce(comp["shortText"], comp["short_name"])
		types, _ := comp["types"].([]any)
		for _, tv := range types {
			tag, _ := tv.(string)
			col, known := addrTypeToCol[tag]
			if !known {
				continue
			}
			rec.SetOnce(col, coalesce(long, short))
			if tag == "country" {
				rec.SetOnce("addr_country_code", short)
			}
		}
	}
}

// maxReviewSample bounds the digest to the first few review texts.
const maxReviewSample = 3

// expandReviews emits a count, a compact digest of the first review
// texts (CSV-safe: newlines collapsed) and the raw list as JSON.
func expandReviews(rec *domain.Record, v any) {
	list, ok := v.([]any)
	if !ok {
		rec.Set("reviews_json", asJSON(v))
		return
	}
	rec.Set("review_count", len(list))

	var texts []any
	for _, item := range list[:min(maxReviewSample, len(list))] {
		txt := coalesce(lookup(item, "text.text"), lookup(item, "originalText.text"))
		if s, ok := txt.(string); ok && s != "" {
			texts = append(texts, strings.TrimSpace(strings.ReplaceAll(s, "\n", " ")))
		}
	}
	rec.Set("reviews_sample", joinAny(texts, " || "))
	rec.Set("reviews_json", asJSON(list))
}

// expandContainingPlaces keeps a lightweight name summary of the places
// containing this one, falling back to raw JSON when no names resolve.
func expandContainingPlaces(rec *domain.Record, v any) {
	list, ok := v.([]any)
	if !ok {
		rec.Set("containing_places_json", asJSON(v))
		return
	}
	var names []any
	for _, item := range list {
		nm := coalesce(lookup(item, "displayName.text"), lookup(item, "id"), lookup(item, "name"))
		if nm != nil {
			names = append(names, nm)
		}
	}
	rec.Set("containing_places", joinAny(names, ";"))
	if len(names) == 0 {
		rec.Set("containing_places_json", asJSON(list))
	}
}
