package flatten

import (
	"github.com/custodia-labs/placescout-cli/internal/core/domain"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driven"
)

// fieldHandler binds one recognised field to its expansion.
type fieldHandler struct {
	field string
	apply func(place domain.RawPlace, rec *domain.Record)
}

// knownFields is the closed set of fields with dedicated output columns,
// in output order. The column names are a fixed scheme independent of
// how the field was spelled in the mask. Anything requested outside this
// table goes through the generic fallback in Flatten.
var knownFields = []fieldHandler{
	{"id", func(p domain.RawPlace, r *domain.Record) { r.Set("id", p["id"]) }},
	// "name" is the upstream resource name ("places/..."), not the
	// human-readable display name.
	{"name", func(p domain.RawPlace, r *domain.Record) { r.Set("resource_name", p["name"]) }},
	{"displayName", func(p domain.RawPlace, r *domain.Record) { r.Set("display_name", lookup(p, "displayName.text")) }},
	{"formattedAddress", func(p domain.RawPlace, r *domain.Record) { r.Set("formatted_address", p["formattedAddress"]) }},
	{"shortFormattedAddress", func(p domain.RawPlace, r *domain.Record) { r.Set("short_address", p["shortFormattedAddress"]) }},
	{"primaryType", func(p domain.RawPlace, r *domain.Record) { r.Set("primary_type", p["primaryType"]) }},
	{"primaryTypeDisplayName", func(p domain.RawPlace, r *domain.Record) {
		r.Set("primary_type_display", lookup(p, "primaryTypeDisplayName.text"))
	}},
	{"internationalPhoneNumber", func(p domain.RawPlace, r *domain.Record) { r.Set("phone", p["internationalPhoneNumber"]) }},
	{"websiteUri", func(p domain.RawPlace, r *domain.Record) { r.Set("website", p["websiteUri"]) }},
	{"googleMapsUri", func(p domain.RawPlace, r *domain.Record) { r.Set("gmap_url", p["googleMapsUri"]) }},
	{"businessStatus", func(p domain.RawPlace, r *domain.Record) { r.Set("business_status", p["businessStatus"]) }},
	{"pureServiceAreaBusiness", func(p domain.RawPlace, r *domain.Record) {
		r.Set("is_service_area_only", p["pureServiceAreaBusiness"])
	}},
	{"rating", func(p domain.RawPlace, r *domain.Record) { r.Set("rating", p["rating"]) }},
	{"userRatingCount", func(p domain.RawPlace, r *domain.Record) { r.Set("user_ratings_total", p["userRatingCount"]) }},
	{"types", func(p domain.RawPlace, r *domain.Record) { r.Set("types", joinAny(p["types"], ",")) }},
	{"location", func(p domain.RawPlace, r *domain.Record) {
		r.Set("lat", lookup(p, "location.latitude"))
		r.Set("lng", lookup(p, "location.longitude"))
	}},
	{"viewport", func(p domain.RawPlace, r *domain.Record) { expandViewport(r, p["viewport"]) }},
	{"plusCode", func(p domain.RawPlace, r *domain.Record) { expandPlusCode(r, p["plusCode"]) }},
	{"priceLevel", func(p domain.RawPlace, r *domain.Record) {
		lvl := p["priceLevel"]
		r.Set("price_level", lvl)
		var num any
		if s, ok := lvl.(string); ok {
			if n, mapped := priceLevelNum[s]; mapped {
				num = n
			}
		}
		r.Set("price_level_num", num)
	}},
	{"priceRange", func(p domain.RawPlace, r *domain.Record) { expandPriceRange(r, p["priceRange"]) }},
	{"currentOpeningHours", func(p domain.RawPlace, r *domain.Record) { expandHours(r, "current_hours", p["currentOpeningHours"]) }},
	{"regularOpeningHours", func(p domain.RawPlace, r *domain.Record) { expandHours(r, "regular_hours", p["regularOpeningHours"]) }},
	{"containingPlaces", func(p domain.RawPlace, r *domain.Record) { expandContainingPlaces(r, p["containingPlaces"]) }},
	{"addressComponents", func(p domain.RawPlace, r *domain.Record) { expandAddressComponents(r, p["addressComponents"]) }},
	{"reviews", func(p domain.RawPlace, r *domain.Record) { expandReviews(r, p["reviews"]) }},
	// reviewSummary structure varies; keep it as JSON.
	{"reviewSummary", func(p domain.RawPlace, r *domain.Record) { r.Set("review_summary_json", asJSON(p["reviewSummary"])) }},
}

// knownFieldSet indexes knownFields for the fallback scan.
var knownFieldSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(knownFields))
	for _, h := range knownFields {
		set[h.field] = struct{}{}
	}
	return set
}()

// Flatten converts one raw place into a flat record according to the
// requested field mask. Known fields are expanded through the dispatch
// table; any other requested field is resolved by path, in mask order,
// and written under a column named after the path - structured values
// are serialised to JSON under a "_json"-suffixed column so nothing
// requested vanishes from the output.
func Flatten(place domain.RawPlace, mask domain.FieldMask) *domain.Record {
	rec := domain.NewRecord()

	requested := mask.PlaceFields()
	want := make(map[string]struct{}, len(requested))
	for _, f := range requested {
		want[f] = struct{}{}
	}

	for _, h := range knownFields {
		if _, ok := want[h.field]; ok {
			h.apply(place, rec)
		}
	}

	for _, f := range requested {
		if _, ok := knownFieldSet[f]; ok {
			continue
		}
		val, _, err := Resolve(place, f)
		if err != nil {
			// Unresolvable path spelling; nothing sensible to emit.
			continue
		}
		switch val.(type) {
		case map[string]any, []any:
			rec.Set(f+"_json", asJSON(val))
		default:
			rec.Set(f, val)
		}
	}

	return rec
}

// Flattener adapts Flatten to the driven port.
type Flattener struct{}

var _ driven.Flattener = (*Flattener)(nil)

// New creates a Flattener.
func New() *Flattener { return &Flattener{} }

// Flatten implements driven.Flattener.
func (*Flattener) Flatten(place domain.RawPlace, mask domain.FieldMask) *domain.Record {
	return Flatten(place, mask)
}
