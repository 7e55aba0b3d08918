package extract

// Lot is one sale line recovered from the bordereau table. Number is a
// pointer because some auction houses never print one; a lot is valid as
// soon as it carries a description or a positive hammer price.
type Lot struct {
	Number      *string  `json:"number"`
	Description string   `json:"description"`
	HammerPrice *float64 `json:"hammer_price"`
}

// Result is the assembled bordereau. Every field is independently nullable
// and independently back-fillable by the text fallback.
type Result struct {
	SaleRoom        *string  `json:"sale_room"`
	SaleReference   *string  `json:"sale_reference"`
	BordereauNumber *string  `json:"bordereau_number"`
	SaleDate        *string  `json:"sale_date"` // YYYY-MM-DD
	Total           *float64 `json:"total"`
	Lots            []Lot    `json:"lots"`
}

// Valid reports whether a lot carries enough signal to keep. Rows with
// neither a description nor a positive price are table noise.
func (l Lot) Valid() bool {
	if l.Description != "" {
		return true
	}
	return l.HammerPrice != nil && *l.HammerPrice > 0
}

// Merge back-fills dst with fields from src, never overwriting anything dst
// already has. This is the orchestrator's core invariant: the fallback path
// only fills gaps.
func Merge(dst *Result, src Result) {
	if dst.SaleRoom == nil {
		dst.SaleRoom = src.SaleRoom
	}
	if dst.SaleReference == nil {
		dst.SaleReference = src.SaleReference
	}
	if dst.BordereauNumber == nil {
		dst.BordereauNumber = src.BordereauNumber
	}
	if dst.SaleDate == nil {
		dst.SaleDate = src.SaleDate
	}
	if dst.Total == nil {
		dst.Total = src.Total
	}
	if len(dst.Lots) == 0 {
		dst.Lots = src.Lots
	}
}

// DedupLots removes lots repeated across pages (page overlap during
// rasterization, or the same table re-read by the fallback). The key is
// the lot number plus the first 30 characters of the description.
func DedupLots(lots []Lot) []Lot {
	seen := make(map[string]struct{}, len(lots))
	out := lots[:0:0]
	for _, l := range lots {
		key := dedupKey(l)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}

func dedupKey(l Lot) string {
	num := ""
	if l.Number != nil {
		num = *l.Number
	}
	desc := []rune(l.Description)
	if len(desc) > 30 {
		desc = desc[:30]
	}
	return num + "|" + string(desc)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
