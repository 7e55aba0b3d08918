package carton

import (
	"sort"
	"strings"

	"github.com/lucverdier/lotscan/internal/extract"
)

// packingMargin is added per axis so the object can actually be wrapped and
// wedged inside the carton.
const packingMargin = 2.0 // cm

// palletWeight is the summed-weight cutoff above which parcels ship on a
// pallet regardless of dimensions.
const palletWeight = 30.0 // kg

// Category is the object class inferred from the first lot description.
type Category string

const (
	CategoryPainting Category = "painting"
	CategoryTube     Category = "tube"
	CategoryBicycle  Category = "bicycle"
	CategorySuitcase Category = "suitcase"
	CategoryDefault  Category = "carton"
)

var categoryKeywords = []struct {
	cat   Category
	words []string
}{
	{CategoryPainting, []string{"tableau", "peinture", "toile", "huile sur", "aquarelle", "painting", "canvas", "cadre"}},
	{CategoryTube, []string{"affiche", "poster", "estampe", "carte ancienne", "plan ", "tapisserie roul", "tube"}},
	{CategoryBicycle, []string{"vélo", "velo", "bicyclette", "bicycle", "vtt"}},
	{CategorySuitcase, []string{"valise", "malle", "suitcase", "trunk", "vanity"}},
}

// Classify infers the packing category from a lot description. First match
// wins; anything unrecognized ships in a standard carton.
func Classify(description string) Category {
	d := strings.ToLower(description)
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(d, w) {
				return ck.cat
			}
		}
	}
	return CategoryDefault
}

// Recommendation is the selected container for one shipment.
type Recommendation struct {
	Ref      string   `json:"ref"`
	Category Category `json:"category"`
	Inner    Dims     `json:"inner"`
	PriceHT  float64  `json:"price_ht"`
	PriceTTC float64  `json:"price_ttc"`
}

// Recommend picks the smallest container for a shipment: the lots drive the
// category, the measured dimensions drive the fit. dims carries one entry
// per lot; weight is the summed shipment weight in kg. A nil return means
// no rule fits; callers treat that as "no recommendation", not an error.
func (c *Catalog) Recommend(lots []extract.Lot, dims []Dims, weight float64) *Recommendation {
	if len(dims) == 0 {
		return nil
	}
	need := aggregate(dims)

	if weight > palletWeight && c.Pallet != nil {
		return ruleRecommendation(*c.Pallet, CategoryDefault)
	}

	cat := CategoryDefault
	if len(lots) > 0 {
		cat = Classify(lots[0].Description)
	}

	switch cat {
	case CategoryPainting:
		if r := c.paintingFit(need); r != nil {
			return r
		}
		// oversized paintings fall through to the generic search
	case CategoryTube:
		if r := smallestFit(c.Tubes, need, cat); r != nil {
			return r
		}
	case CategorySuitcase:
		if r := smallestFit(c.Suitcases, need, cat); r != nil {
			return r
		}
	case CategoryBicycle:
		if c.Bicycle != nil && fits(need, *c.Bicycle) {
			return ruleRecommendation(*c.Bicycle, cat)
		}
		return nil
	}

	return smallestFit(c.Cartons, need, CategoryDefault)
}

// aggregate computes the shipment's bounding dimensions: each lot's dims
// sorted descending, then the componentwise max across lots.
func aggregate(dims []Dims) [3]float64 {
	var need [3]float64
	for _, d := range dims {
		s := sorted(d)
		for i := range need {
			if s[i] > need[i] {
				need[i] = s[i]
			}
		}
	}
	return need
}

func sorted(d Dims) [3]float64 {
	s := [3]float64{d.Length, d.Width, d.Height}
	sort.Sort(sort.Reverse(sort.Float64Slice(s[:])))
	return s
}

// fits reports whether the needed dimensions plus the packing margin fit
// inside the rule's inner box, comparing both descending-sorted so the
// object may be rotated freely. Telescoping cartons extend to HeightMax.
func fits(need [3]float64, r Rule) bool {
	inner := r.Inner
	if r.HeightMax > inner.Height {
		inner.Height = r.HeightMax
	}
	box := sorted(inner)
	for i := range need {
		if need[i]+packingMargin > box[i] {
			return false
		}
	}
	return true
}

// smallestFit returns the fitting rule with the least inner volume.
func smallestFit(rules []Rule, need [3]float64, cat Category) *Recommendation {
	var best *Rule
	for i := range rules {
		if !fits(need, rules[i]) {
			continue
		}
		if best == nil || rules[i].Inner.Volume() < best.Inner.Volume() {
			best = &rules[i]
		}
	}
	if best == nil {
		return nil
	}
	return ruleRecommendation(*best, cat)
}

// paintingFit matches the middle and smallest sorted dimensions as
// width/depth against the range table; the largest dimension is the
// painting's long side and only rules it fits under apply.
func (c *Catalog) paintingFit(need [3]float64) *Recommendation {
	width, depth := need[1], need[2]
	for _, p := range c.Paintings {
		if need[0] > p.WidthMax {
			continue
		}
		if width >= p.WidthMin && width <= p.WidthMax &&
			depth >= p.DepthMin && depth <= p.DepthMax {
			return &Recommendation{
				Ref:      p.Ref,
				Category: CategoryPainting,
				PriceHT:  p.PriceHT,
				PriceTTC: p.PriceTTC,
			}
		}
	}
	return nil
}

func ruleRecommendation(r Rule, cat Category) *Recommendation {
	return &Recommendation{
		Ref:      r.Ref,
		Category: cat,
		Inner:    r.Inner,
		PriceHT:  r.PriceHT,
		PriceTTC: r.PriceTTC,
	}
}
