package picking

import "sort"

// HitSource supplies the entities under the pointer, nearest first.
type HitSource interface {
	AppendHits(dst []EntityID, pos Vec2) []EntityID
}

// HitFunc adapts a function to HitSource.
type HitFunc func(dst []EntityID, pos Vec2) []EntityID

func (f HitFunc) AppendHits(dst []EntityID, pos Vec2) []EntityID { return f(dst, pos) }

// StaticHits is a HitSource that reports the same list at every position.
type StaticHits []EntityID

func (h StaticHits) AppendHits(dst []EntityID, _ Vec2) []EntityID { return append(dst, h...) }

// Hit is one entity reported by a hit-testing backend.
type Hit struct {
	Entity EntityID
	// Depth is the distance from the viewer; smaller is nearer.
	Depth float64
}

// HitLayer is the output of one hit-testing backend. Layers with a higher
// Order are drawn on top of lower ones, so every hit in them is nearer.
type HitLayer struct {
	Order float64
	Hits  []Hit
}

type rankedHit struct {
	order, depth float64
	entity       EntityID
}

// MergeHits ranks the hits of several backends into one list appended to
// dst: highest Order first, then smallest Depth, ties kept in input order.
// An entity reported more than once keeps its best rank.
func MergeHits(dst []EntityID, layers ...HitLayer) []EntityID {
	var ranked []rankedHit
	for _, l := range layers {
		for _, h := range l.Hits {
			ranked = append(ranked, rankedHit{order: l.Order, depth: h.Depth, entity: h.Entity})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].order != ranked[j].order {
			return ranked[i].order > ranked[j].order
		}
		return ranked[i].depth < ranked[j].depth
	})
	start := len(dst)
next:
	for _, r := range ranked {
		for _, e := range dst[start:] {
			if e == r.entity {
				continue next
			}
		}
		dst = append(dst, r.entity)
	}
	return dst
}
