// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FNQUERY.
//
//  FNQUERY is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FNQUERY is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FNQUERY.  If not, see <https://www.gnu.org/licenses/>.

package fcoll

import (
	"sort"

	"fnquery/corpus"
	"fnquery/results"
)

// counter accumulates per-key counts while keeping the
// first-seen order of keys. The order is what makes ranking
// ties deterministic.
type counter struct {
	counts map[string]int64
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int64)}
}

func (c *counter) incr(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns keys ordered by count (descending); equal
// counts keep their first-seen order.
func (c *counter) ranked() []string {
	ans := make([]string, len(c.order))
	copy(ans, c.order)
	sort.SliceStable(ans, func(i, j int) bool {
		return c.counts[ans[i]] > c.counts[ans[j]]
	})
	return ans
}

func percent(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return results.NormRound(100 * float64(count) / float64(total))
}

// RankByFrequency groups the extracted pairs by frame and ranks
// the frames by the number of pairs (not distinct lexical units).
// Each item also carries its percentage of all the pairs, rounded
// to three decimal places.
func RankByFrequency(pairs []LUPair) *results.FreqRanking {
	cnt := newCounter()
	for _, p := range pairs {
		cnt.incr(p.Frame)
	}
	total := int64(len(pairs))
	ans := &results.FreqRanking{
		TotalPairs: total,
		Freqs:      make(results.FreqRankingItemList, 0, len(cnt.order)),
	}
	for _, frame := range cnt.ranked() {
		ans.Freqs = append(ans.Freqs, &results.FreqRankingItem{
			Frame:   frame,
			Freq:    cnt.counts[frame],
			Percent: percent(cnt.counts[frame], total),
		})
	}
	return ans
}

// RankFEsByFrequency is the frame-element variant of
// RankByFrequency - pairs are grouped by the evoking frame
// extracted from the `Frame@Role` entries.
func RankFEsByFrequency(pairs []corpus.FrameElement) *results.FreqRanking {
	cnt := newCounter()
	for _, p := range pairs {
		cnt.incr(p.Frame)
	}
	total := int64(len(pairs))
	ans := &results.FreqRanking{
		TotalPairs: total,
		Freqs:      make(results.FreqRankingItemList, 0, len(cnt.order)),
	}
	for _, frame := range cnt.ranked() {
		ans.Freqs = append(ans.Freqs, &results.FreqRankingItem{
			Frame:   frame,
			Freq:    cnt.counts[frame],
			Percent: percent(cnt.counts[frame], total),
		})
	}
	return ans
}

// RankByVariety groups the pairs by frame but deduplicates the
// lexical unit keys within each group, ranking the frames by the
// number of distinct lexical units evoking them. For any frame
// the reported value is necessarily <= its RankByFrequency count.
func RankByVariety(pairs []LUPair) *results.VarietyRanking {
	cnt := newCounter()
	seen := stringSet{}
	for _, p := range pairs {
		if seen.add(p.Frame + "\x00" + p.LexicalUnit) {
			cnt.incr(p.Frame)
		}
	}
	ans := &results.VarietyRanking{
		Items: make(results.VarietyItemList, 0, len(cnt.order)),
	}
	for _, frame := range cnt.ranked() {
		ans.Items = append(ans.Items, &results.VarietyItem{
			Frame:           frame,
			NumLexicalUnits: cnt.counts[frame],
		})
	}
	return ans
}

// RankByPolysemy inverts the variety view: lexical units are
// ranked by the number of distinct frames they evoke.
func RankByPolysemy(pairs []LUPair) *results.PolysemyRanking {
	cnt := newCounter()
	frames := make(map[string][]string)
	seen := stringSet{}
	for _, p := range pairs {
		if seen.add(p.LexicalUnit + "\x00" + p.Frame) {
			cnt.incr(p.LexicalUnit)
			frames[p.LexicalUnit] = append(frames[p.LexicalUnit], p.Frame)
		}
	}
	ans := &results.PolysemyRanking{
		Items: make([]*results.PolysemyItem, 0, len(cnt.order)),
	}
	for _, lu := range cnt.ranked() {
		ans.Items = append(ans.Items, &results.PolysemyItem{
			LexicalUnit: lu,
			NumFrames:   cnt.counts[lu],
			Frames:      frames[lu],
		})
	}
	return ans
}

// TabulateImplicatedFEs produces a frequency tabulation of
// a document's (or corpus') implicated frame elements. Entries
// are counted verbatim - the `Frame@Role` strings are the keys.
func TabulateImplicatedFEs(entries []string) *results.ImplicatedFEs {
	cnt := newCounter()
	for _, v := range entries {
		cnt.incr(v)
	}
	total := int64(len(entries))
	ans := &results.ImplicatedFEs{
		Total: total,
		Items: make([]*results.ImplicatedFEItem, 0, len(cnt.order)),
	}
	for _, fe := range cnt.ranked() {
		ans.Items = append(ans.Items, &results.ImplicatedFEItem{
			FrameElement: fe,
			Freq:         cnt.counts[fe],
			Percent:      percent(cnt.counts[fe], total),
		})
	}
	return ans
}

// ----

type stringSet map[string]bool

// add returns true in case the value was not in the set yet.
func (cs stringSet) add(v string) bool {
	if cs[v] {
		return false
	}
	cs[v] = true
	return true
}
