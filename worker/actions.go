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

package worker

import (
	"fmt"
	"sync"

	"fnquery/corpus"
	"fnquery/fcoll"
	"fnquery/ferror"
	"fnquery/rdb"
	"fnquery/results"
)

// rankingSelection validates ranking args and resolves the
// affected documents. The rdb.AnyDocument id selects the whole
// corpus in load order.
func (w *Worker) rankingSelection(args rdb.RankingArgs) ([]*corpus.Document, fcoll.Selection, error) {
	sel := fcoll.Selection{Scope: fcoll.ScopeType(args.Scope), Entity: args.Entity}
	if err := sel.Validate(); err != nil {
		return nil, sel, ferror.InputError{Msg: err.Error()}
	}
	if args.MaxItems <= 0 {
		return nil, sel, ferror.InputError{Msg: "maxItems must be a positive number"}
	}
	docs, err := w.selectDocuments(args.DocID)
	if err != nil {
		return nil, sel, err
	}
	return docs, sel, nil
}

func (w *Worker) selectDocuments(docID string) ([]*corpus.Document, error) {
	crp, _, err := w.cache.Get()
	if err != nil {
		return nil, err
	}
	if docID == rdb.AnyDocument {
		ans := make([]*corpus.Document, 0, crp.Size())
		for _, doc := range crp.Documents() {
			ans = append(ans, doc)
		}
		return ans, nil
	}
	doc := crp.Get(docID)
	if doc == nil {
		return nil, ferror.NotFoundError{Msg: fmt.Sprintf("document `%s` not found", docID)}
	}
	return []*corpus.Document{doc}, nil
}

// extractLUParallel extracts lexical unit pairs per document
// concurrently and concatenates them in document order. Documents
// share no mutable state so this is safe; the pair order stays
// the same as with a sequential extraction.
func extractLUParallel(docs []*corpus.Document, sel fcoll.Selection) []fcoll.LUPair {
	if len(docs) == 1 {
		return fcoll.ExtractLexicalUnits(docs, sel)
	}
	chunks := make([][]fcoll.LUPair, len(docs))
	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc *corpus.Document) {
			defer wg.Done()
			chunks[i] = fcoll.ExtractLexicalUnits([]*corpus.Document{doc}, sel)
		}(i, doc)
	}
	wg.Wait()
	ans := make([]fcoll.LUPair, 0, 100)
	for _, chunk := range chunks {
		ans = append(ans, chunk...)
	}
	return ans
}

func extractFEParallel(docs []*corpus.Document, sel fcoll.Selection) []corpus.FrameElement {
	if len(docs) == 1 {
		return fcoll.ExtractFrameElements(docs, sel)
	}
	chunks := make([][]corpus.FrameElement, len(docs))
	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc *corpus.Document) {
			defer wg.Done()
			chunks[i] = fcoll.ExtractFrameElements([]*corpus.Document{doc}, sel)
		}(i, doc)
	}
	wg.Wait()
	ans := make([]corpus.FrameElement, 0, 100)
	for _, chunk := range chunks {
		ans = append(ans, chunk...)
	}
	return ans
}

// ----

func (w *Worker) corplist(args rdb.CorplistArgs) *results.Corplist {
	var ans results.Corplist
	crp, _, err := w.cache.Get()
	if err != nil {
		ans.Error = err
		return &ans
	}
	ans.Documents = make([]*results.CorplistItem, 0, crp.Size())
	for _, title := range crp.Titles(args.Filter) {
		doc := crp.Get(title)
		ans.Documents = append(ans.Documents, &results.CorplistItem{
			Title:              title,
			HistoricalDistance: doc.HistoricalDistance,
			NumTokens:          doc.NumAnnotatedTokens(),
			NumEntities:        len(doc.Links),
		})
	}
	return &ans
}

func (w *Worker) docInfo(args rdb.DocInfoArgs) *results.DocumentInfo {
	var ans results.DocumentInfo
	crp, entities, err := w.cache.Get()
	if err != nil {
		ans.Error = err
		return &ans
	}
	doc := crp.Get(args.DocID)
	if doc == nil {
		ans.Error = ferror.NotFoundError{Msg: fmt.Sprintf("document `%s` not found", args.DocID)}
		return &ans
	}
	ans.Title = doc.Title
	ans.HistoricalDistance = doc.HistoricalDistance
	ans.NumSubevents = len(doc.Subevents)
	ans.NumUnlinkedFEs = len(doc.UnlinkedFEs)
	ans.ImplicatedFEs = doc.ImplicatedFEs
	ans.Entities = make([]*results.EntityOverview, 0, len(doc.Links))
	for _, entityID := range doc.EntityIDs() {
		ans.Entities = append(ans.Entities, &results.EntityOverview{
			ID:        entityID,
			Label:     entities.Label(entityID),
			NumTokens: len(doc.Links[entityID]),
		})
	}
	return &ans
}

func (w *Worker) lexicalUnits(args rdb.RankingArgs) *results.FreqRanking {
	docs, sel, err := w.rankingSelection(args)
	if err != nil {
		return &results.FreqRanking{Error: err}
	}
	ans := fcoll.RankByFrequency(extractLUParallel(docs, sel))
	ans.Scope = args.Scope
	ans.Entity = args.Entity
	ans.Freqs = filterFreqItems(ans.Freqs, int64(args.FreqLimit)).Cut(args.MaxItems)
	return ans
}

func (w *Worker) frameElements(args rdb.RankingArgs) *results.FreqRanking {
	docs, sel, err := w.rankingSelection(args)
	if err != nil {
		return &results.FreqRanking{Error: err}
	}
	ans := fcoll.RankFEsByFrequency(extractFEParallel(docs, sel))
	ans.Scope = args.Scope
	ans.Entity = args.Entity
	ans.Freqs = filterFreqItems(ans.Freqs, int64(args.FreqLimit)).Cut(args.MaxItems)
	return ans
}

func (w *Worker) lexicalUnitsVariety(args rdb.RankingArgs) *results.VarietyRanking {
	docs, sel, err := w.rankingSelection(args)
	if err != nil {
		return &results.VarietyRanking{Error: err}
	}
	ans := fcoll.RankByVariety(extractLUParallel(docs, sel))
	ans.Scope = args.Scope
	ans.Entity = args.Entity
	ans.Items = ans.Items.Cut(args.MaxItems)
	return ans
}

func (w *Worker) polysemy(args rdb.RankingArgs) *results.PolysemyRanking {
	docs, sel, err := w.rankingSelection(args)
	if err != nil {
		return &results.PolysemyRanking{Error: err}
	}
	ans := fcoll.RankByPolysemy(extractLUParallel(docs, sel))
	ans.Scope = args.Scope
	ans.Entity = args.Entity
	if len(ans.Items) > args.MaxItems {
		ans.Items = ans.Items[:args.MaxItems]
	}
	return ans
}

func (w *Worker) implicatedFEs(args rdb.DocInfoArgs) *results.ImplicatedFEs {
	docs, err := w.selectDocuments(args.DocID)
	if err != nil {
		return &results.ImplicatedFEs{Error: err}
	}
	entries := make([]string, 0, 20)
	for _, doc := range docs {
		entries = append(entries, doc.ImplicatedFEs...)
	}
	return fcoll.TabulateImplicatedFEs(entries)
}

// filterFreqItems drops items below the required minimum
// frequency. Percentages are kept relative to the full
// extraction, not to the filtered remainder.
func filterFreqItems(items results.FreqRankingItemList, flimit int64) results.FreqRankingItemList {
	if flimit <= 1 {
		return items
	}
	ans := make(results.FreqRankingItemList, 0, len(items))
	for _, v := range items {
		if v.Freq >= flimit {
			ans = append(ans, v)
		}
	}
	return ans
}
