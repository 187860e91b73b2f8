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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"fnquery/corpus"
	"fnquery/fcoll"
	"fnquery/ferror"
	"fnquery/rdb"
	"fnquery/results"
)

func mkTestWorker(t *testing.T) *Worker {
	t.Helper()
	dir := t.TempDir()
	doc1 := `{
		"First event": {
			"raw text": "one",
			"historical distance": 5,
			"frames/links": {
				"Q1": {
					"t1": {"lemma": "aanslag", "POS": "NOUN", "frame": "Attack"},
					"t2": {"lemma": "doden", "POS": "VERB", "frame": "Killing", "fe's": ["Killing@Victim"]}
				}
			},
			"implicated fe's": ["Attack@Assailant"]
		}
	}`
	doc2 := `{
		"Second event": {
			"raw text": "two",
			"historical distance": 12,
			"frames/links": {
				"Q1": {
					"t4": {"lemma": "aanslag", "POS": "NOUN", "frame": "Attack"}
				},
				"Q2": {
					"t8": {"lemma": "bom", "POS": "NOUN", "frame": "Attack"}
				}
			},
			"implicated fe's": ["Attack@Assailant", "Attack@Weapon"]
		}
	}`
	for name, content := range map[string]string{"doc1.json": doc1, "doc2.json": doc2} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return NewWorker("testworker", nil, nil, &corpus.CorporaSetup{DataDir: dir}, nil)
}

func TestCorplist(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.corplist(rdb.CorplistArgs{})
	assert.NoError(t, ans.Err())
	assert.Len(t, ans.Documents, 2)
	assert.Equal(t, "First event", ans.Documents[0].Title)
	assert.Equal(t, 2, ans.Documents[0].NumTokens)
	assert.Equal(t, 1, ans.Documents[0].NumEntities)
	assert.Equal(t, "Second event", ans.Documents[1].Title)
	assert.Equal(t, 2, ans.Documents[1].NumEntities)
}

func TestCorplistFilter(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.corplist(rdb.CorplistArgs{Filter: "second"})
	assert.NoError(t, ans.Err())
	assert.Len(t, ans.Documents, 1)
	assert.Equal(t, "Second event", ans.Documents[0].Title)
}

func TestDocInfo(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.docInfo(rdb.DocInfoArgs{DocID: "First event"})
	assert.NoError(t, ans.Err())
	assert.Equal(t, "First event", ans.Title)
	assert.Equal(t, 5, ans.HistoricalDistance)
	assert.Len(t, ans.Entities, 1)
	assert.Equal(t, "Q1", ans.Entities[0].ID)
	assert.Equal(t, 2, ans.Entities[0].NumTokens)
	assert.Equal(t, []string{"Attack@Assailant"}, ans.ImplicatedFEs)
}

func TestDocInfoNotFound(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.docInfo(rdb.DocInfoArgs{DocID: "unknown"})
	assert.Error(t, ans.Err())
	assert.True(t, isUserError(ans.Err()))
}

func TestLexicalUnitsWholeCorpus(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.lexicalUnits(rdb.RankingArgs{
		DocID:    rdb.AnyDocument,
		Scope:    string(fcoll.ScopeAllLinks),
		MaxItems: 20,
	})
	assert.NoError(t, ans.Err())
	assert.Equal(t, int64(4), ans.TotalPairs)
	attack := ans.FindItem("Attack")
	assert.NotNil(t, attack)
	assert.Equal(t, int64(3), attack.Freq)
	assert.Equal(t, 75.0, attack.Percent)
}

func TestLexicalUnitsSingleDocument(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.lexicalUnits(rdb.RankingArgs{
		DocID:    "Second event",
		Scope:    string(fcoll.ScopeAllLinks),
		MaxItems: 20,
	})
	assert.NoError(t, ans.Err())
	assert.Equal(t, int64(2), ans.TotalPairs)
	assert.Len(t, ans.Freqs, 1)
	assert.Equal(t, "Attack", ans.Freqs[0].Frame)
}

func TestLexicalUnitsInvalidScope(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.lexicalUnits(rdb.RankingArgs{
		DocID:    rdb.AnyDocument,
		Scope:    "everything",
		MaxItems: 20,
	})
	assert.Error(t, ans.Err())
	var inputErr ferror.InputError
	assert.ErrorAs(t, ans.Err(), &inputErr)
}

func TestLexicalUnitsFreqLimitKeepsPercentBase(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.lexicalUnits(rdb.RankingArgs{
		DocID:     rdb.AnyDocument,
		Scope:     string(fcoll.ScopeAllLinks),
		FreqLimit: 2,
		MaxItems:  20,
	})
	assert.NoError(t, ans.Err())
	assert.Len(t, ans.Freqs, 1)
	// percentage still relative to all 4 extracted pairs
	assert.Equal(t, 75.0, ans.Freqs[0].Percent)
}

func TestFrameElements(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.frameElements(rdb.RankingArgs{
		DocID:    rdb.AnyDocument,
		Scope:    string(fcoll.ScopeAllLinks),
		MaxItems: 20,
	})
	assert.NoError(t, ans.Err())
	assert.Equal(t, int64(1), ans.TotalPairs)
	assert.Equal(t, "Killing", ans.Freqs[0].Frame)
}

func TestLexicalUnitsVariety(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.lexicalUnitsVariety(rdb.RankingArgs{
		DocID:    rdb.AnyDocument,
		Scope:    string(fcoll.ScopeAllLinks),
		MaxItems: 20,
	})
	assert.NoError(t, ans.Err())
	// Attack is evoked by aanslag.NOUN and bom.NOUN
	assert.Equal(t, "Attack", ans.Items[0].Frame)
	assert.Equal(t, int64(2), ans.Items[0].NumLexicalUnits)
}

func TestImplicatedFEsWholeCorpus(t *testing.T) {
	w := mkTestWorker(t)
	ans := w.implicatedFEs(rdb.DocInfoArgs{DocID: rdb.AnyDocument})
	assert.NoError(t, ans.Err())
	assert.Equal(t, int64(3), ans.Total)
	assert.Equal(t, "Attack@Assailant", ans.Items[0].FrameElement)
	assert.Equal(t, int64(2), ans.Items[0].Freq)
}

func TestExtractLUParallelKeepsDocumentOrder(t *testing.T) {
	docs := make([]*corpus.Document, 0, 10)
	for i := 0; i < 10; i++ {
		tok := &corpus.TokenAnnotation{
			Frame: corpus.NewOpt(fmt.Sprintf("Frame%d", i)),
			Lemma: corpus.NewOpt(fmt.Sprintf("lemma%d", i)),
		}
		docs = append(docs, &corpus.Document{
			Title: fmt.Sprintf("doc %d", i),
			Links: map[string]corpus.TokenMap{"Q1": {"t1": tok}},
		})
	}
	pairs := extractLUParallel(docs, fcoll.Selection{Scope: fcoll.ScopeAllLinks})
	assert.Len(t, pairs, 10)
	for i, p := range pairs {
		assert.Equal(t, fmt.Sprintf("Frame%d", i), p.Frame)
	}
}

func TestFilterFreqItems(t *testing.T) {
	items := results.FreqRankingItemList{
		{Frame: "A", Freq: 10},
		{Frame: "B", Freq: 2},
		{Frame: "C", Freq: 1},
	}
	assert.Len(t, filterFreqItems(items, 1), 3)
	assert.Len(t, filterFreqItems(items, 2), 2)
	assert.Len(t, filterFreqItems(items, 11), 0)
}
