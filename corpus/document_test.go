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

package corpus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDocument = `{
	"Aanslag op de Boston Marathon": {
		"raw text": "Op 15 april 2013 vonden twee explosies plaats.",
		"historical distance": 37,
		"frames/links": {
			"Q1065093": {
				"t5": {
					"lemma": "aanslag",
					"POS": "NOUN",
					"article": ["definite", "de"],
					"sentence": 1,
					"frame": "Attack",
					"fe's": ["Attack@Event"]
				},
				"t9.c1": {
					"lemma": "kamer",
					"POS": "ADJ",
					"sentence": "2",
					"frame": null,
					"compound": "meldkamer",
					"fe's": ["Emergency@Place"]
				}
			}
		},
		"subevents": {
			"t12": {
				"lemma": "explosie",
				"POS": null,
				"frame": "Explosion"
			}
		},
		"fe's without links": {},
		"implicated fe's": ["Attack@Assailant", "Attack@Assailant"]
	}
}`

func TestDecodeDocumentFile(t *testing.T) {
	doc, err := DecodeDocumentFile([]byte(sampleDocument))
	assert.NoError(t, err)
	assert.Equal(t, "Aanslag op de Boston Marathon", doc.Title)
	assert.Equal(t, 37, doc.HistoricalDistance)
	assert.Len(t, doc.Links, 1)
	assert.Len(t, doc.Links["Q1065093"], 2)
	assert.Len(t, doc.Subevents, 1)
	assert.Len(t, doc.UnlinkedFEs, 0)
	assert.Equal(t, []string{"Attack@Assailant", "Attack@Assailant"}, doc.ImplicatedFEs)
}

func TestDecodeDocumentFileTokenAttrs(t *testing.T) {
	doc, err := DecodeDocumentFile([]byte(sampleDocument))
	assert.NoError(t, err)
	tok := doc.Links["Q1065093"]["t5"]
	lemma, ok := tok.Lemma.Value()
	assert.True(t, ok)
	assert.Equal(t, "aanslag", lemma)
	article, ok := tok.Article.Value()
	assert.True(t, ok)
	assert.Equal(t, "definite", *article[0])
	assert.Equal(t, "de", *article[1])
	sent, ok := tok.Sentence.Value()
	assert.True(t, ok)
	assert.Equal(t, SentenceIndex(1), sent)
	assert.True(t, tok.HasFrame())
}

func TestDecodeDocumentFileNullVsAbsent(t *testing.T) {
	doc, err := DecodeDocumentFile([]byte(sampleDocument))
	assert.NoError(t, err)
	compoundTok := doc.Links["Q1065093"]["t9.c1"]
	// explicit null frame: defined but without a value
	assert.True(t, compoundTok.Frame.IsDefined())
	assert.False(t, compoundTok.HasFrame())
	// absent article: not even defined
	assert.False(t, compoundTok.Article.IsDefined())

	subTok := doc.Subevents["t12"]
	assert.True(t, subTok.POS.IsDefined())
	_, ok := subTok.POS.Value()
	assert.False(t, ok)
}

func TestSentenceIndexAcceptsNumericString(t *testing.T) {
	doc, err := DecodeDocumentFile([]byte(sampleDocument))
	assert.NoError(t, err)
	sent, ok := doc.Links["Q1065093"]["t9.c1"].Sentence.Value()
	assert.True(t, ok)
	assert.Equal(t, SentenceIndex(2), sent)
}

func TestDocumentNullabilityRoundTrip(t *testing.T) {
	doc, err := DecodeDocumentFile([]byte(sampleDocument))
	assert.NoError(t, err)
	encoded, err := EncodeDocumentFile(doc)
	assert.NoError(t, err)
	doc2, err := DecodeDocumentFile(encoded)
	assert.NoError(t, err)

	tok := doc2.Links["Q1065093"]["t9.c1"]
	assert.True(t, tok.Frame.IsDefined())
	assert.False(t, tok.HasFrame())
	assert.False(t, tok.Article.IsDefined())
	assert.False(t, tok.Function.IsDefined())
	assert.True(t, doc2.Subevents["t12"].POS.IsDefined())
}

func TestDecodeDocumentFileRejectsMultipleTitles(t *testing.T) {
	_, err := DecodeDocumentFile([]byte(`{"doc one": {}, "doc two": {}}`))
	assert.Error(t, err)
}

func TestArticleRejectsWrongArity(t *testing.T) {
	var tok TokenAnnotation
	err := json.Unmarshal([]byte(`{"article": ["definite"]}`), &tok)
	assert.Error(t, err)
}

func TestCompareTokenIDs(t *testing.T) {
	assert.True(t, CompareTokenIDs("t2", "t10") < 0)
	assert.True(t, CompareTokenIDs("t10", "t2") > 0)
	assert.Equal(t, 0, CompareTokenIDs("t7", "t7"))
	assert.True(t, CompareTokenIDs("t7", "t7.c1") < 0)
	assert.True(t, CompareTokenIDs("t7.c1", "t7.c2") < 0)
	assert.True(t, CompareTokenIDs("t7.c2", "t8") < 0)
	// invalid ids sort after valid ones
	assert.True(t, CompareTokenIDs("t7", "x1") < 0)
}

func TestSortedIDs(t *testing.T) {
	tm := TokenMap{
		"t10":   {},
		"t2":    {},
		"t2.c1": {},
		"t1":    {},
	}
	assert.Equal(t, []string{"t1", "t2", "t2.c1", "t10"}, tm.SortedIDs())
}

func TestIsValidTokenID(t *testing.T) {
	assert.True(t, IsValidTokenID("t0"))
	assert.True(t, IsValidTokenID("t15"))
	assert.True(t, IsValidTokenID("t15.c2"))
	assert.False(t, IsValidTokenID("15"))
	assert.False(t, IsValidTokenID("t15.c"))
	assert.False(t, IsValidTokenID("t15c2"))
	assert.False(t, IsValidTokenID(""))
}
