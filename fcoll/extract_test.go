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
	"testing"

	"github.com/stretchr/testify/assert"

	"fnquery/corpus"
)

func mkToken(frame, lemma, pos string) *corpus.TokenAnnotation {
	ans := &corpus.TokenAnnotation{}
	if frame != "" {
		ans.Frame = corpus.NewOpt(frame)
	}
	if lemma != "" {
		ans.Lemma = corpus.NewOpt(lemma)
	}
	if pos != "" {
		ans.POS = corpus.NewOpt(pos)
	}
	return ans
}

func TestLexicalUnitKey(t *testing.T) {
	lu, ok := LexicalUnitKey(mkToken("Attack", "aanslag", "NOUN"))
	assert.True(t, ok)
	assert.Equal(t, "aanslag.NOUN", lu)
}

func TestLexicalUnitKeyNullPOS(t *testing.T) {
	tok := mkToken("Attack", "aanslag", "")
	tok.POS = corpus.NullOpt[string]()
	lu, ok := LexicalUnitKey(tok)
	assert.True(t, ok)
	assert.Equal(t, "aanslag.X", lu)
}

func TestLexicalUnitKeyAbsentPOS(t *testing.T) {
	lu, ok := LexicalUnitKey(mkToken("Attack", "aanslag", ""))
	assert.True(t, ok)
	assert.Equal(t, "aanslag.X", lu)
}

func TestLexicalUnitKeyCompoundOverridesPOS(t *testing.T) {
	tok := mkToken("Emergency", "kamer", "ADJ")
	tok.Compound = corpus.NewOpt("meldkamer")
	lu, ok := LexicalUnitKey(tok)
	assert.True(t, ok)
	assert.Equal(t, "meldkamer.NOUN", lu)
}

func TestLexicalUnitKeySkipsFramelessToken(t *testing.T) {
	_, ok := LexicalUnitKey(mkToken("", "aanslag", "NOUN"))
	assert.False(t, ok)

	tok := mkToken("", "aanslag", "NOUN")
	tok.Frame = corpus.NullOpt[string]()
	_, ok = LexicalUnitKey(tok)
	assert.False(t, ok)
}

func TestLexicalUnitKeySkipsLemmalessToken(t *testing.T) {
	_, ok := LexicalUnitKey(mkToken("Attack", "", "NOUN"))
	assert.False(t, ok)
}

// ----

func mkTestDocument() *corpus.Document {
	feTok := &corpus.TokenAnnotation{
		FrameElements: corpus.NewOpt([]string{"Attack@Victim", "Attack@Place"}),
	}
	feTok.Frame = corpus.NullOpt[string]()
	return &corpus.Document{
		Title: "test document",
		Links: map[string]corpus.TokenMap{
			"Q2": {
				"t1": mkToken("Attack", "aanslag", "NOUN"),
				"t2": mkToken("Killing", "doden", "VERB"),
			},
			"Q1": {
				"t5": mkToken("Attack", "bom", "NOUN"),
				"t6": feTok,
			},
		},
		Subevents: corpus.TokenMap{
			"t9": mkToken("Explosion", "explosie", "NOUN"),
		},
		UnlinkedFEs: corpus.TokenMap{
			"t11": &corpus.TokenAnnotation{
				FrameElements: corpus.NewOpt([]string{"Death@Protagonist"}),
			},
		},
	}
}

func TestExtractLexicalUnitsAllLinks(t *testing.T) {
	docs := []*corpus.Document{mkTestDocument()}
	pairs := ExtractLexicalUnits(docs, Selection{Scope: ScopeAllLinks})
	// entities in sorted order (Q1 before Q2), token ids in natural order;
	// the t6 token has no frame so it yields nothing
	assert.Equal(
		t,
		[]LUPair{
			{Frame: "Attack", LexicalUnit: "bom.NOUN"},
			{Frame: "Attack", LexicalUnit: "aanslag.NOUN"},
			{Frame: "Killing", LexicalUnit: "doden.VERB"},
		},
		pairs,
	)
}

func TestExtractLexicalUnitsSingleEntity(t *testing.T) {
	docs := []*corpus.Document{mkTestDocument()}
	pairs := ExtractLexicalUnits(docs, Selection{Scope: ScopeEntity, Entity: "Q2"})
	assert.Equal(
		t,
		[]LUPair{
			{Frame: "Attack", LexicalUnit: "aanslag.NOUN"},
			{Frame: "Killing", LexicalUnit: "doden.VERB"},
		},
		pairs,
	)
}

func TestExtractLexicalUnitsUnknownEntity(t *testing.T) {
	docs := []*corpus.Document{mkTestDocument()}
	pairs := ExtractLexicalUnits(docs, Selection{Scope: ScopeEntity, Entity: "Q999"})
	assert.Empty(t, pairs)
}

func TestExtractLexicalUnitsSubevents(t *testing.T) {
	docs := []*corpus.Document{mkTestDocument()}
	pairs := ExtractLexicalUnits(docs, Selection{Scope: ScopeSubevents})
	assert.Equal(t, []LUPair{{Frame: "Explosion", LexicalUnit: "explosie.NOUN"}}, pairs)
}

func TestExtractFrameElements(t *testing.T) {
	docs := []*corpus.Document{mkTestDocument()}
	pairs := ExtractFrameElements(docs, Selection{Scope: ScopeAllLinks})
	// the null frame on t6 does not matter - the frame half comes
	// from the `Frame@Role` entries themselves
	assert.Equal(
		t,
		[]corpus.FrameElement{
			{Frame: "Attack", Role: "Victim"},
			{Frame: "Attack", Role: "Place"},
		},
		pairs,
	)
}

func TestExtractFrameElementsUnlinked(t *testing.T) {
	docs := []*corpus.Document{mkTestDocument()}
	pairs := ExtractFrameElements(docs, Selection{Scope: ScopeUnlinkedFEs})
	assert.Equal(t, []corpus.FrameElement{{Frame: "Death", Role: "Protagonist"}}, pairs)
}

func TestSelectionValidate(t *testing.T) {
	assert.NoError(t, Selection{Scope: ScopeAllLinks}.Validate())
	assert.NoError(t, Selection{Scope: ScopeEntity, Entity: "Q1"}.Validate())
	assert.Error(t, Selection{Scope: ScopeEntity}.Validate())
	assert.Error(t, Selection{Scope: ScopeSubevents, Entity: "Q1"}.Validate())
	assert.Error(t, Selection{Scope: "everything"}.Validate())
}
