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

// Package fcoll implements pair extraction and frequency/variety
// rankings over annotated documents. All the functions here are
// pure transformations of already loaded data - no I/O, no
// mutation of the input.
package fcoll

import (
	"fmt"

	"fnquery/corpus"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	ScopeAllLinks    ScopeType = "links"
	ScopeEntity      ScopeType = "entity"
	ScopeSubevents   ScopeType = "subevents"
	ScopeUnlinkedFEs ScopeType = "unlinked-fes"

	// compoundPOS: split compounds are annotated as nouns in this
	// corpus so their actual POS tag is deliberately ignored when
	// building a lexical unit key.
	compoundPOS = "NOUN"

	// unknownPOS is the coarse category used when a frame-evoking
	// token comes without a POS tag.
	unknownPOS = "X"
)

// ScopeType selects which token grouping of a document
// an extraction draws from.
type ScopeType string

func (st ScopeType) Validate() error {
	if !collections.SliceContains([]ScopeType{
		ScopeAllLinks, ScopeEntity, ScopeSubevents, ScopeUnlinkedFEs,
	}, st) {
		return fmt.Errorf("invalid scope: %s", st)
	}
	return nil
}

func (st ScopeType) String() string {
	return string(st)
}

// Selection specifies a token grouping: either one of the
// global scopes or a single entity's coreference bucket.
type Selection struct {
	Scope  ScopeType `json:"scope"`
	Entity string    `json:"entity,omitempty"`
}

func (sel Selection) Validate() error {
	if err := sel.Scope.Validate(); err != nil {
		return err
	}
	if sel.Scope == ScopeEntity && sel.Entity == "" {
		return fmt.Errorf("scope `%s` requires an entity id", ScopeEntity)
	}
	if sel.Scope != ScopeEntity && sel.Entity != "" {
		return fmt.Errorf("scope `%s` does not accept an entity id", sel.Scope)
	}
	return nil
}

// LUPair is a single (frame, lexical unit) observation.
type LUPair struct {
	Frame       string `json:"frame"`
	LexicalUnit string `json:"lexicalUnit"`
}

// LexicalUnitKey builds the `lemma.POS` identity used as the
// unit of counting throughout the rankings:
//  1. a token without a frame or without a lemma produces nothing,
//  2. a split-compound part is counted as the full compound lemma
//     with the POS normalized to NOUN,
//  3. a missing POS tag falls back to the `X` category.
func LexicalUnitKey(tok *corpus.TokenAnnotation) (string, bool) {
	lemma, hasLemma := tok.Lemma.Value()
	if !tok.HasFrame() || !hasLemma {
		return "", false
	}
	if compound, ok := tok.Compound.Value(); ok {
		return compound + "." + compoundPOS, true
	}
	pos, ok := tok.POS.Value()
	if !ok {
		return lemma + "." + unknownPOS, true
	}
	return lemma + "." + pos, true
}

// tokenMaps returns the document's token groupings matching
// the selection, in a deterministic order.
func tokenMaps(doc *corpus.Document, sel Selection) []corpus.TokenMap {
	switch sel.Scope {
	case ScopeAllLinks:
		ans := make([]corpus.TokenMap, 0, len(doc.Links))
		for _, entityID := range doc.EntityIDs() {
			ans = append(ans, doc.Links[entityID])
		}
		return ans
	case ScopeEntity:
		if tm, ok := doc.Links[sel.Entity]; ok {
			return []corpus.TokenMap{tm}
		}
		return nil
	case ScopeSubevents:
		return []corpus.TokenMap{doc.Subevents}
	case ScopeUnlinkedFEs:
		return []corpus.TokenMap{doc.UnlinkedFEs}
	}
	return nil
}

// ExtractLexicalUnits walks the selected token grouping of each
// document and produces the ordered (frame, lexical unit) pairs.
// Tokens without a frame or a lemma contribute nothing (they may
// still be picked up by ExtractFrameElements). The traversal
// order is deterministic: documents as given, entities sorted,
// token ids in their natural order.
func ExtractLexicalUnits(docs []*corpus.Document, sel Selection) []LUPair {
	ans := make([]LUPair, 0, 100)
	for _, doc := range docs {
		for _, tm := range tokenMaps(doc, sel) {
			for _, tokenID := range tm.SortedIDs() {
				tok := tm[tokenID]
				lu, ok := LexicalUnitKey(tok)
				if !ok {
					continue
				}
				frame, _ := tok.Frame.Value()
				ans = append(ans, LUPair{Frame: frame, LexicalUnit: lu})
			}
		}
	}
	return ans
}

// ExtractFrameElements is the frame-element counterpart of
// ExtractLexicalUnits. It is keyed on the token's FE list: even
// a token with a null frame contributes one pair per FE entry.
// The frame half of each pair comes from the `Frame@Role` string
// itself, never from the token's own frame attribute.
func ExtractFrameElements(docs []*corpus.Document, sel Selection) []corpus.FrameElement {
	ans := make([]corpus.FrameElement, 0, 100)
	for _, doc := range docs {
		for _, tm := range tokenMaps(doc, sel) {
			for _, tokenID := range tm.SortedIDs() {
				fes, ok := tm[tokenID].FrameElements.Value()
				if !ok {
					continue
				}
				for _, entry := range fes {
					fe, ok := corpus.ParseFrameElement(entry)
					if !ok {
						continue
					}
					ans = append(ans, fe)
				}
			}
		}
	}
	return ans
}
