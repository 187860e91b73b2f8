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
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	tokenIDPatt = regexp.MustCompile(`^t(\d+)(?:\.c(\d+))?$`)
)

// Article represents the two-element `[type, form]` attribute
// of determiner annotations. Either element may be null.
type Article [2]*string

func (a *Article) UnmarshalJSON(data []byte) error {
	var tmp []*string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if len(tmp) != 2 {
		return fmt.Errorf("invalid article attribute: expected 2 elements, found %d", len(tmp))
	}
	a[0] = tmp[0]
	a[1] = tmp[1]
	return nil
}

// SentenceIndex is a 1-based sentence number. The source data
// is not consistent here - both a JSON number and a numeric
// string occur - so the decoder accepts either form.
type SentenceIndex int

func (si *SentenceIndex) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid sentence index: %s", data)
	}
	*si = SentenceIndex(v)
	return nil
}

// TokenAnnotation is a single annotated token. All the attributes
// are optional in the source data; Opt keeps the absent vs. null
// distinction intact for re-encoding.
type TokenAnnotation struct {
	Lemma         Opt[string]        `json:"lemma,omitzero"`
	POS           Opt[string]        `json:"POS,omitzero"`
	Article       Opt[Article]       `json:"article,omitzero"`
	Sentence      Opt[SentenceIndex] `json:"sentence,omitzero"`
	TargetPhrase  Opt[string]        `json:"target phrase,omitzero"`
	RefType       Opt[string]        `json:"reftype,omitzero"`
	Frame         Opt[string]        `json:"frame,omitzero"`
	FrameElements Opt[[]string]      `json:"fe's,omitzero"`
	Compound      Opt[string]        `json:"compound,omitzero"`
	Function      Opt[string]        `json:"function,omitzero"`
}

// HasFrame reports whether the token evokes a frame. An explicit
// null frame attribute does not count.
func (t *TokenAnnotation) HasFrame() bool {
	_, ok := t.Frame.Value()
	return ok
}

// TokenMap maps token ids (`t12`, `t12.c1`) to their annotations.
type TokenMap map[string]*TokenAnnotation

// SortedIDs returns the map's token ids in their natural order
// (see CompareTokenIDs).
func (tm TokenMap) SortedIDs() []string {
	ans := make([]string, 0, len(tm))
	for k := range tm {
		ans = append(ans, k)
	}
	sort.Slice(ans, func(i, j int) bool {
		return CompareTokenIDs(ans[i], ans[j]) < 0
	})
	return ans
}

// IsValidTokenID tests a token id against the `t<N>` or
// `t<N>.c<K>` format.
func IsValidTokenID(v string) bool {
	return tokenIDPatt.MatchString(v)
}

// CompareTokenIDs orders token ids numerically by their token
// number, with compound parts (`t<N>.c<K>`) sorting right after
// their base token and among themselves by the part number.
// Ids not matching the format compare as plain strings and sort
// after the valid ones.
func CompareTokenIDs(a, b string) int {
	ma := tokenIDPatt.FindStringSubmatch(a)
	mb := tokenIDPatt.FindStringSubmatch(b)
	if ma == nil && mb == nil {
		return strings.Compare(a, b)

	} else if ma == nil {
		return 1

	} else if mb == nil {
		return -1
	}
	na, _ := strconv.Atoi(ma[1])
	nb, _ := strconv.Atoi(mb[1])
	if na != nb {
		return na - nb
	}
	ca, cb := -1, -1
	if ma[2] != "" {
		ca, _ = strconv.Atoi(ma[2])
	}
	if mb[2] != "" {
		cb, _ = strconv.Atoi(mb[2])
	}
	return ca - cb
}

// Document is a single annotated event description. In the source
// data each document file contains exactly one object keyed by the
// document title; the title is attached during decoding and is not
// part of the nested object itself.
type Document struct {
	Title string `json:"-"`

	RawText            string              `json:"raw text"`
	HistoricalDistance int                 `json:"historical distance"`
	Links              map[string]TokenMap `json:"frames/links"`
	Subevents          TokenMap            `json:"subevents"`
	UnlinkedFEs        TokenMap            `json:"fe's without links"`
	ImplicatedFEs      []string            `json:"implicated fe's"`
}

// EntityIDs returns the ids of the document's coreference
// buckets in a stable (sorted) order.
func (doc *Document) EntityIDs() []string {
	ans := make([]string, 0, len(doc.Links))
	for k := range doc.Links {
		ans = append(ans, k)
	}
	sort.Strings(ans)
	return ans
}

// NumLinkedTokens counts the tokens of all the coreference
// buckets (a token annotated under two entities counts twice).
func (doc *Document) NumLinkedTokens() int {
	var ans int
	for _, tm := range doc.Links {
		ans += len(tm)
	}
	return ans
}

// NumAnnotatedTokens counts all the annotated tokens of the
// document including subevents and unlinked frame elements.
func (doc *Document) NumAnnotatedTokens() int {
	return doc.NumLinkedTokens() + len(doc.Subevents) + len(doc.UnlinkedFEs)
}

// DecodeDocumentFile decodes a single annotation file - an object
// with exactly one key (the document title).
func DecodeDocumentFile(data []byte) (*Document, error) {
	var tmp map[string]*Document
	if err := json.Unmarshal(data, &tmp); err != nil {
		return nil, err
	}
	if len(tmp) != 1 {
		return nil, fmt.Errorf("expected a single document entry, found %d", len(tmp))
	}
	for title, doc := range tmp {
		doc.Title = title
		return doc, nil
	}
	return nil, nil // cannot be reached
}

// EncodeDocumentFile is the inverse of DecodeDocumentFile.
func EncodeDocumentFile(doc *Document) ([]byte, error) {
	return json.Marshal(map[string]*Document{doc.Title: doc})
}
