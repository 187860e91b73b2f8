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

package results

import (
	"errors"

	"github.com/bytedance/sonic"
)

type FreqRankingItemList []*FreqRankingItem

// Cut makes the list at most maxItems long (i.e. in case
// the list is shorter, no error is triggered)
func (flist FreqRankingItemList) Cut(maxItems int) FreqRankingItemList {
	if len(flist) > maxItems {
		return flist[:maxItems]
	}
	return flist
}

// AlwaysAsList returns an empty list in case the original
// value is nil.
func (flist FreqRankingItemList) AlwaysAsList() []*FreqRankingItem {
	if flist != nil {
		return flist
	}
	return []*FreqRankingItem{}
}

type FreqRankingItem struct {
	Frame string `json:"frame"`
	Freq  int64  `json:"freq"`

	// Percent is the item's share of all the extracted pairs,
	// rounded to three decimal places (NormRound).
	Percent float64 `json:"percent"`
}

// ----

type FreqRankingResponse struct {
	TotalPairs int64               `json:"totalPairs"`
	Scope      string              `json:"scope"`
	Entity     string              `json:"entity,omitempty"`
	Freqs      FreqRankingItemList `json:"freqs"`
	ResultType ResultType          `json:"resultType"`
	Error      string              `json:"error,omitempty"`
}

// FreqRanking ranks semantic frames by the number of
// (frame, lexical unit) or (frame, frame element) pairs
// extracted from the selected token grouping.
type FreqRanking struct {

	// TotalPairs is the number of extracted pairs the
	// percentages are calculated against.
	TotalPairs int64

	Scope  string
	Entity string
	Freqs  FreqRankingItemList
	Error  error
}

func (res FreqRanking) Err() error {
	return res.Error
}

func (res FreqRanking) Type() ResultType {
	return ResultTypeFreqs
}

func (res *FreqRanking) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(FreqRankingResponse{
		TotalPairs: res.TotalPairs,
		Scope:      res.Scope,
		Entity:     res.Entity,
		Freqs:      res.Freqs.AlwaysAsList(),
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

func (res *FreqRanking) UnmarshalJSON(data []byte) error {
	var tmp FreqRankingResponse
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	res.TotalPairs = tmp.TotalPairs
	res.Scope = tmp.Scope
	res.Entity = tmp.Entity
	res.Freqs = tmp.Freqs
	if tmp.Error != "" {
		res.Error = errors.New(tmp.Error)
	}
	return nil
}

func (res *FreqRanking) FindItem(frame string) *FreqRankingItem {
	for _, v := range res.Freqs {
		if v.Frame == frame {
			return v
		}
	}
	return nil
}

// ----

type VarietyItemList []*VarietyItem

func (vlist VarietyItemList) Cut(maxItems int) VarietyItemList {
	if len(vlist) > maxItems {
		return vlist[:maxItems]
	}
	return vlist
}

func (vlist VarietyItemList) AlwaysAsList() []*VarietyItem {
	if vlist != nil {
		return vlist
	}
	return []*VarietyItem{}
}

type VarietyItem struct {
	Frame string `json:"frame"`

	// NumLexicalUnits counts distinct lexical unit keys
	// evoking the frame (set semantics, as opposed to
	// FreqRankingItem.Freq which counts all the pairs).
	NumLexicalUnits int64 `json:"numLexicalUnits"`
}

type VarietyRankingResponse struct {
	Scope      string          `json:"scope"`
	Entity     string          `json:"entity,omitempty"`
	Items      VarietyItemList `json:"items"`
	ResultType ResultType      `json:"resultType"`
	Error      string          `json:"error,omitempty"`
}

// VarietyRanking ranks semantic frames by their lexical variety,
// i.e. by the number of distinct lexical units evoking them.
type VarietyRanking struct {
	Scope  string
	Entity string
	Items  VarietyItemList
	Error  error
}

func (res VarietyRanking) Err() error {
	return res.Error
}

func (res VarietyRanking) Type() ResultType {
	return ResultTypeVariety
}

func (res *VarietyRanking) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(VarietyRankingResponse{
		Scope:      res.Scope,
		Entity:     res.Entity,
		Items:      res.Items.AlwaysAsList(),
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

func (res *VarietyRanking) UnmarshalJSON(data []byte) error {
	var tmp VarietyRankingResponse
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	res.Scope = tmp.Scope
	res.Entity = tmp.Entity
	res.Items = tmp.Items
	if tmp.Error != "" {
		res.Error = errors.New(tmp.Error)
	}
	return nil
}

// ----

type PolysemyItem struct {
	LexicalUnit string `json:"lexicalUnit"`

	// NumFrames counts distinct frames the lexical unit evokes.
	NumFrames int64 `json:"numFrames"`

	Frames []string `json:"frames"`
}

type PolysemyRankingResponse struct {
	Scope      string          `json:"scope"`
	Entity     string          `json:"entity,omitempty"`
	Items      []*PolysemyItem `json:"items"`
	ResultType ResultType      `json:"resultType"`
	Error      string          `json:"error,omitempty"`
}

// PolysemyRanking ranks lexical units by the number of distinct
// frames they evoke within the selected token grouping.
type PolysemyRanking struct {
	Scope  string
	Entity string
	Items  []*PolysemyItem
	Error  error
}

func (res PolysemyRanking) Err() error {
	return res.Error
}

func (res PolysemyRanking) Type() ResultType {
	return ResultTypePolysemy
}

func (res *PolysemyRanking) MarshalJSON() ([]byte, error) {
	items := res.Items
	if items == nil {
		items = []*PolysemyItem{}
	}
	return sonic.Marshal(PolysemyRankingResponse{
		Scope:      res.Scope,
		Entity:     res.Entity,
		Items:      items,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

func (res *PolysemyRanking) UnmarshalJSON(data []byte) error {
	var tmp PolysemyRankingResponse
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	res.Scope = tmp.Scope
	res.Entity = tmp.Entity
	res.Items = tmp.Items
	if tmp.Error != "" {
		res.Error = errors.New(tmp.Error)
	}
	return nil
}

// ----

type ImplicatedFEItem struct {
	FrameElement string  `json:"frameElement"`
	Freq         int64   `json:"freq"`
	Percent      float64 `json:"percent"`
}

type ImplicatedFEsResponse struct {
	Total      int64               `json:"total"`
	Items      []*ImplicatedFEItem `json:"items"`
	ResultType ResultType          `json:"resultType"`
	Error      string              `json:"error,omitempty"`
}

// ImplicatedFEs tabulates core roles never textually realized
// in a document (or a whole corpus).
type ImplicatedFEs struct {
	Total int64
	Items []*ImplicatedFEItem
	Error error
}

func (res ImplicatedFEs) Err() error {
	return res.Error
}

func (res ImplicatedFEs) Type() ResultType {
	return ResultTypeImplicatedFEs
}

func (res *ImplicatedFEs) MarshalJSON() ([]byte, error) {
	items := res.Items
	if items == nil {
		items = []*ImplicatedFEItem{}
	}
	return sonic.Marshal(ImplicatedFEsResponse{
		Total:      res.Total,
		Items:      items,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

func (res *ImplicatedFEs) UnmarshalJSON(data []byte) error {
	var tmp ImplicatedFEsResponse
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	res.Total = tmp.Total
	res.Items = tmp.Items
	if tmp.Error != "" {
		res.Error = errors.New(tmp.Error)
	}
	return nil
}
