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

type CorplistItem struct {
	Title              string `json:"title"`
	HistoricalDistance int    `json:"historicalDistance"`
	NumTokens          int    `json:"numTokens"`
	NumEntities        int    `json:"numEntities"`
}

type CorplistResponse struct {
	Documents  []*CorplistItem `json:"documents"`
	ResultType ResultType      `json:"resultType"`
	Error      string          `json:"error,omitempty"`
}

// Corplist is an overview of all the documents a worker holds
// in its loaded corpus, in corpus load order.
type Corplist struct {
	Documents []*CorplistItem
	Error     error
}

func (res Corplist) Err() error {
	return res.Error
}

func (res Corplist) Type() ResultType {
	return ResultTypeCorplist
}

func (res *Corplist) MarshalJSON() ([]byte, error) {
	docs := res.Documents
	if docs == nil {
		docs = []*CorplistItem{}
	}
	return sonic.Marshal(CorplistResponse{
		Documents:  docs,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

func (res *Corplist) UnmarshalJSON(data []byte) error {
	var tmp CorplistResponse
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	res.Documents = tmp.Documents
	if tmp.Error != "" {
		res.Error = errors.New(tmp.Error)
	}
	return nil
}

// ----

type EntityOverview struct {
	ID string `json:"id"`

	// Label is a human readable name resolved from the
	// structured data file; empty in case of a lookup miss.
	Label string `json:"label,omitempty"`

	NumTokens int `json:"numTokens"`
}

type DocumentInfoResponse struct {
	Title              string            `json:"title"`
	HistoricalDistance int               `json:"historicalDistance"`
	Entities           []*EntityOverview `json:"entities"`
	NumSubevents       int               `json:"numSubevents"`
	NumUnlinkedFEs     int               `json:"numUnlinkedFEs"`
	ImplicatedFEs      []string          `json:"implicatedFEs"`
	ResultType         ResultType        `json:"resultType"`
	Error              string            `json:"error,omitempty"`
}

// DocumentInfo is a single document's overview.
type DocumentInfo struct {
	Title              string
	HistoricalDistance int
	Entities           []*EntityOverview
	NumSubevents       int
	NumUnlinkedFEs     int
	ImplicatedFEs      []string
	Error              error
}

func (res DocumentInfo) Err() error {
	return res.Error
}

func (res DocumentInfo) Type() ResultType {
	return ResultTypeDocumentInfo
}

func (res *DocumentInfo) MarshalJSON() ([]byte, error) {
	entities := res.Entities
	if entities == nil {
		entities = []*EntityOverview{}
	}
	implicated := res.ImplicatedFEs
	if implicated == nil {
		implicated = []string{}
	}
	return sonic.Marshal(DocumentInfoResponse{
		Title:              res.Title,
		HistoricalDistance: res.HistoricalDistance,
		Entities:           entities,
		NumSubevents:       res.NumSubevents,
		NumUnlinkedFEs:     res.NumUnlinkedFEs,
		ImplicatedFEs:      implicated,
		ResultType:         res.Type(),
		Error:              errToStr(res.Error),
	})
}

func (res *DocumentInfo) UnmarshalJSON(data []byte) error {
	var tmp DocumentInfoResponse
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	res.Title = tmp.Title
	res.HistoricalDistance = tmp.HistoricalDistance
	res.Entities = tmp.Entities
	res.NumSubevents = tmp.NumSubevents
	res.NumUnlinkedFEs = tmp.NumUnlinkedFEs
	res.ImplicatedFEs = tmp.ImplicatedFEs
	if tmp.Error != "" {
		res.Error = errors.New(tmp.Error)
	}
	return nil
}
