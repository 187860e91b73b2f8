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

package rdb

import (
	"encoding/json"
	"time"

	"fnquery/results"

	"github.com/google/uuid"
)

const (
	// AnyDocument is a reserved document id meaning
	// "aggregate over the whole loaded corpus".
	AnyDocument = "any"
)

// CorplistArgs selects documents for a corpus listing.
type CorplistArgs struct {
	Filter string `json:"filter"`
}

// DocInfoArgs identifies a single document.
type DocInfoArgs struct {
	DocID string `json:"docId"`
}

// RankingArgs parametrizes all the ranking functions.
type RankingArgs struct {

	// DocID is a document title or the AnyDocument value.
	DocID string `json:"docId"`

	Scope  string `json:"scope"`
	Entity string `json:"entity,omitempty"`

	// FreqLimit is the minimum metric value an item must reach
	// to be included in the answer.
	FreqLimit int `json:"freqLimit"`

	MaxItems int `json:"maxItems"`
}

// ----------------

// WorkerResult wraps a serialized result on its way from
// a worker back to the API server.
type WorkerResult struct {
	ID           string             `json:"id"`
	ResultType   results.ResultType `json:"resultType"`
	Value        json.RawMessage    `json:"value"`
	HasUserError bool               `json:"hasUserError"`
	ProcBegin    time.Time          `json:"procBegin"`
	ProcEnd      time.Time          `json:"procEnd"`
}

func (wr *WorkerResult) AttachValue(value results.SerializableResult) error {
	rawValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	wr.ResultType = value.Type()
	wr.Value = rawValue
	return nil
}

func CreateWorkerResult(value results.SerializableResult) (*WorkerResult, error) {
	ans := &WorkerResult{ID: uuid.New().String()}
	if err := ans.AttachValue(value); err != nil {
		return nil, err
	}
	return ans, nil
}

// DecodeValue deserializes a worker result's payload into the
// expected concrete result type.
func DecodeValue[T any](wr *WorkerResult) (T, error) {
	var ans T
	err := json.Unmarshal(wr.Value, &ans)
	return ans, err
}

// DecodeError extracts the error payload of an `error` typed
// worker result.
func (wr *WorkerResult) DecodeError() *results.ErrorResult {
	var ans results.ErrorResult
	if err := json.Unmarshal(wr.Value, &ans); err != nil {
		ans.Error = string(wr.Value)
	}
	return &ans
}
