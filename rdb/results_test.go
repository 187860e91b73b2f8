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
	"testing"

	"github.com/stretchr/testify/assert"

	"fnquery/results"
)

func TestWorkerResultRoundTrip(t *testing.T) {
	src := &results.FreqRanking{
		TotalPairs: 3,
		Scope:      "links",
		Freqs: results.FreqRankingItemList{
			{Frame: "Attack", Freq: 2, Percent: 66.667},
			{Frame: "Killing", Freq: 1, Percent: 33.333},
		},
	}
	wr, err := CreateWorkerResult(src)
	assert.NoError(t, err)
	assert.Equal(t, results.ResultTypeFreqs, wr.ResultType)
	assert.NotEmpty(t, wr.ID)

	decoded, err := DecodeValue[*results.FreqRanking](wr)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), decoded.TotalPairs)
	assert.Len(t, decoded.Freqs, 2)
	assert.Equal(t, "Attack", decoded.Freqs[0].Frame)
}

func TestWorkerResultDecodeError(t *testing.T) {
	src := &results.ErrorResult{Func: "lexicalUnits", Error: "document `x` not found"}
	wr, err := CreateWorkerResult(src)
	assert.NoError(t, err)
	assert.Equal(t, results.ResultTypeError, wr.ResultType)

	decoded := wr.DecodeError()
	assert.Equal(t, "lexicalUnits", decoded.Func)
	assert.Equal(t, "document `x` not found", decoded.Error)
}

func TestQuerySerialization(t *testing.T) {
	q := NewQuery("lexicalUnits", RankingArgs{
		DocID:    AnyDocument,
		Scope:    "links",
		MaxItems: 10,
	})
	data, err := q.ToJSON()
	assert.NoError(t, err)

	q2, err := DecodeQuery(data)
	assert.NoError(t, err)
	assert.Equal(t, "lexicalUnits", q2.Func)

	var args RankingArgs
	assert.NoError(t, json.Unmarshal(q2.Args, &args))
	assert.Equal(t, AnyDocument, args.DocID)
	assert.Equal(t, 10, args.MaxItems)
}
