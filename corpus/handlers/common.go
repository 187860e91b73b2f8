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

package handlers

import (
	"errors"
	"net/http"

	"fnquery/fcoll"
	"fnquery/rdb"
	"fnquery/results"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	DefaultFreqLimit   = 1
	DefaultScope       = fcoll.ScopeAllLinks
	MaxRankingItems    = 20
	AbsMaxRankingItems = 1000
)

// DetermineRankingArgs collects the arguments shared by all the
// ranking actions:
// * `scope` selecting a token grouping (default `links`)
// * `entity` for the `entity` scope
// * `flimit` minimum frequency of an item to be included
// * `maxItems` maximum number of result items
func DetermineRankingArgs(ctx *gin.Context) (rdb.RankingArgs, bool) {
	var ans rdb.RankingArgs
	ans.DocID = ctx.Param("docId")

	scope := ctx.Query("scope")
	if scope == "" {
		scope = DefaultScope.String()
	}
	ans.Scope = scope
	ans.Entity = ctx.Query("entity")

	sel := fcoll.Selection{Scope: fcoll.ScopeType(ans.Scope), Entity: ans.Entity}
	if err := sel.Validate(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return ans, false
	}

	flimit, ok := unireq.GetURLIntArgOrFail(ctx, "flimit", DefaultFreqLimit)
	if !ok {
		return ans, false
	}
	ans.FreqLimit = flimit

	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", MaxRankingItems)
	if !ok {
		return ans, false
	}
	if maxItems <= 0 || maxItems > AbsMaxRankingItems {
		uniresp.RespondWithErrorJSON(
			ctx,
			errors.New("maxItems out of range"),
			http.StatusUnprocessableEntity,
		)
		return ans, false
	}
	ans.MaxItems = maxItems
	return ans, true
}

// TypedOrRespondError decodes a worker's answer into the expected
// result type. A worker-side error payload or an undecodable
// answer produces an error response and a false return value.
func TypedOrRespondError[T results.SerializableResult](ctx *gin.Context, w *rdb.WorkerResult) (T, bool) {
	var n T
	if w.ResultType == results.ResultTypeError {
		errResult := w.DecodeError()
		status := http.StatusInternalServerError
		if w.HasUserError {
			status = http.StatusBadRequest
		}
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("%s", errResult.Error),
			status,
		)
		return n, false
	}
	ans, err := rdb.DecodeValue[T](w)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return n, false
	}
	return ans, true
}

// HandleWorkerError tests a decoded result for an attached error
// and writes a matching error response.
func HandleWorkerError(ctx *gin.Context, w *rdb.WorkerResult, value results.SerializableResult) bool {
	if err := value.Err(); err != nil {
		status := http.StatusInternalServerError
		if w.HasUserError {
			status = http.StatusBadRequest
		}
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			status,
		)
		return false
	}
	return true
}
