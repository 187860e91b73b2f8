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
	"net/http"

	"fnquery/corpus"
	"fnquery/rdb"
	"fnquery/results"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// Actions wires HTTP actions to the worker queue. The server
// itself never touches annotation data - every answer comes
// from a worker holding the corpus in memory.
type Actions struct {
	conf     *corpus.CorporaSetup
	radapter *rdb.Adapter
}

// publishOrRespondError enqueues a query, routing whole-corpus
// aggregations through the result cache (they are the only
// expensive operations FNQuery has).
func (a *Actions) publishOrRespondError(ctx *gin.Context, query rdb.Query, useCache bool) (<-chan *rdb.WorkerResult, bool) {
	var wait <-chan *rdb.WorkerResult
	var err error
	if useCache {
		wait, err = a.radapter.CacheResult(a.radapter.PublishQuery, query)

	} else {
		wait, err = a.radapter.PublishQuery(query)
	}
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return nil, false
	}
	return wait, true
}

// Corplist godoc
// @Summary      Corplist
// @Description  List the documents of the loaded annotation corpus.
// @Produce      json
// @Param        q query string false "a substring filter applied to document titles"
// @Success      200 {object} results.CorplistResponse
// @Router       /corplist [get]
func (a *Actions) Corplist(ctx *gin.Context) {
	wait, ok := a.publishOrRespondError(ctx, rdb.NewQuery(
		"corplist",
		rdb.CorplistArgs{Filter: ctx.Query("q")},
	), false)
	if !ok {
		return
	}
	rawResult := <-wait
	result, ok := TypedOrRespondError[*results.Corplist](ctx, rawResult)
	if !ok {
		return
	}
	if ok := HandleWorkerError(ctx, rawResult, result); !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// DocumentInfo godoc
// @Summary      DocumentInfo
// @Description  Show a single document's overview (entities, bucket sizes, implicated FEs).
// @Produce      json
// @Param        docId path string true "A title of a document"
// @Success      200 {object} results.DocumentInfoResponse
// @Router       /document/{docId} [get]
func (a *Actions) DocumentInfo(ctx *gin.Context) {
	wait, ok := a.publishOrRespondError(ctx, rdb.NewQuery(
		"docInfo",
		rdb.DocInfoArgs{DocID: ctx.Param("docId")},
	), false)
	if !ok {
		return
	}
	rawResult := <-wait
	result, ok := TypedOrRespondError[*results.DocumentInfo](ctx, rawResult)
	if !ok {
		return
	}
	if ok := HandleWorkerError(ctx, rawResult, result); !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// ImplicatedFEs godoc
// @Summary      ImplicatedFEs
// @Description  Tabulate core roles never textually realized in a document.
// @Produce      json
// @Param        docId path string true "A title of a document or `any` for the whole corpus"
// @Success      200 {object} results.ImplicatedFEsResponse
// @Router       /implicated-fes/{docId} [get]
func (a *Actions) ImplicatedFEs(ctx *gin.Context) {
	docID := ctx.Param("docId")
	wait, ok := a.publishOrRespondError(ctx, rdb.NewQuery(
		"implicatedFEs",
		rdb.DocInfoArgs{DocID: docID},
	), docID == rdb.AnyDocument)
	if !ok {
		return
	}
	rawResult := <-wait
	result, ok := TypedOrRespondError[*results.ImplicatedFEs](ctx, rawResult)
	if !ok {
		return
	}
	if ok := HandleWorkerError(ctx, rawResult, result); !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

func NewActions(
	conf *corpus.CorporaSetup,
	radapter *rdb.Adapter,
) *Actions {
	return &Actions{
		conf:     conf,
		radapter: radapter,
	}
}
