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
	"fnquery/rdb"
	"fnquery/results"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// LexicalUnitsVariety godoc
// @Summary      LexicalUnitsVariety
// @Description  Rank semantic frames by the number of distinct lexical units evoking them.
// @Produce      json
// @Param        docId path string true "A title of a document or `any` for the whole corpus"
// @Param        scope query string false "token grouping (`links`, `entity`, `subevents`, `unlinked-fes`)" default(links)
// @Param        entity query string false "an entity id (required iff scope=entity)"
// @Param        maxItems query int false "maximum number of result items" default(20)
// @Success      200 {object} results.VarietyRankingResponse
// @Router       /lexical-units-variety/{docId} [get]
func (a *Actions) LexicalUnitsVariety(ctx *gin.Context) {
	args, ok := DetermineRankingArgs(ctx)
	if !ok {
		return
	}
	wait, ok := a.publishOrRespondError(
		ctx, rdb.NewQuery("lexicalUnitsVariety", args), args.DocID == rdb.AnyDocument)
	if !ok {
		return
	}
	rawResult := <-wait
	result, ok := TypedOrRespondError[*results.VarietyRanking](ctx, rawResult)
	if !ok {
		return
	}
	if ok := HandleWorkerError(ctx, rawResult, result); !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// Polysemy godoc
// @Summary      Polysemy
// @Description  Rank lexical units by the number of distinct frames they evoke.
// @Produce      json
// @Param        docId path string true "A title of a document or `any` for the whole corpus"
// @Param        scope query string false "token grouping (`links`, `entity`, `subevents`, `unlinked-fes`)" default(links)
// @Param        entity query string false "an entity id (required iff scope=entity)"
// @Param        maxItems query int false "maximum number of result items" default(20)
// @Success      200 {object} results.PolysemyRankingResponse
// @Router       /polysemy/{docId} [get]
func (a *Actions) Polysemy(ctx *gin.Context) {
	args, ok := DetermineRankingArgs(ctx)
	if !ok {
		return
	}
	wait, ok := a.publishOrRespondError(
		ctx, rdb.NewQuery("polysemy", args), args.DocID == rdb.AnyDocument)
	if !ok {
		return
	}
	rawResult := <-wait
	result, ok := TypedOrRespondError[*results.PolysemyRanking](ctx, rawResult)
	if !ok {
		return
	}
	if ok := HandleWorkerError(ctx, rawResult, result); !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}
