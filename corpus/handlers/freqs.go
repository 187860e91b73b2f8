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

// LexicalUnits godoc
// @Summary      LexicalUnits
// @Description  Rank semantic frames by the number of extracted (frame, lexical unit) pairs.
// @Produce      json
// @Param        docId path string true "A title of a document or `any` for the whole corpus"
// @Param        scope query string false "token grouping (`links`, `entity`, `subevents`, `unlinked-fes`)" default(links)
// @Param        entity query string false "an entity id (required iff scope=entity)"
// @Param        flimit query int false "minimum frequency of result items to be included in the result set" minimum(0) default(1)
// @Param        maxItems query int false "maximum number of result items" default(20)
// @Success      200 {object} results.FreqRankingResponse
// @Router       /lexical-units/{docId} [get]
func (a *Actions) LexicalUnits(ctx *gin.Context) {
	args, ok := DetermineRankingArgs(ctx)
	if !ok {
		return
	}
	wait, ok := a.publishOrRespondError(
		ctx, rdb.NewQuery("lexicalUnits", args), args.DocID == rdb.AnyDocument)
	if !ok {
		return
	}
	rawResult := <-wait
	result, ok := TypedOrRespondError[*results.FreqRanking](ctx, rawResult)
	if !ok {
		return
	}
	if ok := HandleWorkerError(ctx, rawResult, result); !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// FrameElements godoc
// @Summary      FrameElements
// @Description  Rank semantic frames by (frame, frame element) pairs decoded from `Frame@Role` entries.
// @Produce      json
// @Param        docId path string true "A title of a document or `any` for the whole corpus"
// @Param        scope query string false "token grouping (`links`, `entity`, `subevents`, `unlinked-fes`)" default(links)
// @Param        entity query string false "an entity id (required iff scope=entity)"
// @Param        flimit query int false "minimum frequency of result items to be included in the result set" minimum(0) default(1)
// @Param        maxItems query int false "maximum number of result items" default(20)
// @Success      200 {object} results.FreqRankingResponse
// @Router       /frame-elements/{docId} [get]
func (a *Actions) FrameElements(ctx *gin.Context) {
	args, ok := DetermineRankingArgs(ctx)
	if !ok {
		return
	}
	wait, ok := a.publishOrRespondError(
		ctx, rdb.NewQuery("frameElements", args), args.DocID == rdb.AnyDocument)
	if !ok {
		return
	}
	rawResult := <-wait
	result, ok := TypedOrRespondError[*results.FreqRanking](ctx, rawResult)
	if !ok {
		return
	}
	if ok := HandleWorkerError(ctx, rawResult, result); !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}
