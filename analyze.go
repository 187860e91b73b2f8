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

package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"fnquery/corpus"
	"fnquery/fcoll"
	"fnquery/rdb"
)

// runAnalyze loads a corpus directly (without Redis or workers
// involved) and prints one of the rankings as a plain table.
// It is meant for exploring a data directory from the command
// line and for smoke-testing new data.
func runAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	metric := fs.String("metric", "freq",
		"ranking to compute: freq, fes, variety, polysemy, implicated")
	scope := fs.String("scope", string(fcoll.ScopeAllLinks),
		"token grouping to draw from: links, entity, subevents, unlinked-fes")
	entity := fs.String("entity", "", "entity id (with -scope entity)")
	doc := fs.String("doc", rdb.AnyDocument,
		"restrict the analysis to a single document title")
	maxItems := fs.Int("max-items", 20, "max. number of table rows (0 = no limit)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s analyze [options] [data dir]\n", os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	sel := fcoll.Selection{Scope: fcoll.ScopeType(*scope), Entity: *entity}
	if err := sel.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid scope selection")
	}

	data, err := corpus.LoadCorpus(fs.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the corpus")
	}

	var docs []*corpus.Document
	if *doc == rdb.AnyDocument {
		docs = make([]*corpus.Document, 0, data.Size())
		for _, d := range data.Documents() {
			docs = append(docs, d)
		}

	} else {
		d := data.Get(*doc)
		if d == nil {
			log.Fatal().Str("doc", *doc).Msg("document not found")
		}
		docs = []*corpus.Document{d}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()
	switch *metric {
	case "freq":
		ranking := fcoll.RankByFrequency(fcoll.ExtractLexicalUnits(docs, sel))
		fmt.Fprintln(tw, "frame\tfreq\tpercent")
		for _, item := range ranking.Freqs.Cut(cutSize(*maxItems)) {
			fmt.Fprintf(tw, "%s\t%d\t%01.3f\n", item.Frame, item.Freq, item.Percent)
		}
	case "fes":
		ranking := fcoll.RankFEsByFrequency(fcoll.ExtractFrameElements(docs, sel))
		fmt.Fprintln(tw, "frame\tfreq\tpercent")
		for _, item := range ranking.Freqs.Cut(cutSize(*maxItems)) {
			fmt.Fprintf(tw, "%s\t%d\t%01.3f\n", item.Frame, item.Freq, item.Percent)
		}
	case "variety":
		ranking := fcoll.RankByVariety(fcoll.ExtractLexicalUnits(docs, sel))
		fmt.Fprintln(tw, "frame\tnum lexical units")
		for _, item := range ranking.Items.Cut(cutSize(*maxItems)) {
			fmt.Fprintf(tw, "%s\t%d\n", item.Frame, item.NumLexicalUnits)
		}
	case "polysemy":
		ranking := fcoll.RankByPolysemy(fcoll.ExtractLexicalUnits(docs, sel))
		fmt.Fprintln(tw, "lexical unit\tnum frames\tframes")
		for i, item := range ranking.Items {
			if i >= cutSize(*maxItems) {
				break
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\n", item.LexicalUnit, item.NumFrames, item.Frames)
		}
	case "implicated":
		entries := make([]string, 0, 50)
		for _, d := range docs {
			entries = append(entries, d.ImplicatedFEs...)
		}
		tab := fcoll.TabulateImplicatedFEs(entries)
		fmt.Fprintln(tw, "frame element\tfreq\tpercent")
		for i, item := range tab.Items {
			if i >= cutSize(*maxItems) {
				break
			}
			fmt.Fprintf(tw, "%s\t%d\t%01.3f\n", item.FrameElement, item.Freq, item.Percent)
		}
	default:
		log.Fatal().Str("metric", *metric).Msg("unknown metric")
	}
}

func cutSize(maxItems int) int {
	if maxItems <= 0 {
		return int(^uint(0) >> 1)
	}
	return maxItems
}
