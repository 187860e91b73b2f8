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
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"fnquery/ferror"

	"github.com/rs/zerolog/log"
)

// Corpus is a set of annotated documents keyed by title.
// The order in which documents were loaded is preserved so
// listings and whole-corpus aggregations stay deterministic.
type Corpus struct {
	docs   map[string]*Document
	titles []string
}

func (c *Corpus) Get(title string) *Document {
	return c.docs[title]
}

func (c *Corpus) Contains(title string) bool {
	_, ok := c.docs[title]
	return ok
}

func (c *Corpus) Size() int {
	return len(c.titles)
}

// Titles returns document titles in load order. An optional
// substring filter is applied case-insensitively.
func (c *Corpus) Titles(substrFilter string) []string {
	if substrFilter == "" {
		return c.titles
	}
	ans := make([]string, 0, len(c.titles))
	for _, t := range c.titles {
		if strings.Contains(strings.ToLower(t), strings.ToLower(substrFilter)) {
			ans = append(ans, t)
		}
	}
	return ans
}

// Documents iterates the corpus in load order.
func (c *Corpus) Documents() iter.Seq2[string, *Document] {
	return func(yield func(string, *Document) bool) {
		for _, t := range c.titles {
			if !yield(t, c.docs[t]) {
				return
			}
		}
	}
}

func (c *Corpus) add(doc *Document) {
	if _, ok := c.docs[doc.Title]; !ok {
		c.titles = append(c.titles, doc.Title)
	}
	c.docs[doc.Title] = doc
}

// ----

func isAnnotationFile(name string) bool {
	return strings.HasSuffix(name, ".json") && name != StructuredDataFile
}

// ScanDocuments lazily iterates annotation files of a data
// directory, yielding a parsed document or an error per file.
// A file FNQuery fails to parse yields a ferror.ParseError and
// the scan continues with the remaining files.
func ScanDocuments(dataDir string) iter.Seq2[*Document, error] {
	return func(yield func(*Document, error) bool) {
		files, err := os.ReadDir(dataDir)
		if err != nil {
			yield(nil, fmt.Errorf("failed to scan data directory: %w", err))
			return
		}
		for _, f := range files {
			if f.IsDir() || !isAnnotationFile(f.Name()) {
				continue
			}
			fullPath := filepath.Join(dataDir, f.Name())
			rawData, err := os.ReadFile(fullPath)
			if err != nil {
				if !yield(nil, ferror.ParseError{Path: fullPath, Msg: err.Error()}) {
					return
				}
				continue
			}
			doc, err := DecodeDocumentFile(rawData)
			if err != nil {
				if !yield(nil, ferror.ParseError{Path: fullPath, Msg: err.Error()}) {
					return
				}
				continue
			}
			if !yield(doc, nil) {
				return
			}
		}
	}
}

// LoadCorpus reads all the annotation files of a data directory.
// Malformed files are logged and skipped; only a failure to access
// the directory itself is fatal to the load.
func LoadCorpus(dataDir string) (*Corpus, error) {
	ans := &Corpus{docs: make(map[string]*Document)}
	for doc, err := range ScanDocuments(dataDir) {
		if err != nil {
			var parseErr ferror.ParseError
			if errors.As(err, &parseErr) {
				log.Error().
					Str("file", parseErr.Path).
					Msg("skipping malformed annotation file")
				continue
			}
			return nil, err
		}
		ans.add(doc)
	}
	log.Info().
		Str("dataDir", dataDir).
		Int("numDocuments", ans.Size()).
		Msg("loaded annotation corpus")
	return ans, nil
}
