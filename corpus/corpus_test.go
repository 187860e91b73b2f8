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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	assert.NoError(t, err)
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "doc1.json", `{"First document": {"raw text": "a", "historical distance": 1}}`)
	writeTestFile(t, dir, "doc2.json", `{"Second document": {"raw text": "b", "historical distance": 2}}`)
	writeTestFile(t, dir, "notes.txt", "not an annotation file")

	c, err := LoadCorpus(dir)
	assert.NoError(t, err)
	assert.Equal(t, 2, c.Size())
	assert.True(t, c.Contains("First document"))
	assert.True(t, c.Contains("Second document"))
	assert.Nil(t, c.Get("Third document"))
}

func TestLoadCorpusSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "doc1.json", `{"First document": {"raw text": "a"}}`)
	writeTestFile(t, dir, "broken.json", `{"oops": `)

	c, err := LoadCorpus(dir)
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Size())
}

func TestLoadCorpusIgnoresStructuredData(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "doc1.json", `{"First document": {"raw text": "a"}}`)
	writeTestFile(t, dir, StructuredDataFile, `{"Q123": {"sem:incidentID": "boston marathon"}}`)

	c, err := LoadCorpus(dir)
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Size())
}

func TestLoadCorpusMissingDir(t *testing.T) {
	_, err := LoadCorpus("/path/does/not/exist")
	assert.Error(t, err)
}

func TestTitlesFilter(t *testing.T) {
	c := &Corpus{docs: make(map[string]*Document)}
	c.add(&Document{Title: "Aanslag op de Boston Marathon"})
	c.add(&Document{Title: "Aardbeving in Haïti"})
	c.add(&Document{Title: "Watersnoodramp"})

	assert.Equal(
		t,
		[]string{"Aanslag op de Boston Marathon", "Aardbeving in Haïti", "Watersnoodramp"},
		c.Titles(""),
	)
	assert.Equal(t, []string{"Aanslag op de Boston Marathon"}, c.Titles("boston"))
	assert.Equal(t, []string{}, c.Titles("tsunami"))
}

func TestDocumentsIterationOrder(t *testing.T) {
	c := &Corpus{docs: make(map[string]*Document)}
	c.add(&Document{Title: "zebra"})
	c.add(&Document{Title: "alpha"})
	c.add(&Document{Title: "mango"})

	titles := make([]string, 0, 3)
	for title := range c.Documents() {
		titles = append(titles, title)
	}
	assert.Equal(t, []string{"zebra", "alpha", "mango"}, titles)
}
