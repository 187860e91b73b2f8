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

package worker

import (
	"sync"

	"fnquery/corpus"
)

// corpusCache keeps the loaded corpus and entity directory for
// the lifetime of a worker. The data directory content is
// treated as immutable while the service runs.
type corpusCache struct {
	conf     *corpus.CorporaSetup
	lock     sync.Mutex
	corpus   *corpus.Corpus
	entities *corpus.EntityDirectory
}

func (cc *corpusCache) Get() (*corpus.Corpus, *corpus.EntityDirectory, error) {
	cc.lock.Lock()
	defer cc.lock.Unlock()
	if cc.corpus == nil {
		crp, err := corpus.LoadCorpus(cc.conf.DataDir)
		if err != nil {
			return nil, nil, err
		}
		entities, err := corpus.LoadEntityDirectory(cc.conf.GetStructuredDataPath())
		if err != nil {
			return nil, nil, err
		}
		cc.corpus = crp
		cc.entities = entities
	}
	return cc.corpus, cc.entities, nil
}

func newCorpusCache(conf *corpus.CorporaSetup) *corpusCache {
	return &corpusCache{conf: conf}
}
