// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"fnquery/results"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// CacheResult calls fn unless the answer for an identical query
// is already cached on the filesystem. The annotation corpus is
// read-only so a cached ranking never becomes stale within one
// deployment; the cache directory is expected to be wiped when
// the data directory content changes.
func (a *Adapter) CacheResult(fn func(Query) (<-chan *WorkerResult, error), query Query) (<-chan *WorkerResult, error) {
	if len(a.cachePath) == 0 {
		return fn(query)
	}

	hashKey := sha1.Sum(append([]byte(query.Func), query.Args...))
	path := filepath.Join(a.cachePath, query.Func+hex.EncodeToString(hashKey[:]))

	isFile, _ := fs.IsFile(path)
	if fs.PathExists(path) && isFile {
		ans := make(chan *WorkerResult)
		go func() {
			defer close(ans)
			result := new(WorkerResult)
			content, err := os.ReadFile(path)
			if err != nil {
				log.Err(err).Msgf("Error while reading cache file %s", path)
			}
			if err := json.Unmarshal(content, result); err != nil {
				log.Err(err).Msgf("Error while decoding cache file %s", path)
			}
			ans <- result
		}()
		return ans, nil
	}

	wr, err := fn(query)
	if err != nil {
		return wr, err
	}
	ans := make(chan *WorkerResult)
	go func(wr <-chan *WorkerResult) {
		defer close(ans)
		rawResult := <-wr
		if rawResult.ResultType != results.ResultTypeError {
			data, err := json.Marshal(rawResult)
			if err != nil {
				log.Err(err).Msgf("Error while encoding result for cache file %s", path)

			} else if err := os.WriteFile(path, data, 0644); err != nil {
				log.Err(err).Msgf("Error while writing cache file %s", path)
			}
		}
		ans <- rawResult
	}(wr)
	return ans, nil
}
