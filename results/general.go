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

package results

import (
	"encoding/json"
	"errors"
	"math"
	"time"
)

const (
	ResultTypeCorplist      ResultType = "corplist"
	ResultTypeDocumentInfo  ResultType = "documentInfo"
	ResultTypeFreqs         ResultType = "freqs"
	ResultTypeVariety       ResultType = "variety"
	ResultTypePolysemy      ResultType = "polysemy"
	ResultTypeImplicatedFEs ResultType = "implicatedFEs"
	ResultTypeError         ResultType = "error"
)

type ResultType string

func (rt ResultType) String() string {
	return string(rt)
}

// SerializableResult is implemented by any value a worker can
// publish back to the API server.
type SerializableResult interface {
	Err() error
	Type() ResultType
}

func errToStr(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}

// ----------------

type ErrorResult struct {
	Func  string `json:"func"`
	Error string `json:"error"`
}

func (res ErrorResult) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res ErrorResult) Type() ResultType {
	return ResultTypeError
}

// ----------------

type JobLog struct {
	WorkerID string    `json:"workerId"`
	Func     string    `json:"func"`
	Begin    time.Time `json:"begin"`
	End      time.Time `json:"end"`
	Err      error     `json:"error"`
}

func (jl *JobLog) TimeSpent() time.Duration {
	return jl.End.Sub(jl.Begin)
}

func (jl *JobLog) ToJSON() (string, error) {
	ans, err := json.Marshal(jl)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

// NormRound performs a normalized rounding to
// the three decimal places so we can provide
// consistent rounding across all the results
func NormRound(val float64) float64 {
	return math.Round(val*1000) / 1000
}
