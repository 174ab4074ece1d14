// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package export writes the voting history table in downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/privacyvote/daogov/mockdata"
)

const (
	// HistoryFilename is the filename of a voting history download.
	HistoryFilename = "voting-history.csv"

	// ContentTypeCSV is the content type of a CSV download.
	ContentTypeCSV = "text/csv; charset=utf-8"

	// dateFormat is the format of the date column.
	dateFormat = "2006-01-02"
)

// historyHeader is the header row of the voting history CSV.
var historyHeader = []string{"Proposal", "Vote", "Date", "Status", "Result"}

// choiceLabel returns the display label of a vote choice.
func choiceLabel(c string) string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(c[:1]) + c[1:]
}

// WriteHistoryCSV writes the voting history as CSV, header first.
func WriteHistoryCSV(w io.Writer, entries []mockdata.HistoryEntry) error {
	cw := csv.NewWriter(w)
	err := cw.Write(historyHeader)
	if err != nil {
		return errors.Wrap(err, "header")
	}
	for i, e := range entries {
		err = cw.Write([]string{
			e.Proposal,
			choiceLabel(string(e.Vote)),
			e.Date.UTC().Format(dateFormat),
			e.Status,
			e.Result,
		})
		if err != nil {
			return errors.Wrapf(err, "row %v", i)
		}
	}
	cw.Flush()
	return cw.Error()
}

// HistoryCSV returns the voting history as CSV.
func HistoryCSV(entries []mockdata.HistoryEntry) ([]byte, error) {
	var b bytes.Buffer
	err := WriteHistoryCSV(&b, entries)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
