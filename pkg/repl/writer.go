/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/dburkart/descent/pkg/common/parse"
	"github.com/dburkart/descent/pkg/validate"
	"github.com/olekukonko/tablewriter"
)

// Printable is anything that can be rendered as rows under a header.
type Printable interface {
	Headers() []string
	Values() [][]string
}

type OutputWriter interface {
	Write(v Printable) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

var OutputFormats = []string{"csv", "json", "text"}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return err
	}
	return wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) error {
	headers := []any{}
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(headers...)
	if err := table.Bulk(v.Values()); err != nil {
		return err
	}
	return table.Render()
}

// Write emits one JSON object per row, keyed by header.
func (w JSONWriter) Write(v Printable) error {
	headers := v.Headers()
	rows := []map[string]string{}
	for _, values := range v.Values() {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			}
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(w.w)
	return enc.Encode(rows)
}

// TokenList prints a token stream, one token per row.
type TokenList []parse.Token

func (l TokenList) Headers() []string {
	return []string{"type", "lexeme", "start", "end"}
}

func (l TokenList) Values() [][]string {
	values := make([][]string, 0, len(l))
	for _, tok := range l {
		values = append(values, []string{
			tok.Type.ToString(),
			tok.Lexeme,
			strconv.Itoa(tok.Location.Start),
			strconv.Itoa(tok.Location.End),
		})
	}
	return values
}

// Verdict prints the result of a parse session as a single row.
type Verdict validate.Result

func (v Verdict) Headers() []string {
	return []string{"grammar", "accepted", "message"}
}

func (v Verdict) Values() [][]string {
	r := validate.Result(v)
	return [][]string{{r.Grammar, strconv.FormatBool(r.Accepted), r.Message()}}
}
