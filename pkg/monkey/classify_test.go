/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package monkey

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Population
	}{
		{"ух-ти ку ух-ти ау ух-ти", FirstPopulation},
		{"ой ну ну ай хо ух-ти хо", SecondPopulation},
		{"ух-ти ой", UnknownPopulation},
		{"", UnknownPopulation},
	}

	for _, test := range tests {
		if got := Classify(test.input, Options{}); got != test.want {
			t.Errorf("%q: wanted %s, got %s", test.input, test.want, got)
		}
	}
}

func TestClassifyUnknownAsEOF(t *testing.T) {
	if got := Classify("ух-ти банан", Options{}); got != UnknownPopulation {
		t.Errorf("wanted unknown, got %s", got)
	}

	if got := Classify("ух-ти банан", Options{UnknownAsEOF: true}); got != FirstPopulation {
		t.Errorf("wanted first, got %s", got)
	}
}

func TestClassifyReader(t *testing.T) {
	p, err := ClassifyReader(strings.NewReader("ой ну ай ух-ти"), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if p != SecondPopulation {
		t.Errorf("wanted second, got %s", p)
	}

	_, err = ClassifyReader(brokenReader{}, Options{})
	if err == nil {
		t.Error("wanted a read error")
	}
}

func TestPopulationMessages(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range []Population{FirstPopulation, SecondPopulation, UnknownPopulation} {
		if seen[p.Message()] {
			t.Errorf("duplicate message for %s", p)
		}
		seen[p.Message()] = true
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("broken")
}
