/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package source

import (
	"io"
	"os"

	"github.com/dburkart/descent/pkg/common/parse"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Read returns the contents of path, or of stdin when path is empty or "-".
func Read(path string) ([]byte, error) {
	log := viper.Get("logger").(zerolog.Logger)

	var b []byte
	var err error
	if path == "" || path == "-" {
		path = "<stdin>"
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	log.Debug().Str("file", path).Str("size", humanize.Bytes(uint64(len(b)))).Msg("read input")
	return b, nil
}

// Tracer logs every consumed token at trace level when token tracing is
// enabled, and is nil otherwise.
func Tracer() parse.TraceFunc {
	if !viper.GetBool("descent.trace") {
		return nil
	}

	log := viper.Get("logger").(zerolog.Logger)
	return func(tok parse.Token) {
		log.Trace().
			Str("type", tok.Type.ToString()).
			Int("start", tok.Location.Start).
			Msgf("Token: %s", tok.Lexeme)
	}
}
