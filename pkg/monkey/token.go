/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package monkey

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_AU
	TOK_KU
	TOK_UH_TI
	TOK_HO
	TOK_NU
	TOK_I_NU
	TOK_OI
	TOK_AI
)

var words = map[string]TokenType{
	"ау":    TOK_AU,
	"ку":    TOK_KU,
	"ух-ти": TOK_UH_TI,
	"хо":    TOK_HO,
	"ну":    TOK_NU,
	"и-ну":  TOK_I_NU,
	"ой":    TOK_OI,
	"ай":    TOK_AI,
}

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_AU:
		return "TOK_AU"
	case TOK_KU:
		return "TOK_KU"
	case TOK_UH_TI:
		return "TOK_UH_TI"
	case TOK_HO:
		return "TOK_HO"
	case TOK_NU:
		return "TOK_NU"
	case TOK_I_NU:
		return "TOK_I_NU"
	case TOK_OI:
		return "TOK_OI"
	case TOK_AI:
		return "TOK_AI"
	}
	return "TOK_UNKNOWN"
}
