// Command generate-golden writes the arithmetic vectors used by the
// largeuint golden tests. Results are computed with math/big so the engine
// is checked against an independent implementation.
//
// Usage:
//
//	go run ./cmd/generate-golden -out internal/largeuint/testdata/golden.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/agbru/primecalc/internal/logging"
)

// operands stay below 2^96 so that every product fits the 200-bit layout.
var operands = []string{
	"0",
	"1",
	"2",
	"93",
	"255",
	"256",
	"1777",
	"32561",
	"65535",
	"3281475",
	"2558063199",
	"1934725265902145",
	"18446744073709551615",
	"18446744073709551616",
	"100000000000000000039",
	"999999999999999999999999999",
	"39614081257132168796771975167",
}

// Case is one golden vector. Values are decimal strings.
type Case struct {
	Op   string `json:"op"`
	A    string `json:"a"`
	B    string `json:"b,omitempty"`
	Want string `json:"want"`
	Rem  string `json:"rem,omitempty"`
}

// File is the layout of golden.json.
type File struct {
	Comment string `json:"comment"`
	Cases   []Case `json:"cases"`
}

func parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid operand %q", s)
	}
	return v, nil
}

// ceilSqrt returns the smallest r with r*r >= n.
func ceilSqrt(n *big.Int) *big.Int {
	r := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(r, r).Cmp(n) < 0 {
		r.Add(r, big.NewInt(1))
	}
	return r
}

func buildCases(values []string) ([]Case, error) {
	var cases []Case
	for _, as := range values {
		a, err := parse(as)
		if err != nil {
			return nil, err
		}
		for _, bs := range values {
			b, err := parse(bs)
			if err != nil {
				return nil, err
			}
			cases = append(cases,
				Case{Op: "add", A: as, B: bs, Want: new(big.Int).Add(a, b).String()},
				Case{Op: "mul", A: as, B: bs, Want: new(big.Int).Mul(a, b).String()},
			)
			if a.Cmp(b) >= 0 {
				cases = append(cases, Case{Op: "sub", A: as, B: bs, Want: new(big.Int).Sub(a, b).String()})
			}
			if b.Sign() != 0 {
				q, r := new(big.Int).QuoRem(a, b, new(big.Int))
				cases = append(cases, Case{Op: "div", A: as, B: bs, Want: q.String(), Rem: r.String()})
			}
		}
		cases = append(cases, Case{Op: "sqrt", A: as, Want: ceilSqrt(a).String()})
	}
	return cases, nil
}

func main() {
	out := flag.String("out", "internal/largeuint/testdata/golden.json", "output file")
	flag.Parse()
	logger := logging.NewStdLoggerAdapter(log.New(os.Stderr, "generate-golden: ", 0))

	cases, err := buildCases(operands)
	if err != nil {
		logger.Error("build cases", err)
		os.Exit(1)
	}
	data, err := json.MarshalIndent(File{
		Comment: "generated by cmd/generate-golden; do not edit",
		Cases:   cases,
	}, "", "  ")
	if err != nil {
		logger.Error("encode", err)
		os.Exit(1)
	}
	data = append(data, '\n')
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write", err, logging.String("path", *out))
		os.Exit(1)
	}
	logger.Info("golden vectors written", logging.Int("cases", len(cases)), logging.String("path", *out))
}
