package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ivanasen/galois-fields/errorcode"
	"github.com/ivanasen/galois-fields/gf2"
	"github.com/ivanasen/galois-fields/gf2pq"
	"github.com/ivanasen/galois-fields/polyutil"
)

// newLogger returns a console logger on stderr, or a no-op logger when
// diagnostics are off, so program output on stdout stays clean either
// way.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(output).With().Timestamp().Logger()
}

func readCandidates(in *bufio.Reader, log zerolog.Logger) ([]gf2.Poly64, bool) {
	fmt.Println("Polynomials are displayed in degree increasing order.")
	fmt.Println()

	fmt.Print("Enter degree of polynomials you want to use to generate the field: ")
	var degree int
	if _, err := fmt.Fscan(in, &degree); err != nil {
		fmt.Println("Invalid degree input!")
		log.Error().Err(err).Msg("reading degree failed")
		return nil, false
	}

	fmt.Print("Enter primitive polynomial candidates count: ")
	var count int
	if _, err := fmt.Fscan(in, &count); err != nil || count < 0 {
		fmt.Println("Invalid candidate count input!")
		log.Error().Err(err).Msg("reading candidate count failed")
		return nil, false
	}

	fmt.Println("Enter polynomials in binary format in increasing degree order separately on new lines:")
	candidates := make([]gf2.Poly64, 0, count)
	for i := 0; i < count; i++ {
		var s string
		if _, err := fmt.Fscan(in, &s); err != nil {
			fmt.Println("Invalid polynomial input!")
			log.Error().Err(err).Int("index", i).Msg("reading candidate failed")
			return nil, false
		}
		p, err := polyutil.ParseCandidate(s, degree)
		if err != nil {
			fmt.Println("Invalid polynomial input!")
			log.Error().Err(err).Str("candidate", s).Msg("rejected candidate")
			return nil, false
		}
		candidates = append(candidates, p)
	}

	return candidates, true
}

func printField(f *gf2pq.Field) {
	fmt.Printf("Field size: %d\n", f.Size())
	fmt.Println("Field elements:")
	fmt.Println("----------------------------------")
	for _, row := range polyutil.FormatElements(f.Elements()) {
		fmt.Println(row)
	}
	fmt.Println("----------------------------------")
}

func main() {
	verbose := flag.Bool("v", false, "log per-candidate diagnostics to stderr")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(int(errorcode.InvalidCommandLineArguments))
	}
	log := newLogger(*verbose)

	candidates, ok := readCandidates(bufio.NewReader(os.Stdin), log)
	if !ok {
		os.Exit(int(errorcode.InvalidPolynomialInput))
	}

	for _, p := range candidates {
		field, err := gf2pq.New(p)
		if err != nil {
			log.Info().Str("polynomial", p.Expand()).Err(err).Msg("candidate rejected")
			continue
		}

		log.Info().Str("polynomial", p.Expand()).Int("size", field.Size()).Msg("candidate accepted")
		fmt.Printf("Found primitive polynomial: %s\n", polyutil.FormatElement(p, p.Degree()+1))
		printField(field)
		os.Exit(int(errorcode.Success))
	}

	fmt.Println("None of the candidate polynomials are primitive.")
	os.Exit(int(errorcode.NoPrimitiveFound))
}
