// Command perft drives the move generator across a depth range from a FEN
// position (or a named reference position) and reports leaf-node counts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/clinaresl/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Kile-Asmussen/mintymacks-sub000/internal/board"
	"github.com/Kile-Asmussen/mintymacks-sub000/internal/logging"
	"github.com/Kile-Asmussen/mintymacks-sub000/internal/perft"
)

var (
	fen       = flag.String("fen", "startpos", "FEN to search, or one of: startpos, kiwipete, duplain")
	minDepth  = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth  = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	cacheBits = flag.Int("cache_bits", 0, "transposition cache size as 1<<cache_bits entries (0 disables)")
)

var known = map[string]string{
	"startpos": board.StartFEN,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

var out = message.NewPrinter(language.English)

func main() {
	flag.Parse()
	log := logging.GetLog()

	position := *fen
	if resolved, ok := known[position]; ok {
		position = resolved
	}

	pos, err := board.ParseFEN(position)
	if err != nil {
		log.Fatalf("cannot parse --fen %q: %v", *fen, err)
	}

	log.Infof("searching %q (%s)", *fen, position)

	tab, err := table.NewTable("||rrrrr||")
	if err != nil {
		log.Fatalf("cannot create results table: %v", err)
	}
	tab.AddDoubleRule()
	tab.AddRow("depth", "nodes", "captures", "en passant", "elapsed")
	tab.AddDoubleRule()

	for d := *minDepth; d <= *maxDepth; d++ {
		result := perft.Perft(pos, d, perft.Options{CacheBits: *cacheBits})
		tab.AddRow(
			fmt.Sprintf("%d", d),
			out.Sprintf("%d", result.Total),
			out.Sprintf("%d", result.Captures),
			out.Sprintf("%d", result.EnPassant),
			result.Elapsed.String(),
		)
		if *cacheBits > 0 {
			log.Debugf("depth %d: cache occupancy %d/%d", d, result.CacheUsed, result.CacheCap)
		}
	}
	tab.AddDoubleRule()

	fmt.Fprintln(os.Stdout, tab)
}
