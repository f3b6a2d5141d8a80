package main

import (
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rob"
	"rob/internal/observ"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the container read path against the tagged form",
	Long:  `Bench reads the same payload through Rob's pointer+flag representation and through the classic tagged borrowed-or-owned form, and reports per-phase timings`,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().Uint64("iters", 5_000_000, "read iterations per phase")
	benchCmd.Flags().Int("payload", 1024, "payload size in 8-byte words")
	benchCmd.Flags().Int("readers", runtime.NumCPU(), "goroutines for the parallel phase (0 disables)")
	benchCmd.Flags().String("profile", "", "TOML file with a [bench] section overriding the defaults")
}

// payload is the value type the benchmark reads through both containers.
type payload struct {
	words []uint64
}

func newPayload(n int) payload {
	p := payload{words: make([]uint64, n)}
	for i := range p.words {
		p.words[i] = uint64(i)*2654435761 + 1
	}
	return p
}

func clonePayload(p payload) payload {
	out := payload{words: make([]uint64, len(p.words))}
	copy(out.words, p.words)
	return out
}

// sink defeats dead-code elimination of the read loops.
var sink uint64

func runBench(cmd *cobra.Command, args []string) error {
	prof, err := benchSettings(cmd)
	if err != nil {
		return err
	}
	if prof.Iters == 0 {
		return fmt.Errorf("iters must be positive")
	}
	if prof.Payload <= 0 {
		return fmt.Errorf("payload must be positive")
	}
	mask, err := safecast.Conv[uint64](prof.Payload - 1)
	if err != nil {
		return fmt.Errorf("payload out of range: %w", err)
	}
	// Power-of-two payloads keep the index math branch-free inside the loop.
	if prof.Payload&(prof.Payload-1) != 0 {
		return fmt.Errorf("payload must be a power of two, got %d", prof.Payload)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timer := observ.NewTimer()

	src := newPayload(prof.Payload)

	// Borrowed reads, pointer+flag representation.
	borrowed := rob.FromRef(&src)
	idx := timer.Begin("rob/borrowed-read")
	for i := uint64(0); i < prof.Iters; i++ {
		sink ^= borrowed.Get().words[i&mask]
	}
	timer.End(idx, prof.Iters)

	// Owned reads, pointer+flag representation.
	owned := rob.FromValue(clonePayload(src))
	idx = timer.Begin("rob/owned-read")
	for i := uint64(0); i < prof.Iters; i++ {
		sink ^= owned.Get().words[i&mask]
	}
	timer.End(idx, prof.Iters)

	// Same loops through the tagged form; Value dispatches on the variant.
	cowBorrowed := rob.CowBorrowed(&src)
	idx = timer.Begin("cow/borrowed-read")
	for i := uint64(0); i < prof.Iters; i++ {
		sink ^= cowBorrowed.Value().words[i&mask]
	}
	timer.End(idx, prof.Iters)

	cowOwned := rob.CowOwned(clonePayload(src))
	idx = timer.Begin("cow/owned-read")
	for i := uint64(0); i < prof.Iters; i++ {
		sink ^= cowOwned.Value().words[i&mask]
	}
	timer.End(idx, prof.Iters)

	// Copy-on-write upgrade cost: borrow, upgrade, release, repeatedly.
	upgrades := prof.Iters / 1000
	if upgrades == 0 {
		upgrades = 1
	}
	idx = timer.Begin("rob/to-mut-upgrade")
	for i := uint64(0); i < upgrades; i++ {
		r := rob.FromRef(&src)
		m := rob.ToMutFunc(&r, clonePayload)
		m.words[0] = i
		sink ^= m.words[0]
		r.Release()
	}
	timer.End(idx, upgrades)

	if prof.Readers > 0 {
		idx = timer.Begin("rob/parallel-read")
		total, err := parallelReads(&src, prof.Iters, prof.Readers, mask)
		if err != nil {
			return err
		}
		timer.End(idx, total)
	}

	if !quiet {
		color.New(color.FgCyan, color.Bold).Printf("bench: %d words, %d iterations per phase\n", prof.Payload, prof.Iters)
	}
	fmt.Print(timer.Summary())
	return nil
}

// parallelReads drives readers goroutines over one shared borrowed container
// and returns the total number of reads performed.
func parallelReads(src *payload, iters uint64, readers int, mask uint64) (uint64, error) {
	shared := rob.FromRef(src)
	perReader := iters / safeUint64(readers)
	var g errgroup.Group
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			var local uint64
			for i := uint64(0); i < perReader; i++ {
				local ^= shared.Get().words[i&mask]
			}
			if local == 0xdeadbeef {
				return fmt.Errorf("improbable checksum")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return perReader * safeUint64(readers), nil
}

func safeUint64(n int) uint64 {
	v, err := safecast.Conv[uint64](n)
	if err != nil {
		return 1
	}
	return v
}
