package main

//
// bio-longread aligns long reads (PacBio/Nanopore) against a de Bruijn
// graph using k-mer anchoring, cluster chaining, and banded-edit-distance
// gap closure.
//
// Example:
//
//    bio-longread -graph-fasta ref.fa -reads reads.fastq -out aligned.txt

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio/encoding/fasta"
	"github.com/grailbio/bio/encoding/fastq"
	"github.com/grailbio/bio/longread"
)

type longreadFlags struct {
	graphFASTA string
	readsPath  string
	outPath    string
	kIndex     int
	kGraph     int
	searchDist int
}

// loadLinearGraph builds a MemGraph in which every FASTA record becomes one
// edge (plus its reverse-complement conjugate), with fresh vertices at each
// end. This is a simplified stand-in for the real assembly graph, whose
// construction is owned by the caller (see spec §2): it lets bio-longread
// exercise the path-finding core end to end against a reference FASTA
// without depending on a separate de Bruijn graph builder. Parsing itself is
// delegated to encoding/fasta rather than hand-rolled here.
func loadLinearGraph(ctx context.Context, path string, kGraph int) (*longread.MemGraph, []longread.EdgeID) {
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Panicf("open %v: %v", path, err)
	}
	defer func() { _ = in.Close(ctx) }()

	fa, err := fasta.New(in.Reader(ctx))
	if err != nil {
		log.Panicf("parse %v: %v", path, err)
	}

	g := longread.NewMemGraph(kGraph)
	var edges []longread.EdgeID
	for _, name := range fa.SeqNames() {
		n, err := fa.Len(name)
		if err != nil {
			log.Panicf("len %v: %v", name, err)
		}
		seq, err := fa.Get(name, 0, n)
		if err != nil {
			log.Panicf("get %v: %v", name, err)
		}
		if seq == "" {
			continue
		}
		v1, v2 := g.NewVertex(), g.NewVertex()
		cv1, cv2 := g.NewVertex(), g.NewVertex()
		fwd, rev := g.AddEdgePair(v1, v2, seq, cv2, cv1)
		edges = append(edges, fwd, rev)
	}
	return g, edges
}

func processReads(cfg longread.Config, g *longread.MemGraph, idx *longread.KmerIndex, banned map[longread.Kmer]bool, reqCh <-chan fastq.Read, resCh chan<- longread.AlignedRead, statsCh chan<- longread.Stats) {
	w := longread.NewWorker(cfg, g, idx, banned, nil, nil)
	for r := range reqCh {
		resCh <- w.AlignRead(r.ID, r.Seq)
	}
	statsCh <- w.Stats
}

func main() {
	f := longreadFlags{}
	flag.StringVar(&f.graphFASTA, "graph-fasta", "", "FASTA file whose records become graph edges (simplified reference graph).")
	flag.StringVar(&f.readsPath, "reads", "", "FASTQ file of long reads to align.")
	flag.StringVar(&f.outPath, "out", "", "Output path for alignment results (default stdout).")
	flag.IntVar(&f.kIndex, "k-index", longread.DefaultConfig.KIndex, "K-mer index length.")
	flag.IntVar(&f.kGraph, "k-graph", longread.DefaultConfig.KGraph, "De Bruijn graph k.")
	flag.IntVar(&f.searchDist, "search-dist", 1000, "Extension search distance in bases. Not used: bio-longread aligns reads without running path extension.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	if f.graphFASTA == "" || f.readsPath == "" {
		log.Fatal("both -graph-fasta and -reads are required")
	}

	cfg := longread.DefaultConfig
	cfg.KIndex = f.kIndex
	cfg.KGraph = f.kGraph

	log.Printf("Loading graph from %s", f.graphFASTA)
	g, edges := loadLinearGraph(ctx, f.graphFASTA, cfg.KGraph)
	log.Printf("Loaded %d edges", len(edges))

	idx := longread.BuildKmerIndex(g, edges, cfg.KIndex)
	banned := longread.BannedKmers(cfg.KIndex)

	in, err := file.Open(ctx, f.readsPath)
	if err != nil {
		log.Panicf("open %v: %v", f.readsPath, err)
	}
	defer func() { _ = in.Close(ctx) }()

	var out *bufio.Writer
	if f.outPath == "" {
		out = bufio.NewWriter(os.Stdout)
	} else {
		outFile, err := file.Create(ctx, f.outPath)
		if err != nil {
			log.Panicf("create %v: %v", f.outPath, err)
		}
		defer func() { _ = outFile.Close(ctx) }()
		out = bufio.NewWriter(outFile.Writer(ctx))
	}
	defer func() { _ = out.Flush() }()

	reqCh := make(chan fastq.Read, 1024)
	resCh := make(chan longread.AlignedRead, 1024)
	statsCh := make(chan longread.Stats, runtime.NumCPU())

	var wg sync.WaitGroup
	parallelism := runtime.NumCPU()
	for i := 0; i < parallelism; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			processReads(cfg, g, idx, banned, reqCh, resCh, statsCh)
		}()
	}

	var collectWG sync.WaitGroup
	collectWG.Add(1)
	var results []longread.AlignedRead
	go func() {
		defer collectWG.Done()
		for r := range resCh {
			results = append(results, r)
		}
	}()

	sc := fastq.NewScanner(in.Reader(ctx), fastq.ID|fastq.Seq)
	var read fastq.Read
	nRead := 0
	for sc.Scan(&read) {
		reqCh <- read
		nRead++
	}
	close(reqCh)
	wg.Wait()
	close(resCh)
	collectWG.Wait()
	close(statsCh)

	var total longread.Stats
	for s := range statsCh {
		total = total.Merge(s)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ReadID < results[j].ReadID })
	for _, r := range results {
		walkStrs := make([]string, len(r.Walks))
		for i, w := range r.Walks {
			ids := make([]string, len(w))
			for j, e := range w {
				ids[j] = strconv.FormatInt(g.IntID(e), 10)
			}
			walkStrs[i] = strings.Join(ids, ",")
		}
		fmt.Fprintf(out, "%s\t%s\t%d diagnostic(s)\n", r.ReadID, strings.Join(walkStrs, ";"), len(r.Diagnostics))
	}

	log.Printf("Processed %d reads", nRead)
	log.Printf("Stats: %+v", total)
	log.Printf("All done")
}
