// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Command wordfreq counts word frequencies over one or more text files
// using hashmap.Map, optionally exposing the live table's size, bucket
// count and load factor as Prometheus metrics while it runs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aristanetworks/glog"

	vglog "github.com/aristanetworks/verset/glog"
	"github.com/aristanetworks/verset/hashmap"
	"github.com/aristanetworks/verset/metrics"
	"github.com/aristanetworks/verset/monitor"
	"github.com/aristanetworks/verset/monotime"
)

func main() {
	configFlag := flag.String("config", "", "Path to a YAML config file (see config.go)")
	topFlag := flag.Int("top", -1, "Number of most frequent words to print (overrides the config file)")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		glog.Fatalf("Can't read config file %q: %v", *configFlag, err)
	}
	if *topFlag >= 0 {
		cfg.Top = *topFlag
	}

	counts := hashmap.NewStringMap[int]()
	if cfg.MaxLoad > 0 {
		counts.Table().MaxLoad = cfg.MaxLoad
	}
	if cfg.InitialCapacity > 0 && !counts.Table().Reserve(cfg.InitialCapacity) {
		glog.Fatal("failed to reserve initial capacity")
	}

	var reg *prometheus.Registry
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		reg.MustRegister(metrics.NewTableCollector("wordfreq", counts.Table()))
		go monitor.NewMonitorServer(cfg.MetricsAddr, reg, &vglog.Glog{}).Run()
		glog.Infof("serving /debug and /metrics on %s", cfg.MetricsAddr)
	}

	start := monotime.Now()
	args := flag.Args()
	if len(args) == 0 {
		if err := countWords(os.Stdin, counts); err != nil {
			glog.Fatal(err)
		}
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			glog.Fatalf("can't open %q: %v", path, err)
		}
		err = countWords(f, counts)
		f.Close()
		if err != nil {
			glog.Fatalf("error reading %q: %v", path, err)
		}
	}
	glog.V(1).Infof("counted %d distinct words in %s", counts.Size(), monotime.Since(start))

	printTop(counts, cfg.Top)
}

func countWords(r *os.File, counts *hashmap.Map[string, int]) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		w := normalize(scanner.Text())
		if w == "" {
			continue
		}
		n, _, ok := counts.GetOrInsert(w, 0)
		if !ok {
			return fmt.Errorf("failed to record word %q", w)
		}
		counts.Insert(w, n+1)
	}
	return scanner.Err()
}

// normalize lowercases w and strips any leading/trailing characters
// that aren't letters or digits, so "Word." and "word" count together.
func normalize(w string) string {
	w = strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(w)
}

type wordCount struct {
	word  string
	count int
}

func printTop(counts *hashmap.Map[string, int], top int) {
	tb := counts.Table()
	all := make([]wordCount, 0, tb.Size())
	for it := tb.First(); !it.IsEnd(); it = tb.Next(it) {
		all = append(all, wordCount{tb.Key(it), tb.Value(it)})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].word < all[j].word
	})
	if top >= 0 && top < len(all) {
		all = all[:top]
	}
	for _, wc := range all {
		fmt.Printf("%8d %s\n", wc.count, wc.word)
	}
}
