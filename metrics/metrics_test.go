// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/aristanetworks/verset/hashmap"
)

func TestTableCollectorReflectsLiveState(t *testing.T) {
	m := hashmap.NewIntMap[int, string]()
	for i := 0; i < 5; i++ {
		m.Insert(i, "x")
	}

	reg := prometheus.NewRegistry()
	c := NewTableCollector("test", m.Table())
	reg.MustRegister(c)

	if n := testutil.CollectAndCount(c); n != 4 {
		t.Fatalf("CollectAndCount() = %d, want 4", n)
	}
}
