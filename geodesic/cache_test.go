package geodesic

import (
	"sync"
	"testing"
)

func TestCacheReturnsSameGrid(t *testing.T) {
	c := NewCache()
	a := c.Get(3)
	if a.Size != 3 {
		t.Fatalf("got size %d", a.Size)
	}
	if c.Get(3) != a {
		t.Fatal("second Get returned a different grid")
	}
	// Lower levels were built on the way.
	if c.grids[2] == nil || c.grids[0] == nil {
		t.Fatal("intermediate levels were not cached")
	}
	if err := c.Get(4).Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCacheMatchesSizeNGrid(t *testing.T) {
	c := NewCache()
	c.Get(1)
	got := c.Get(3)
	want := SizeNGrid(3)
	for i := range want.Edges {
		if got.Edges[i] != want.Edges[i] {
			t.Fatalf("edge %d differs", i)
		}
	}
}

func TestCacheConcurrentGet(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	res := make([]*Grid, 8)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i] = c.Get(2)
		}(i)
	}
	wg.Wait()
	for i := range res {
		if res[i] != res[0] {
			t.Fatal("concurrent Get built more than one grid")
		}
	}
	c.Clear()
	if c.Get(2) == res[0] {
		t.Fatal("Clear did not drop the grid")
	}
}
