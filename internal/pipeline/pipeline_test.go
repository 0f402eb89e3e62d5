package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"
)

func TestForEachPreservesInputOrder(t *testing.T) {
	var passwords []string
	for i := 0; i < 200; i++ {
		passwords = append(passwords, fmt.Sprintf("pw%03d", i))
	}
	eval := func(p string) []string {
		time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)
		return []string{p + "/a", p + "/b"}
	}
	var got []string
	visit := func(s string) error {
		got = append(got, s)
		return nil
	}
	if err := ForEach(context.Background(), Config{Threads: 8}, passwords, eval, visit); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2*len(passwords) {
		t.Fatalf("got %d outputs; want %d", len(got), 2*len(passwords))
	}
	for i, p := range passwords {
		if got[2*i] != p+"/a" || got[2*i+1] != p+"/b" {
			t.Fatalf("order broken at password %d: %q, %q", i, got[2*i], got[2*i+1])
		}
	}
}

func TestForEachSingleThread(t *testing.T) {
	var got []int
	err := ForEach(context.Background(), Config{Threads: 0}, []string{"a", "b"},
		func(p string) []int { return []int{len(p)} },
		func(n int) error { got = append(got, n); return nil })
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestForEachEmptyInput(t *testing.T) {
	calls := 0
	err := ForEach(context.Background(), Config{Threads: 4}, nil,
		func(p string) []int { return nil },
		func(int) error { calls++; return nil })
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Fatalf("visit called %d times on empty input", calls)
	}
}

func TestForEachVisitErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(context.Background(), Config{Threads: 4},
		[]string{"a", "b", "c", "d"},
		func(p string) []string { return []string{p} },
		func(string) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want boom", err)
	}
}

func TestForEachHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var passwords []string
	for i := 0; i < 10000; i++ {
		passwords = append(passwords, "pw")
	}
	eval := func(p string) []string {
		time.Sleep(time.Millisecond)
		return []string{p}
	}
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	err := ForEach(ctx, Config{Threads: 2}, passwords, eval, func(string) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v; want context.Canceled", err)
	}
}

func TestForEachProgress(t *testing.T) {
	var dones []int
	total := -1
	cfg := Config{
		Threads: 4,
		OnProgress: func(done, t int) {
			dones = append(dones, done)
			total = t
		},
	}
	passwords := []string{"a", "b", "c", "d", "e"}
	err := ForEach(context.Background(), cfg, passwords,
		func(p string) []string { return []string{p} },
		func(string) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if total != 5 {
		t.Fatalf("total = %d; want 5", total)
	}
	if len(dones) != 5 || dones[len(dones)-1] != 5 {
		t.Fatalf("dones = %v; want 1..5", dones)
	}
	for i, d := range dones {
		if d != i+1 {
			t.Fatalf("dones = %v; want strictly increasing from 1", dones)
		}
	}
}
