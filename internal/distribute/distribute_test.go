package distribute

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/quizzer/internal/quiz"
)

func pool(n int) []quiz.RawPair {
	pairs := make([]quiz.RawPair, n)
	for i := range pairs {
		pairs[i] = quiz.RawPair{
			Question: fmt.Sprintf("q%d", i),
			Answer:   fmt.Sprintf("a%d", i),
		}
	}
	return pairs
}

func TestPartitionEvenSplit(t *testing.T) {
	plan, err := Partition(100, 25, 0)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	if len(plan.UnitSizes) != 4 {
		t.Fatalf("units = %d, want 4", len(plan.UnitSizes))
	}
	for i, s := range plan.UnitSizes {
		if s != 25 {
			t.Errorf("unit %d size = %d, want 25", i, s)
		}
	}
	if len(plan.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", plan.Warnings)
	}
}

func TestPartitionUnevenSplit(t *testing.T) {
	plan, err := Partition(10, 50, 3)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	want := []int{4, 3, 3}
	if len(plan.UnitSizes) != len(want) {
		t.Fatalf("units = %v, want %v", plan.UnitSizes, want)
	}
	for i := range want {
		if plan.UnitSizes[i] != want[i] {
			t.Errorf("unit %d size = %d, want %d", i, plan.UnitSizes[i], want[i])
		}
	}
}

func TestPartitionInvariants(t *testing.T) {
	for total := 1; total <= 60; total += 7 {
		for unitCount := 1; unitCount <= 5; unitCount++ {
			plan, err := Partition(total, 10, unitCount)
			if err != nil {
				t.Fatalf("partition(%d, 10, %d): %v", total, unitCount, err)
			}
			if got := plan.Total(); got != total {
				t.Errorf("partition(%d, 10, %d) sum = %d, want %d", total, unitCount, got, total)
			}
			min, max := plan.UnitSizes[0], plan.UnitSizes[0]
			for _, s := range plan.UnitSizes {
				if s < min {
					min = s
				}
				if s > max {
					max = s
				}
			}
			if max-min > 1 {
				t.Errorf("partition(%d, 10, %d) sizes %v differ by more than 1", total, unitCount, plan.UnitSizes)
			}
		}
	}
}

func TestPartitionExplicitCountBelowMinimumWarns(t *testing.T) {
	// 100 questions at cap 25 need 4 quizzes; asking for 2 spreads all
	// 100 questions over 2 oversized units and warns.
	plan, err := Partition(100, 25, 2)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	if len(plan.Warnings) != 1 {
		t.Fatalf("warnings = %v, want 1", plan.Warnings)
	}
	if plan.Total() != 100 {
		t.Errorf("sum = %d, want 100 (nothing dropped)", plan.Total())
	}
	for i, s := range plan.UnitSizes {
		if s != 50 {
			t.Errorf("unit %d size = %d, want 50", i, s)
		}
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	_, err := Partition(0, 50, 0)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestDuplicatesFixedSizes(t *testing.T) {
	plan, err := Duplicates(100, 30, 3)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	if len(plan.UnitSizes) != 3 {
		t.Fatalf("units = %d, want 3", len(plan.UnitSizes))
	}
	for i, s := range plan.UnitSizes {
		if s != 30 {
			t.Errorf("unit %d size = %d, want 30", i, s)
		}
	}
}

func TestDuplicatesShrinksWhenPoolTooSmall(t *testing.T) {
	plan, err := Duplicates(8, 50, 2)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	if len(plan.Warnings) != 1 {
		t.Errorf("warnings = %v, want 1", plan.Warnings)
	}
	for i, s := range plan.UnitSizes {
		if s != 8 {
			t.Errorf("unit %d size = %d, want 8", i, s)
		}
	}
}

func TestDuplicatesDefaultsToOneUnit(t *testing.T) {
	plan, err := Duplicates(100, 50, 0)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	if len(plan.UnitSizes) != 1 {
		t.Errorf("units = %d, want 1", len(plan.UnitSizes))
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := pool(20)
	b := pool(20)
	Shuffle(a, rand.New(rand.NewSource(7)))
	Shuffle(b, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCutCoversPoolExactlyOnce(t *testing.T) {
	pairs := pool(10)
	Shuffle(pairs, rand.New(rand.NewSource(42)))

	plan, err := Partition(10, 50, 3)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	units, err := Cut(pairs, plan)
	if err != nil {
		t.Fatalf("cut: %v", err)
	}

	seen := make(map[string]int)
	for _, unit := range units {
		for _, p := range unit {
			seen[p.Question]++
		}
	}
	if len(seen) != 10 {
		t.Fatalf("distinct questions = %d, want 10", len(seen))
	}
	for q, n := range seen {
		if n != 1 {
			t.Errorf("question %s used %d times, want exactly once", q, n)
		}
	}
}

func TestCutRejectsOversizedPlan(t *testing.T) {
	if _, err := Cut(pool(3), Plan{UnitSizes: []int{2, 2}}); err == nil {
		t.Fatal("expected error when plan exceeds pool")
	}
}

func TestSampleUnitSizes(t *testing.T) {
	pairs := pool(10)
	plan, err := Duplicates(10, 4, 3)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	units := Sample(pairs, plan, rand.New(rand.NewSource(1)))
	if len(units) != 3 {
		t.Fatalf("units = %d, want 3", len(units))
	}
	for i, unit := range units {
		if len(unit) != 4 {
			t.Errorf("unit %d size = %d, want 4", i, len(unit))
		}
	}
}
