package rbtree

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	randomSize = 2000
	seed       = 42
)

func inorderKeys[K any](tree *Tree[K]) []K {
	var keys []K
	tree.InorderTraversal(func(k K) {
		keys = append(keys, k)
	})
	return keys
}

func TestNewRejectsMissingComparator(t *testing.T) {
	_, err := New(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing comparator, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := NewOrdered[int]()
	if !tree.IsEmpty() || tree.Size() != 0 {
		t.Fatalf("expected new tree to be empty, size=%d", tree.Size())
	}
	if tree.Height() != -1 {
		t.Errorf("expected empty tree to have height -1, has %d", tree.Height())
	}
	if tree.BlackHeight() != 0 {
		t.Errorf("expected empty tree to have black-height 0, has %d", tree.BlackHeight())
	}
	if !tree.VerifyProperties() {
		t.Errorf("empty tree should satisfy red-black properties")
	}
	if tree.Root() != nil || tree.Find(1) != nil || tree.Search(1) {
		t.Errorf("empty tree should not contain anything")
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("empty tree should not have a minimum")
	}
	if len(tree.LevelOrderTraversal()) != 0 {
		t.Errorf("level order of empty tree should be empty")
	}
}

func TestScenarioThreeAscendingKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := NewOrdered[int]()
	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)
	root := tree.Root()
	if root.Key() != 20 || root.Color() != Black {
		t.Fatalf("expected black root 20, have %v", root)
	}
	if root.Left().Key() != 10 || root.Left().Color() != Red {
		t.Errorf("expected red left child 10, have %v", root.Left())
	}
	if root.Right().Key() != 30 || root.Right().Color() != Red {
		t.Errorf("expected red right child 30, have %v", root.Right())
	}
	if tree.Height() != 1 {
		t.Errorf("expected height 1, have %d", tree.Height())
	}
	if tree.BlackHeight() != 1 {
		t.Errorf("expected black-height 1, have %d", tree.BlackHeight())
	}
}

func TestScenarioRemoveRedLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := NewOrdered[int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(k)
	}
	if !tree.Remove(20) {
		t.Fatalf("expected Remove(20) to succeed")
	}
	if tree.Size() != 6 {
		t.Errorf("expected size 6, have %d", tree.Size())
	}
	if tree.Search(20) {
		t.Errorf("20 should be gone")
	}
	if keys := inorderKeys(tree); !slices.Equal(keys, []int{30, 40, 50, 60, 70, 80}) {
		t.Errorf("unexpected in-order keys %v", keys)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("tree invalid after removal: %v", err)
	}
}

func TestScenarioRemoveMissingKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := NewOrdered[int]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k)
	}
	before := tree.LevelOrderTraversal()
	if tree.Remove(999) {
		t.Fatalf("Remove(999) should report failure")
	}
	if err := tree.Delete(999); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if tree.Size() != 5 {
		t.Errorf("size changed to %d", tree.Size())
	}
	if after := tree.LevelOrderTraversal(); !slices.Equal(before, after) {
		t.Errorf("structure changed from %v to %v", before, after)
	}
}

func TestScenarioAscendingInsertions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := NewOrdered[int]()
	for k := 1; k <= 7; k++ {
		tree.Insert(k)
		if err := tree.Check(); err != nil {
			t.Fatalf("tree invalid after inserting %d: %v", k, err)
		}
	}
	if h := tree.Height(); float64(h) > 2*math.Log2(8) {
		t.Errorf("height %d exceeds red-black bound", h)
	}
	if levels := tree.LevelOrderTraversal(); !slices.Equal(levels, []int{2, 1, 4, 3, 6, 5, 7}) {
		t.Errorf("unexpected level order %v", levels)
	}
}

func TestDuplicateInsertIsIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := NewOrdered[string]()
	for _, k := range []string{"b", "a", "c"} {
		if !tree.Insert(k) {
			t.Fatalf("first insert of %q should succeed", k)
		}
	}
	before := inorderKeys(tree)
	if tree.Insert("a") {
		t.Errorf("duplicate insert should report false")
	}
	if tree.Size() != 3 {
		t.Errorf("duplicate changed size to %d", tree.Size())
	}
	if after := inorderKeys(tree); !slices.Equal(before, after) {
		t.Errorf("duplicate changed contents from %v to %v", before, after)
	}
}

func TestTraversalOrders(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(k)
	}
	var pre, post []int
	tree.PreorderTraversal(func(k int) { pre = append(pre, k) })
	tree.PostorderTraversal(func(k int) { post = append(post, k) })
	if !slices.Equal(pre, []int{50, 30, 20, 40, 70, 60, 80}) {
		t.Errorf("unexpected pre-order %v", pre)
	}
	if !slices.Equal(post, []int{20, 40, 30, 60, 80, 70, 50}) {
		t.Errorf("unexpected post-order %v", post)
	}
	if levels := tree.LevelOrderTraversal(); !slices.Equal(levels, []int{50, 30, 70, 20, 40, 60, 80}) {
		t.Errorf("unexpected level order %v", levels)
	}
	var firstThree []int
	for k := range tree.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, k)
	}
	if !slices.Equal(firstThree, []int{20, 30, 40}) {
		t.Errorf("iterator with early stop yielded %v", firstThree)
	}
	if min, _ := tree.Min(); min != 20 {
		t.Errorf("expected min 20, have %d", min)
	}
	if max, _ := tree.Max(); max != 80 {
		t.Errorf("expected max 80, have %d", max)
	}
}

func TestCustomComparator(t *testing.T) {
	tree, err := New(Config[string]{
		Compare: func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	tree.Insert("Banana")
	tree.Insert("apple")
	if tree.Insert("APPLE") {
		t.Errorf("keys comparing equal should be treated as duplicates")
	}
	if !tree.Search("BANANA") {
		t.Errorf("expected case-insensitive match")
	}
	if keys := inorderKeys(tree); !slices.Equal(keys, []string{"apple", "Banana"}) {
		t.Errorf("unexpected order %v", keys)
	}
}

func TestClear(t *testing.T) {
	tree := NewOrdered[int]()
	for k := range 20 {
		tree.Insert(k)
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Size() != 0 || tree.Search(3) {
		t.Fatalf("tree should be empty after Clear")
	}
	tree.Insert(3)
	if tree.Size() != 1 || !tree.VerifyProperties() {
		t.Errorf("tree not usable after Clear")
	}
	var none *Tree[int]
	none.Clear() // must not panic
	if none.Size() != 0 || !none.IsEmpty() {
		t.Errorf("nil tree should report being empty")
	}
}

func TestRandomOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	r := rand.New(rand.NewSource(seed))
	tree := NewOrdered[int]()
	present := map[int]bool{}
	for i := range randomSize * 4 {
		k := r.Intn(randomSize)
		if r.Intn(3) == 0 {
			removed := tree.Remove(k)
			if removed != present[k] {
				t.Fatalf("step %d: Remove(%d)=%v, but present=%v", i, k, removed, present[k])
			}
			delete(present, k)
		} else {
			inserted := tree.Insert(k)
			if inserted == present[k] {
				t.Fatalf("step %d: Insert(%d)=%v, but present=%v", i, k, inserted, present[k])
			}
			present[k] = true
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if tree.Size() != len(present) {
			t.Fatalf("step %d: size %d, expected %d", i, tree.Size(), len(present))
		}
	}
	keys := inorderKeys(tree)
	if len(keys) != tree.Size() {
		t.Errorf("traversal yields %d keys, size is %d", len(keys), tree.Size())
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not strictly increasing at %d: %v >= %v", i, keys[i-1], keys[i])
		}
	}
	for k := range randomSize {
		if tree.Search(k) != present[k] {
			t.Errorf("Search(%d)=%v, expected %v", k, tree.Search(k), present[k])
		}
	}
	bound := 2 * math.Log2(float64(tree.Size()+1))
	if float64(tree.Height()) > bound {
		t.Errorf("height %d exceeds bound %.2f", tree.Height(), bound)
	}
}

func TestDeleteAllInRandomOrder(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	tree := NewOrdered[int]()
	keys := r.Perm(randomSize)
	for _, k := range keys {
		tree.Insert(k)
	}
	r.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for i, k := range keys {
		if err := tree.Delete(k); err != nil {
			t.Fatalf("error deleting key %d: %v", k, err)
		}
		if tree.Search(k) {
			t.Fatalf("key %d still exists after deletion (iteration %d)", k, i)
		}
		if !tree.VerifyProperties() {
			t.Fatalf("properties violated after deleting %d (iteration %d): %v", k, i, tree.Check())
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("tree should be empty, has %d keys", tree.Size())
	}
}

func TestSequentialInsertions(t *testing.T) {
	tests := []struct {
		name string
		keys func(n int) []int
	}{
		{"Ascending", func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = i
			}
			return keys
		}},
		{"Descending", func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = n - i
			}
			return keys
		}},
		{"ZigZag", func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				if i%2 == 0 {
					keys[i] = i
				} else {
					keys[i] = n*2 - i
				}
			}
			return keys
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewOrdered[int]()
			keys := tt.keys(randomSize)
			for _, k := range keys {
				tree.Insert(k)
			}
			if err := tree.Check(); err != nil {
				t.Fatal(err)
			}
			if tree.Size() != len(keys) {
				t.Errorf("expected size %d, have %d", len(keys), tree.Size())
			}
			// removing every other key exercises all delete fix-up cases
			for i, k := range keys {
				if i%2 == 0 {
					tree.Remove(k)
				}
			}
			if err := tree.Check(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}
	tree.root.child[left].child[left] = &Node[int]{key: 0, color: Red, parent: tree.root.child[left]}
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected red-red violation to be detected, got %v", err)
	}
	tree = NewOrdered[int]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}
	tree.root.child[left].color = Black
	if tree.VerifyProperties() {
		t.Errorf("expected black-height violation to be detected")
	}
	tree.root.child[left].color = Red
	tree.root.color = Red
	if tree.VerifyProperties() {
		t.Errorf("expected red root to be detected")
	}
}

func TestRemovedNodeIsDetached(t *testing.T) {
	tree := NewOrdered[int]()
	for k := range 10 {
		tree.Insert(k)
	}
	n := tree.Find(3)
	if n == nil {
		t.Fatal("expected to find 3")
	}
	tree.Remove(3)
	if n.Left() != nil || n.Right() != nil {
		t.Errorf("removed node should not hold on to subtrees")
	}
	if tree.Find(3) != nil {
		t.Errorf("3 should be gone")
	}
}

func BenchmarkInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := NewOrdered[int]()
		for k := range 1000 {
			tree.Insert(k)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	tree := NewOrdered[int]()
	for k := range 10000 {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(i % 10000)
	}
}
