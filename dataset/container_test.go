package dataset

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/tuannh982/dataset/store"
	"github.com/tuannh982/dataset/utils/collections"
)

type defaultStore = *store.Data[collections.Set[int]]

func collect[T any](r Reader[T]) []T {
	arr := make([]T, 0)
	for v := range r.Values() {
		arr = append(arr, v)
	}
	return arr
}

func TestContainerScenario(t *testing.T) {
	s := NewDataSet(0, 27, 37, 47)
	require.Equal(t, 4, s.Size())
	require.Equal(t, true, s.Has(27))

	s.Add(57)
	require.Equal(t, 5, s.Size())
	require.Equal(t, []int{0, 27, 37, 47, 57}, collect[int](s))

	visited := make([]int, 0)
	s.ForEach(func(v int) {
		visited = append(visited, v)
	})
	require.Equal(t, []int{0, 27, 37, 47, 57}, visited)

	require.Equal(t, true, s.Delete(0))
	require.Equal(t, 4, s.Size())

	s.Clear()
	require.Equal(t, 0, s.Size())
	require.Equal(t, false, s.Has(27))
}

func TestContainerAddDeleteHas(t *testing.T) {
	s := NewDataSet[string]()
	s.Add("a").Add("b").Add("a")
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Has("a"))

	require.Equal(t, true, s.Delete("a"))
	require.Equal(t, false, s.Has("a"))
	require.Equal(t, false, s.Delete("a"))
	require.Equal(t, 1, s.Size())
	require.Equal(t, false, s.Delete("zz"))
	require.Equal(t, 1, s.Size())
}

func TestContainerKeysEntries(t *testing.T) {
	s := NewDataSet("x", "y", "z")
	keys := make([]string, 0)
	for k := range s.Keys() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"x", "y", "z"}, keys)

	for k, v := range s.Entries() {
		require.Equal(t, k, v)
	}

	n := 0
	for range s.Values() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestContainerMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	s := NewDataSet[int]()
	ref := make(map[int]struct{})
	for i := 0; i < 2000; i++ {
		v := rnd.Intn(64)
		switch op := rnd.Intn(20); {
		case op == 0:
			s.Clear()
			ref = make(map[int]struct{})
		case op < 11:
			s.Add(v)
			ref[v] = struct{}{}
			require.Equal(t, true, s.Has(v))
		default:
			_, present := ref[v]
			require.Equal(t, present, s.Delete(v))
			delete(ref, v)
			require.Equal(t, false, s.Has(v))
		}
		require.Equal(t, len(ref), s.Size())
	}
	want := make([]int, 0, len(ref))
	for v := range ref {
		want = append(want, v)
	}
	if diff := cmp.Diff(want, collect[int](s), cmpopts.SortSlices(func(a, b int) bool { return a < b })); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerCustomCollection(t *testing.T) {
	c, err := New(Config[string, *store.Data[collections.Set[string]]]{
		InitialElements: []string{"Go", "GO", "rust"},
		CollectionFactory: func() collections.Set[string] {
			return collections.NewHashSet(strings.ToLower)
		},
	})
	require.Nil(t, err)
	require.Equal(t, 2, c.Size())
	require.Equal(t, true, c.Has("go"))

	// the snapshot keeps the collection's equality
	v := c.Value()
	require.Equal(t, true, v.Has("RUST"))
}

func TestContainerStoreFactoryReplacesSeed(t *testing.T) {
	c, err := New(Config[int, defaultStore]{
		InitialElements: []int{1, 2, 3},
		StoreFactory: func(collections.Set[int]) defaultStore {
			return store.NewData(collections.NewLinkedSet(7))
		},
	})
	require.Nil(t, err)
	require.Equal(t, 1, c.Size())
	require.Equal(t, true, c.Has(7))
	for _, v := range []int{1, 2, 3} {
		require.Equal(t, false, c.Has(v))
	}
	c.Add(8)
	require.Equal(t, []int{7, 8}, collect[int](c))
}

type taggedStore struct {
	*store.Data[collections.Set[int]]
}

func TestContainerCustomStore(t *testing.T) {
	_, err := New(Config[int, taggedStore]{})
	require.ErrorIs(t, err, ErrStoreFactoryRequired)

	c, err := New(Config[int, taggedStore]{
		InitialElements: []int{1, 2},
		StoreFactory: func(seed collections.Set[int]) taggedStore {
			d := store.NewData(seed)
			d.SetTag("owner", "scheduler")
			return taggedStore{Data: d}
		},
	})
	require.Nil(t, err)
	require.Equal(t, 2, c.Size())
	owner, ok := c.Data().Tag("owner")
	require.Equal(t, true, ok)
	require.Equal(t, "scheduler", owner)
	require.Equal(t, false, c.Data().Locked())
	require.Equal(t, "Metadata{locked=false, tags=[owner]}", fmt.Sprint(c.Data()))
}

func TestContainerDataHidesCollection(t *testing.T) {
	s := NewDataSet(1, 2)
	s.data.SetTag("owner", "alice")
	md := s.Data()
	_, ok := md.(store.Store[collections.Set[int]])
	require.Equal(t, false, ok)
	_, ok = md.(interface{ Value() collections.Set[int] })
	require.Equal(t, false, ok)
	_, ok = md.(defaultStore)
	require.Equal(t, false, ok)
	owner, _ := md.Tag("owner")
	require.Equal(t, "alice", owner)
	require.Equal(t, []string{"owner"}, md.TagKeys())
}

func TestContainerLockedStore(t *testing.T) {
	s := NewDataSet(1)
	s.data.Lock()
	require.Equal(t, true, s.Data().Locked())
	require.ErrorIs(t, s.data.SetValue(collections.NewLinkedSet(9)), store.ErrLocked)
	// the lock guards the slot, not the held collection
	s.Add(2)
	require.Equal(t, 2, s.Size())
}

func TestContainerUnsafeCollection(t *testing.T) {
	counter := &countingHooks{}
	s := NewDataSetWithHooks[int](counter, 1, 2)
	raw := s.UnsafeCollection()
	require.Nil(t, raw.Add(3))
	require.Equal(t, 3, s.Size())
	require.Equal(t, true, s.Has(3))
	require.Equal(t, 0, counter.adds)
}

func TestContainerString(t *testing.T) {
	s := NewDataSet(1, 2, 3)
	require.Equal(t, "DataSet[1 2 3]", s.String())
	require.Equal(t, "Container[1 2 3]", s.Container.String())
}

func TestContainerLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetLevel(log.DebugLevel)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	c, err := New(Config[int, defaultStore]{
		InitialElements: []int{1},
		Logger:          logger.WithField("set", "test"),
	})
	require.Nil(t, err)
	c.Add(2)
	c.Delete(5)
	c.Clear()
	out := buf.String()
	require.Contains(t, out, "container created, size=1")
	require.Contains(t, out, "add 2 inserted=true")
	require.Contains(t, out, "delete 5 success=false")
	require.Contains(t, out, "clear")
	require.Contains(t, out, "set=test")
}
