package query

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id    int
	name  string
	value float64
}

func itemID(it item) int        { return it.id }
func itemName(it item) string   { return it.name }
func itemValue(it item) float64 { return it.value }

func ids(items []item) (out []int) {
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

func TestPaginate(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name string
		page int
		size int
		want []int
	}{
		{name: "first page", page: 1, size: 3, want: []int{1, 2, 3}},
		{name: "last partial page", page: 3, size: 3, want: []int{7}},
		{name: "past the end", page: 4, size: 3, want: []int{}},
		{name: "page zero", page: 0, size: 3, want: []int{}},
		{name: "negative page", page: -1, size: 3, want: []int{}},
		{name: "zero size", page: 1, size: 0, want: []int{}},
		{name: "size larger than sequence", page: 1, size: 50, want: seq},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(seq, tt.page, tt.size))
		})
	}
}

func TestPaginate_ReconstructsSequence(t *testing.T) {
	for n := 0; n <= 23; n++ {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i
		}
		for size := 1; size <= 7; size++ {
			pages := (n + size - 1) / size
			var got []int
			for page := 1; page <= pages; page++ {
				got = append(got, Paginate(seq, page, size)...)
			}
			if n == 0 {
				assert.Empty(t, got)
				continue
			}
			assert.Equal(t, seq, got, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_ReturnsCopy(t *testing.T) {
	seq := []int{1, 2, 3}
	page := Paginate(seq, 1, 2)
	page[0] = 99
	assert.Equal(t, 1, seq[0])
}

func TestSortNumber_ReverseIsExact(t *testing.T) {
	items := []item{
		{id: 1, value: 5},
		{id: 2, value: 1},
		{id: 3, value: 5},
		{id: 4, value: 0},
		{id: 5, value: 1},
	}

	asc := SortNumber(items, itemValue, itemID, Ascending)
	desc := SortNumber(items, itemValue, itemID, Descending)

	assert.Equal(t, []int{4, 2, 5, 1, 3}, ids(asc))
	reversed := slices.Clone(desc)
	slices.Reverse(reversed)
	assert.Equal(t, asc, reversed)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(items), "input must not be reordered")
}

func TestSortText_CaseInsensitive(t *testing.T) {
	items := []item{
		{id: 1, name: "zomato"},
		{id: 2, name: "Acme"},
		{id: 3, name: "beta"},
		{id: 4, name: "ACME"},
	}

	asc := SortText(items, itemName, itemID, Ascending)
	assert.Equal(t, []int{2, 4, 3, 1}, ids(asc))

	desc := SortText(items, itemName, itemID, Descending)
	assert.Equal(t, []int{1, 3, 4, 2}, ids(desc))
}

func TestSortText_Empty(t *testing.T) {
	assert.Equal(t, []item{}, SortText(nil, itemName, itemID, Ascending))
}

func TestFilter(t *testing.T) {
	items := []item{{id: 1, name: "Acme Pay"}, {id: 2, name: "Beta"}, {id: 3, name: "acme labs"}}

	got := Filter(items, func(it item) bool { return ContainsFold(it.name, "ACME") })
	assert.Equal(t, []int{1, 3}, ids(got))

	assert.True(t, Contains(nil, "anything"))
	assert.True(t, Contains([]string{"Seed", "Series A"}, "Seed"))
	assert.False(t, Contains([]string{"Seed"}, "seed"), "set membership is exact")
}
