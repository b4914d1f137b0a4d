package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietphone/phonerec/catalog"
)

func phone(name string, price float64, views int, attrs map[string]string) *catalog.Phone {
	p := catalog.NewPhone(name, "https://cellphones.com.vn/"+name+".html", price, catalog.DescriptionFromMap(attrs))
	p.ViewCount = views
	return p
}

func names(phones []*catalog.Phone) []string {
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.Name
	}
	return out
}

func fixture() []*catalog.Phone {
	return []*catalog.Phone{
		phone("iPhone 15 Pro", 28_000_000, 150, map[string]string{catalog.AttrLaunchDate: "09/2023"}),
		phone("Samsung Galaxy S24", 22_000_000, 300, map[string]string{catalog.AttrLaunchDate: "01/2024"}),
		phone("Xiaomi Redmi Note 13", 5_000_000, 80, map[string]string{catalog.AttrLaunchDate: "2024"}),
		phone("Điện thoại cũ", 2_000_000, 10, nil),
	}
}

func TestByKeyword(t *testing.T) {
	phones := fixture()

	t.Run("blank keyword returns input unchanged", func(t *testing.T) {
		assert.Equal(t, phones, ByKeyword(phones, ""))
		assert.Equal(t, phones, ByKeyword(phones, "   "))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"iPhone 15 Pro"}, names(ByKeyword(phones, "IPHONE")))
	})

	t.Run("diacritic folded", func(t *testing.T) {
		assert.Equal(t, []string{"Điện thoại cũ"}, names(ByKeyword(phones, "dien thoai")))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, ByKeyword(phones, "nokia"))
	})

	t.Run("matches attribute values", func(t *testing.T) {
		withChip := append(phones, phone("Google Pixel 8", 18_000_000, 40,
			map[string]string{catalog.AttrChipset: "Tensor G3"}))
		assert.Equal(t, []string{"Google Pixel 8"}, names(ByKeyword(withChip, "tensor")))
	})
}

func TestByPriceRange(t *testing.T) {
	phones := fixture()

	t.Run("inclusive bounds", func(t *testing.T) {
		got := ByPriceRange(phones, 5_000_000, 22_000_000)
		assert.Equal(t, []string{"Samsung Galaxy S24", "Xiaomi Redmi Note 13"}, names(got))
	})

	t.Run("negative bound is unbounded", func(t *testing.T) {
		got := ByPriceRange(phones, -1, 5_000_000)
		assert.Equal(t, []string{"Xiaomi Redmi Note 13", "Điện thoại cũ"}, names(got))

		got = ByPriceRange(phones, 22_000_000, -1)
		assert.Equal(t, []string{"iPhone 15 Pro", "Samsung Galaxy S24"}, names(got))
	})

	t.Run("both unbounded keeps everything", func(t *testing.T) {
		assert.Len(t, ByPriceRange(phones, -1, -1), 4)
	})
}

func TestSort(t *testing.T) {
	phones := fixture()

	t.Run("unordered keeps input", func(t *testing.T) {
		assert.Equal(t, phones, Sort(phones, Unordered))
	})

	t.Run("price ascending", func(t *testing.T) {
		got := Sort(phones, PriceAsc)
		assert.Equal(t, []string{"Điện thoại cũ", "Xiaomi Redmi Note 13", "Samsung Galaxy S24", "iPhone 15 Pro"}, names(got))
	})

	t.Run("price descending", func(t *testing.T) {
		got := Sort(phones, PriceDesc)
		assert.Equal(t, "iPhone 15 Pro", got[0].Name)
	})

	t.Run("most viewed", func(t *testing.T) {
		got := Sort(phones, MostViewed)
		assert.Equal(t, []string{"Samsung Galaxy S24", "iPhone 15 Pro", "Xiaomi Redmi Note 13", "Điện thoại cũ"}, names(got))
	})

	t.Run("newest puts missing dates last", func(t *testing.T) {
		got := Sort(phones, Newest)
		assert.Equal(t, "Điện thoại cũ", got[len(got)-1].Name)
		// "01/2024" outranks bare "2024" (month zero) and "09/2023".
		assert.Equal(t, "Samsung Galaxy S24", got[0].Name)
	})

	t.Run("input slice not reordered", func(t *testing.T) {
		original := names(phones)
		Sort(phones, PriceAsc)
		assert.Equal(t, original, names(phones))
	})
}

func TestSearch(t *testing.T) {
	phones := fixture()

	t.Run("keyword plus price plus order", func(t *testing.T) {
		got := Search(phones, Query{
			Keyword:  "i",
			MaxPrice: 25_000_000,
			SortBy:   PriceAsc,
		})
		assert.Equal(t, []string{"Điện thoại cũ", "Xiaomi Redmi Note 13"}, names(got))
	})

	t.Run("zero query is identity", func(t *testing.T) {
		assert.Equal(t, phones, Search(phones, Query{}))
	})
}
