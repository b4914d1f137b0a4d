package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromLink(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		link := "https://cellphones.com.vn/iphone-15-pro.html"
		assert.Equal(t, IDFromLink(link), IDFromLink(link))
	})

	t.Run("distinct links get distinct ids", func(t *testing.T) {
		a := IDFromLink("https://cellphones.com.vn/iphone-15-pro.html")
		b := IDFromLink("https://cellphones.com.vn/iphone-15.html")
		assert.NotEqual(t, a, b)
	})
}

func TestExtractInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"5000 mAh", 5000, true},
		{"5000mAh", 5000, true},
		{"5,000 mAh", 5000, true},
		{"8 GB", 8, true},
		{"n/a", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ExtractInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ExtractInt(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ExtractInt(%q)", tt.in)
	}
}

func TestExtractFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"6.1 inches", 6.1, true},
		{"200 g", 200, true},
		{"..", 0, false},
		{"khoảng", 0, false},
	}
	for _, tt := range tests {
		got, ok := ExtractFloat(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ExtractFloat(%q)", tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "ExtractFloat(%q)", tt.in)
	}
}

func TestBrand(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"iPhone 15 Pro Max", "Apple"},
		{"Samsung Galaxy S24 Ultra", "Samsung"},
		{"Xiaomi Redmi Note 13", "Xiaomi"},
		{"POCO X6 Pro", "Xiaomi"},
		{"OPPO Reno11", "Oppo"},
		{"ASUS ROG Phone 8", "Asus"},
		{"Điện thoại cũ", BrandUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Brand(tt.name), "Brand(%q)", tt.name)
	}
}

func TestDescription(t *testing.T) {
	t.Run("missing key reads as empty", func(t *testing.T) {
		d := NewDescription()
		assert.Empty(t, d.Attribute(AttrBattery))
		assert.Empty(t, d.Battery())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var d Description
		assert.Empty(t, d.Attribute(AttrBattery))
		d.SetAttribute(AttrBattery, "5000 mAh")
		assert.Equal(t, "5000 mAh", d.Battery())
	})

	t.Run("from map copies the input", func(t *testing.T) {
		src := map[string]string{AttrRAM: "8 GB"}
		d := DescriptionFromMap(src)
		src[AttrRAM] = "changed"
		assert.Equal(t, "8 GB", d.RAM())
	})

	t.Run("attributes returns a copy", func(t *testing.T) {
		d := DescriptionFromMap(map[string]string{AttrChipset: "Snapdragon 8 Gen 3"})
		out := d.Attributes()
		out[AttrChipset] = "changed"
		assert.Equal(t, "Snapdragon 8 Gen 3", d.Chipset())
	})

	t.Run("unknown keys are preserved", func(t *testing.T) {
		d := DescriptionFromMap(map[string]string{"Một thuộc tính lạ": "giá trị"})
		assert.Equal(t, "giá trị", d.Attribute("Một thuộc tính lạ"))
		assert.Equal(t, 1, d.Len())
	})
}

func TestImageURL(t *testing.T) {
	t.Run("derived from link", func(t *testing.T) {
		p := NewPhone("iPhone 15 Pro", "https://cellphones.com.vn/iphone-15-pro.html", 28_000_000, NewDescription())
		assert.Equal(t,
			"https://cdn2.cellphones.com.vn/x358,webp,q100/media/catalog/product/iphone-15-pro.png",
			p.ImageURL())
		assert.Empty(t, p.RawImageURL(), "derivation is not persisted")
	})

	t.Run("explicit image wins", func(t *testing.T) {
		p := NewPhone("iPhone 15 Pro", "https://cellphones.com.vn/iphone-15-pro.html", 28_000_000, NewDescription())
		p.SetImageURL("https://img.example.com/custom.jpg")
		assert.Equal(t, "https://img.example.com/custom.jpg", p.ImageURL())
		assert.Equal(t, "https://img.example.com/custom.jpg", p.RawImageURL())
	})

	t.Run("no link no image", func(t *testing.T) {
		p := NewPhone("Không link", "", 0, NewDescription())
		assert.Empty(t, p.ImageURL())
	})
}

func TestValidatePhone(t *testing.T) {
	valid := func() *Phone {
		return NewPhone("iPhone 15 Pro", "https://cellphones.com.vn/iphone-15-pro.html", 28_000_000, NewDescription())
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidatePhone(valid()))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePhone(nil), ErrInvalidPhone)
	})

	t.Run("empty link", func(t *testing.T) {
		p := valid()
		p.Link = ""
		err := ValidatePhone(p)
		assert.ErrorIs(t, err, ErrInvalidPhone)
		assert.ErrorIs(t, err, ErrEmptyLink)
	})

	t.Run("empty name", func(t *testing.T) {
		p := valid()
		p.Name = ""
		assert.ErrorIs(t, ValidatePhone(p), ErrEmptyName)
	})

	t.Run("negative price", func(t *testing.T) {
		p := valid()
		p.Price = -1
		assert.ErrorIs(t, ValidatePhone(p), ErrNegativePrice)
	})

	t.Run("zero price is unknown, not invalid", func(t *testing.T) {
		p := valid()
		p.Price = 0
		assert.NoError(t, ValidatePhone(p))
	})

	t.Run("negative view count", func(t *testing.T) {
		p := valid()
		p.ViewCount = -5
		assert.ErrorIs(t, ValidatePhone(p), ErrNegativeViewCount)
	})
}

func TestClone(t *testing.T) {
	p := NewPhone("iPhone 15 Pro", "link", 28_000_000,
		DescriptionFromMap(map[string]string{AttrBattery: "3274 mAh"}))
	p.ViewCount = 7

	clone := p.Clone()
	require.Equal(t, p.Name, clone.Name)
	require.Equal(t, p.ViewCount, clone.ViewCount)

	clone.Description.SetAttribute(AttrBattery, "changed")
	clone.IncrementViewCount()

	assert.Equal(t, "3274 mAh", p.Description.Battery(), "clone mutations must not leak back")
	assert.Equal(t, 7, p.ViewCount)
}
