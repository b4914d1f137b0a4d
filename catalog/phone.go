package catalog

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entries, derived from the entry's
// product link so that identical links always map to the same key.
type ID uint64

// IDFromLink generates a deterministic ID from a product link using BLAKE2b hashing.
func IDFromLink(link string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(link))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Common attribute keys as they appear in scraped catalog data.
// Attribute names are free text; these are the ones the filters and
// answer generators consult. Unknown keys are preserved as-is.
const (
	AttrScreenSize       = "Kích thước màn hình"
	AttrScreenTech       = "Công nghệ màn hình"
	AttrScreenResolution = "Độ phân giải màn hình"
	AttrRefreshRate      = "Tần số quét"
	AttrRearCamera       = "Camera sau"
	AttrFrontCamera      = "Camera trước"
	AttrCameraFeatures   = "Tính năng camera"
	AttrChipset          = "Chipset"
	AttrRAM              = "Dung lượng RAM"
	AttrStorage          = "Bộ nhớ trong"
	AttrBattery          = "Pin"
	AttrChargingTech     = "Công nghệ sạc"
	AttrWeight           = "Trọng lượng"
	AttrVideoRecording   = "Quay video"
	AttrSpecialFeatures  = "Tính năng đặc biệt"
	AttrTechUtilities    = "Công nghệ - Tiện ích"
	AttrOtherUtilities   = "Tiện ích khác"
	AttrWaterDustRating  = "Chỉ số kháng nước, bụi"
	AttrNetworkSupport   = "Hỗ trợ mạng"
	AttrLaunchDate       = "Thời điểm ra mắt"
)

// Description holds the free-text attributes of a phone, keyed by
// human-readable Vietnamese attribute names. There is no enforced schema:
// any key may be present or absent, and values are unparsed text.
type Description struct {
	attributes map[string]string
}

// NewDescription creates an empty description.
func NewDescription() Description {
	return Description{attributes: make(map[string]string)}
}

// DescriptionFromMap creates a description from an attribute map.
// The map is copied; the caller keeps ownership of the original.
func DescriptionFromMap(attrs map[string]string) Description {
	d := NewDescription()
	for k, v := range attrs {
		d.attributes[k] = v
	}
	return d
}

// SetAttribute stores an attribute value.
func (d *Description) SetAttribute(key, value string) {
	if d.attributes == nil {
		d.attributes = make(map[string]string)
	}
	d.attributes[key] = value
}

// Attribute returns the value for key, or "" if the key is absent.
// Consumers never see a distinction between a missing key and an empty value.
func (d Description) Attribute(key string) string {
	if d.attributes == nil {
		return ""
	}
	return d.attributes[key]
}

// Attributes returns a copy of the full attribute map.
func (d Description) Attributes() map[string]string {
	out := make(map[string]string, len(d.attributes))
	for k, v := range d.attributes {
		out[k] = v
	}
	return out
}

// Len returns the number of stored attributes.
func (d Description) Len() int {
	return len(d.attributes)
}

// Convenience accessors for the attributes the engines consult most.

func (d Description) ScreenSize() string      { return d.Attribute(AttrScreenSize) }
func (d Description) ScreenTech() string      { return d.Attribute(AttrScreenTech) }
func (d Description) RefreshRate() string     { return d.Attribute(AttrRefreshRate) }
func (d Description) RearCamera() string      { return d.Attribute(AttrRearCamera) }
func (d Description) FrontCamera() string     { return d.Attribute(AttrFrontCamera) }
func (d Description) CameraFeatures() string  { return d.Attribute(AttrCameraFeatures) }
func (d Description) Chipset() string         { return d.Attribute(AttrChipset) }
func (d Description) RAM() string             { return d.Attribute(AttrRAM) }
func (d Description) Storage() string         { return d.Attribute(AttrStorage) }
func (d Description) Battery() string         { return d.Attribute(AttrBattery) }
func (d Description) SpecialFeatures() string { return d.Attribute(AttrSpecialFeatures) }
func (d Description) TechUtilities() string   { return d.Attribute(AttrTechUtilities) }
func (d Description) NetworkSupport() string  { return d.Attribute(AttrNetworkSupport) }
func (d Description) LaunchDate() string      { return d.Attribute(AttrLaunchDate) }

// Phone represents one product entry in the catalog.
// Link uniquely identifies an entry within a catalog snapshot; Price and
// ViewCount are mutable in place, Link and Name are effectively immutable
// once set.
type Phone struct {
	Name        string
	Link        string
	Price       float64 // VND; 0 means unknown
	ViewCount   int
	Description Description

	imageURL string
}

// NewPhone creates a phone with the given identity and description.
func NewPhone(name, link string, price float64, description Description) *Phone {
	return &Phone{
		Name:        name,
		Link:        link,
		Price:       price,
		Description: description,
	}
}

const cdnImageTemplate = "https://cdn2.cellphones.com.vn/x358,webp,q100/media/catalog/product/"

// ImageURL returns the stored image URL, deriving one from the product link
// when none was recorded. Returns "" when no link is available either.
func (p *Phone) ImageURL() string {
	if p.imageURL != "" {
		return p.imageURL
	}
	return imageURLFromLink(p.Link)
}

// SetImageURL records an explicit image URL, overriding link derivation.
func (p *Phone) SetImageURL(url string) {
	p.imageURL = url
}

// RawImageURL returns the explicitly stored image URL without link derivation.
// Used by repositories to round-trip only what was persisted.
func (p *Phone) RawImageURL() string {
	return p.imageURL
}

// imageURLFromLink maps a product page link to the vendor CDN image URL.
func imageURLFromLink(link string) string {
	if link == "" {
		return ""
	}
	slug := strings.TrimPrefix(link, "https://cellphones.com.vn/")
	slug = strings.TrimPrefix(slug, "http://cellphones.com.vn/")
	slug = strings.TrimSuffix(slug, ".html")
	if slug == "" {
		return ""
	}
	return cdnImageTemplate + slug + ".png"
}

// IncrementViewCount bumps the view counter by one.
func (p *Phone) IncrementViewCount() {
	p.ViewCount++
}

// Clone returns a deep copy of the phone, so that callers mutating the
// copy cannot corrupt engine-held collections.
func (p *Phone) Clone() *Phone {
	clone := *p
	clone.Description = DescriptionFromMap(p.Description.attributes)
	return &clone
}
