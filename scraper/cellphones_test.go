package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietphone/phonerec/catalog"
)

const detailPageHTML = `<!DOCTYPE html>
<html><body>
<h1 class="product-title"> Samsung Galaxy S24 Ultra 256GB </h1>
<div class="product-price"><span class="price">29.990.000đ</span></div>
<div class="featured-image"><img src="https://cdn.example.com/s24u.jpg"></div>
<div class="product-specifications">
  <table>
    <tr><td class="name">Pin</td><td class="value">5000 mAh</td></tr>
    <tr><td class="name">Chipset</td><td class="value">Snapdragon 8 Gen 3</td></tr>
    <tr><td class="name">Dung lượng RAM</td><td class="value">12 GB</td></tr>
    <tr><td class="name"></td><td class="value">orphan value</td></tr>
  </table>
</div>
</body></html>`

const listPageHTML = `<!DOCTYPE html>
<html><body>
<div class="product-item">
  <a class="product-name" href="/mobile/samsung-galaxy-s24-ultra.html">Samsung Galaxy S24 Ultra</a>
  <span class="price">29.990.000đ</span>
  <img class="product-image" src="https://cdn.example.com/s24u-thumb.jpg">
</div>
<div class="product-item">
  <a class="product-name" href="https://cellphones.com.vn/iphone-15-pro.html">iPhone 15 Pro</a>
  <span class="price">không rõ</span>
</div>
<div class="product-item">
  <span class="price">9.990.000đ</span>
</div>
<div class="product-item">
  <a class="product-name" href="/mobile/xiaomi-redmi-note-13.html">Xiaomi Redmi Note 13</a>
  <span class="price">4.990.000đ</span>
</div>
</body></html>`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestScrapePhone(t *testing.T) {
	server := newTestServer(t, http.StatusOK, detailPageHTML)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	phone, err := s.ScrapePhone(context.Background(), server.URL+"/product.html")
	require.NoError(t, err)

	assert.Equal(t, "Samsung Galaxy S24 Ultra 256GB", phone.Name)
	assert.Equal(t, server.URL+"/product.html", phone.Link)
	assert.Equal(t, 29_990_000.0, phone.Price)
	assert.Equal(t, "https://cdn.example.com/s24u.jpg", phone.RawImageURL())
	assert.Equal(t, "5000 mAh", phone.Description.Battery())
	assert.Equal(t, "Snapdragon 8 Gen 3", phone.Description.Chipset())
	assert.Equal(t, "12 GB", phone.Description.RAM())
	assert.Equal(t, 3, phone.Description.Len(), "rows without a name cell are skipped")
}

func TestScrapePhoneMissingTitle(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `<html><body><p>not a product</p></body></html>`)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	_, err := s.ScrapePhone(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestScrapePhoneBadStatus(t *testing.T) {
	server := newTestServer(t, http.StatusNotFound, "not found")
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	_, err := s.ScrapePhone(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestScrapePrice(t *testing.T) {
	server := newTestServer(t, http.StatusOK, detailPageHTML)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	price, err := s.ScrapePrice(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 29_990_000.0, price)
}

func TestScrapePriceNotFound(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `<html><body></body></html>`)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	_, err := s.ScrapePrice(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrPriceNotFound)
}

func TestScrapeImageFallbackSelector(t *testing.T) {
	html := `<html><body><div class="product-image"><img src="/alt.jpg"></div></body></html>`
	server := newTestServer(t, http.StatusOK, html)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	image, err := s.ScrapeImage(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "/alt.jpg", image)
}

func TestScrapePhoneList(t *testing.T) {
	server := newTestServer(t, http.StatusOK, listPageHTML)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	phones, err := s.ScrapePhoneList(context.Background(), server.URL, 0)
	require.NoError(t, err)
	require.Len(t, phones, 3, "items without a product link are skipped")

	assert.Equal(t, "Samsung Galaxy S24 Ultra", phones[0].Name)
	assert.Equal(t, "https://cellphones.com.vn/mobile/samsung-galaxy-s24-ultra.html", phones[0].Link,
		"relative links resolve against the base URL")
	assert.Equal(t, 29_990_000.0, phones[0].Price)
	assert.Equal(t, "https://cdn.example.com/s24u-thumb.jpg", phones[0].RawImageURL())

	assert.Equal(t, "https://cellphones.com.vn/iphone-15-pro.html", phones[1].Link,
		"absolute links pass through")
	assert.Zero(t, phones[1].Price, "unparseable price defaults to zero")

	assert.Equal(t, "Xiaomi Redmi Note 13", phones[2].Name)
}

func TestScrapePhoneListMaxItems(t *testing.T) {
	server := newTestServer(t, http.StatusOK, listPageHTML)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	phones, err := s.ScrapePhoneList(context.Background(), server.URL, 1)
	require.NoError(t, err)
	require.Len(t, phones, 1)
	assert.Equal(t, "Samsung Galaxy S24 Ultra", phones[0].Name)
}

func TestParsePriceText(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"29.990.000đ", 29_990_000, true},
		{"22,000,000 VNĐ", 22_000_000, true},
		{"Liên hệ", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePriceText(tt.in)
		assert.Equal(t, tt.wantOK, ok, "parsePriceText(%q)", tt.in)
		assert.Equal(t, tt.want, got, "parsePriceText(%q)", tt.in)
	}
}

func TestWithBaseURL(t *testing.T) {
	html := `<div class="product-item"><a class="product-name" href="/p.html">P</a></div>`
	server := newTestServer(t, http.StatusOK, html)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()), WithBaseURL("https://shop.test/"))

	phones, err := s.ScrapePhoneList(context.Background(), server.URL, 0)
	require.NoError(t, err)
	require.Len(t, phones, 1)
	assert.Equal(t, "https://shop.test/p.html", phones[0].Link)
}

func TestScrapedPhoneValidates(t *testing.T) {
	server := newTestServer(t, http.StatusOK, detailPageHTML)
	s := NewCellphonesScraper(WithHTTPClient(server.Client()))

	phone, err := s.ScrapePhone(context.Background(), server.URL+"/product.html")
	require.NoError(t, err)
	assert.NoError(t, catalog.ValidatePhone(phone))
}
