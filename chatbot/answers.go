package chatbot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// answerLimit caps how many phones a topic answer lists.
const answerLimit = 3

func batteryAnswer(phones []*catalog.Phone) string {
	ranked := make([]*catalog.Phone, len(phones))
	copy(ranked, phones)
	sort.SliceStable(ranked, func(i, j int) bool {
		return batteryCapacity(ranked[i]) > batteryCapacity(ranked[j])
	})
	if len(ranked) > answerLimit {
		ranked = ranked[:answerLimit]
	}

	var sb strings.Builder
	sb.WriteString("Dựa trên dữ liệu của tôi, các điện thoại có pin trâu nhất bao gồm:\n\n")
	for _, phone := range ranked {
		fmt.Fprintf(&sb, "- %s: %s, Giá: %s VNĐ\n",
			phone.Name, phone.Description.Battery(), formatPrice(phone.Price))
	}
	sb.WriteString("\nTất cả đều có pin trâu đảm bảo sử dụng trong thời gian dài. ")
	sb.WriteString("Bạn có thể xem thêm thông tin chi tiết bằng cách nhấp vào sản phẩm trên danh sách.")
	return sb.String()
}

// batteryCapacity reads the battery attribute as mAh; unparseable values
// rank last.
func batteryCapacity(phone *catalog.Phone) int {
	capacity, _ := catalog.ExtractInt(phone.Description.Battery())
	return capacity
}

func gamingAnswer(phones []*catalog.Phone) string {
	var sb strings.Builder
	sb.WriteString("Dựa trên dữ liệu, các điện thoại phù hợp để chơi game bao gồm:\n\n")
	for i, phone := range phones {
		if i == answerLimit {
			break
		}
		fmt.Fprintf(&sb, "- %s\n", phone.Name)
		fmt.Fprintf(&sb, "  + Chip: %s\n", phone.Description.Chipset())
		fmt.Fprintf(&sb, "  + RAM: %s\n", phone.Description.RAM())
		fmt.Fprintf(&sb, "  + Màn hình: %s, %s\n", phone.Description.ScreenSize(), phone.Description.RefreshRate())
		fmt.Fprintf(&sb, "  + Giá: %s VNĐ\n\n", formatPrice(phone.Price))
	}
	sb.WriteString("Các điện thoại này có cấu hình mạnh, màn hình tần số quét cao và các tính năng tối ưu game, ")
	sb.WriteString("giúp bạn có trải nghiệm chơi game tốt nhất.")
	return sb.String()
}

func cameraAnswer(phones []*catalog.Phone) string {
	var sb strings.Builder
	sb.WriteString("Các điện thoại có camera tốt nhất bao gồm:\n\n")
	for i, phone := range phones {
		if i == answerLimit {
			break
		}
		fmt.Fprintf(&sb, "- %s\n", phone.Name)
		fmt.Fprintf(&sb, "  + Camera sau: %s\n", phone.Description.RearCamera())
		fmt.Fprintf(&sb, "  + Camera trước: %s\n", phone.Description.FrontCamera())
		fmt.Fprintf(&sb, "  + Tính năng: %s\n", phone.Description.CameraFeatures())
		fmt.Fprintf(&sb, "  + Giá: %s VNĐ\n\n", formatPrice(phone.Price))
	}
	sb.WriteString("Các điện thoại này được trang bị camera chất lượng cao, nhiều tính năng chụp ảnh thông minh ")
	sb.WriteString("và khả năng quay video chuyên nghiệp.")
	return sb.String()
}

func priceAnswer(question string, phones []*catalog.Phone) string {
	minPrice, maxPrice := phones[0].Price, phones[0].Price
	for _, phone := range phones[1:] {
		if phone.Price < minPrice {
			minPrice = phone.Price
		}
		if phone.Price > maxPrice {
			maxPrice = phone.Price
		}
	}

	cheapest := make([]*catalog.Phone, len(phones))
	copy(cheapest, phones)
	sort.SliceStable(cheapest, func(i, j int) bool {
		return cheapest[i].Price < cheapest[j].Price
	})
	if len(cheapest) > answerLimit {
		cheapest = cheapest[:answerLimit]
	}

	lookingForCheap := strings.Contains(question, "rẻ") ||
		strings.Contains(question, "giá tốt") ||
		strings.Contains(question, "tiết kiệm")

	var sb strings.Builder
	if lookingForCheap {
		sb.WriteString("Các điện thoại giá tốt phù hợp với nhu cầu của bạn:\n\n")
		for _, phone := range cheapest {
			fmt.Fprintf(&sb, "- %s: %s VNĐ\n", phone.Name, formatPrice(phone.Price))
		}
	} else {
		sb.WriteString("Khoảng giá của các điện thoại phù hợp với nhu cầu của bạn:\n\n")
		fmt.Fprintf(&sb, "- Thấp nhất: %s VNĐ\n", formatPrice(minPrice))
		fmt.Fprintf(&sb, "- Cao nhất: %s VNĐ\n\n", formatPrice(maxPrice))
		sb.WriteString("Một số điện thoại tiêu biểu:\n")
		for _, phone := range cheapest {
			fmt.Fprintf(&sb, "- %s: %s VNĐ\n", phone.Name, formatPrice(phone.Price))
		}
	}
	return sb.String()
}

func comparisonAnswer(phones []*catalog.Phone) string {
	if len(phones) < 2 {
		return "Tôi không có đủ thông tin để so sánh các điện thoại. " +
			"Vui lòng cung cấp tên cụ thể của các điện thoại bạn muốn so sánh."
	}

	p1, p2 := phones[0], phones[1]

	var sb strings.Builder
	fmt.Fprintf(&sb, "So sánh giữa %s và %s:\n\n", p1.Name, p2.Name)

	sb.WriteString("1. Giá bán:\n")
	fmt.Fprintf(&sb, "- %s: %s VNĐ\n", p1.Name, formatPrice(p1.Price))
	fmt.Fprintf(&sb, "- %s: %s VNĐ\n\n", p2.Name, formatPrice(p2.Price))

	sb.WriteString("2. Màn hình:\n")
	fmt.Fprintf(&sb, "- %s: %s, %s, %s\n", p1.Name,
		p1.Description.ScreenSize(), p1.Description.ScreenTech(), p1.Description.RefreshRate())
	fmt.Fprintf(&sb, "- %s: %s, %s, %s\n\n", p2.Name,
		p2.Description.ScreenSize(), p2.Description.ScreenTech(), p2.Description.RefreshRate())

	sb.WriteString("3. Camera:\n")
	fmt.Fprintf(&sb, "- %s: %s\n", p1.Name, p1.Description.RearCamera())
	fmt.Fprintf(&sb, "- %s: %s\n\n", p2.Name, p2.Description.RearCamera())

	sb.WriteString("4. Hiệu năng:\n")
	fmt.Fprintf(&sb, "- %s: %s, %s\n", p1.Name, p1.Description.Chipset(), p1.Description.RAM())
	fmt.Fprintf(&sb, "- %s: %s, %s\n\n", p2.Name, p2.Description.Chipset(), p2.Description.RAM())

	sb.WriteString("5. Pin và sạc:\n")
	fmt.Fprintf(&sb, "- %s: %s, %s\n", p1.Name,
		p1.Description.Battery(), p1.Description.Attribute(catalog.AttrChargingTech))
	fmt.Fprintf(&sb, "- %s: %s, %s\n", p2.Name,
		p2.Description.Battery(), p2.Description.Attribute(catalog.AttrChargingTech))

	return sb.String()
}

func genericAnswer(phones []*catalog.Phone) string {
	var sb strings.Builder
	sb.WriteString("Dựa trên dữ liệu hiện có, tôi đề xuất các điện thoại sau:\n\n")
	for i, phone := range phones {
		if i == answerLimit {
			break
		}
		fmt.Fprintf(&sb, "- %s\n", phone.Name)
		fmt.Fprintf(&sb, "  + Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "  + Màn hình: %s, %s\n", phone.Description.ScreenSize(), phone.Description.ScreenTech())
		fmt.Fprintf(&sb, "  + Chip: %s\n", phone.Description.Chipset())
		fmt.Fprintf(&sb, "  + RAM: %s\n", phone.Description.RAM())
		fmt.Fprintf(&sb, "  + Bộ nhớ: %s\n", phone.Description.Storage())
		fmt.Fprintf(&sb, "  + Camera: %s\n\n", phone.Description.RearCamera())
	}
	sb.WriteString("Bạn có thể xem thêm thông tin chi tiết bằng cách nhấp vào sản phẩm trong danh sách.")
	return sb.String()
}
