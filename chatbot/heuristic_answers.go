package chatbot

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

func greetingResponse() string {
	return "Xin chào! 👋 Tôi là trợ lý tư vấn điện thoại thông minh.\n\n" +
		"🤖 Tôi có thể hỗ trợ bạn:\n" +
		"• Tư vấn điện thoại theo ngân sách\n" +
		"• So sánh các dòng máy\n" +
		"• Tìm điện thoại theo nhu cầu (camera, gaming, pin...)\n" +
		"• Đánh giá ưu nhược điểm\n\n" +
		"💡 Hãy cho tôi biết bạn cần tư vấn gì nhé!"
}

func (e *HeuristicEngine) batteryResponse(phones []*catalog.Phone, priceRange *PriceRange, brands []string) string {
	candidates := filterPhones(phones, priceRange, brands)

	withBattery := candidates[:0:0]
	for _, phone := range candidates {
		if phone.Description.Battery() != "" {
			withBattery = append(withBattery, phone)
		}
	}
	sort.SliceStable(withBattery, func(i, j int) bool {
		return batteryCapacity(withBattery[i]) > batteryCapacity(withBattery[j])
	})
	if len(withBattery) > answerLimit {
		withBattery = withBattery[:answerLimit]
	}

	if len(withBattery) == 0 {
		return "Hiện tại không tìm thấy điện thoại phù hợp với yêu cầu pin của bạn. " +
			"Bạn có thể cho tôi biết ngân sách cụ thể để tư vấn chính xác hơn?"
	}

	var sb strings.Builder
	sb.WriteString("🔋 **Điện thoại pin trâu nhất** theo yêu cầu của bạn:\n\n")
	for i, phone := range withBattery {
		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, phone.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "   🔋 Pin: %s\n", phone.Description.Battery())
		fmt.Fprintf(&sb, "   📱 Chip: %s\n\n", phone.Description.Chipset())
	}
	sb.WriteString("✨ **Lời khuyên**: Để pin bền lâu, nên chọn điện thoại có dung lượng pin ≥ 4000mAh và chip tiết kiệm điện.\n\n")
	sb.WriteString("❓ Bạn có câu hỏi gì khác về các mẫu điện thoại này không?")
	return sb.String()
}

func (e *HeuristicEngine) cameraResponse(phones []*catalog.Phone, priceRange *PriceRange, brands []string) string {
	candidates := filterPhones(phones, priceRange, brands)

	withCamera := candidates[:0:0]
	for _, phone := range candidates {
		if phone.Description.RearCamera() != "" {
			withCamera = append(withCamera, phone)
		}
	}
	sort.SliceStable(withCamera, func(i, j int) bool {
		return cameraScore(withCamera[i]) > cameraScore(withCamera[j])
	})
	if len(withCamera) > answerLimit {
		withCamera = withCamera[:answerLimit]
	}

	if len(withCamera) == 0 {
		return "Hiện tại không tìm thấy thông tin camera chi tiết. " +
			"Bạn có thể cho tôi biết ngân sách và mục đích chụp ảnh để tư vấn phù hợp?"
	}

	var sb strings.Builder
	sb.WriteString("📸 **Điện thoại camera tốt nhất** cho bạn:\n\n")
	for i, phone := range withCamera {
		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, phone.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "   📷 Camera sau: %s\n", phone.Description.RearCamera())
		fmt.Fprintf(&sb, "   🤳 Camera trước: %s\n", phone.Description.FrontCamera())
		if features := phone.Description.CameraFeatures(); features != "" {
			fmt.Fprintf(&sb, "   ✨ Tính năng: %s\n", features)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("💡 **Gợi ý**: \n")
	sb.WriteString("• iPhone: Màu sắc tự nhiên, video ổn định\n")
	sb.WriteString("• Samsung: Zoom tốt, chụp đêm\n")
	sb.WriteString("• Xiaomi: Camera Leica chất lượng cao\n\n")
	sb.WriteString("🤔 Bạn chủ yếu chụp gì? Selfie, phong cảnh hay chụp đêm?")
	return sb.String()
}

func (e *HeuristicEngine) gamingResponse(phones []*catalog.Phone, priceRange *PriceRange, brands []string) string {
	candidates := filterPhones(phones, priceRange, brands)

	ranked := make([]*catalog.Phone, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return gamingScore(ranked[i]) > gamingScore(ranked[j])
	})
	if len(ranked) > answerLimit {
		ranked = ranked[:answerLimit]
	}

	var sb strings.Builder
	sb.WriteString("🎮 **Điện thoại gaming tốt nhất** trong tầm giá:\n\n")
	for i, phone := range ranked {
		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, phone.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "   🧠 Chip: %s\n", phone.Description.Chipset())
		fmt.Fprintf(&sb, "   💾 RAM: %s\n", phone.Description.RAM())
		fmt.Fprintf(&sb, "   📱 Màn hình: %s\n\n", phone.Description.ScreenSize())
	}
	sb.WriteString("🚀 **Tips gaming**: \n")
	sb.WriteString("• RAM ≥ 8GB cho game mượt\n")
	sb.WriteString("• Màn hình 120Hz cho trải nghiệm tốt\n")
	sb.WriteString("• Pin lớn cho gaming lâu\n\n")
	sb.WriteString("🎯 Bạn chơi game gì chủ yếu? PUBG, Liên Quân hay game nặng khác?")
	return sb.String()
}

func (e *HeuristicEngine) budgetResponse(phones []*catalog.Phone, priceRange *PriceRange) string {
	budget := priceRange
	if budget == nil {
		budget = &PriceRange{0, 10_000_000}
	}
	candidates := filterPhones(phones, budget, nil)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price < candidates[j].Price
	})
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}

	var sb strings.Builder
	sb.WriteString("💰 **Điện thoại giá tốt** cho bạn:\n\n")
	for i, phone := range candidates {
		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, phone.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "   ⭐ Highlights: %s, %s\n\n", phone.Description.Chipset(), phone.Description.RAM())
	}
	sb.WriteString("💡 **Lưu ý**: Điện thoại giá rẻ vẫn có thể đáp ứng tốt nhu cầu cơ bản như gọi điện, nhắn tin, mạng xã hội.\n\n")
	sb.WriteString("🤷‍♂️ Bạn có nhu cầu đặc biệt nào khác không?")
	return sb.String()
}

func (e *HeuristicEngine) compareResponse(phones []*catalog.Phone, brands []string, priceRange *PriceRange) string {
	if len(brands) < 2 {
		return "Để so sánh, bạn hãy cho tôi biết 2 hãng hoặc 2 dòng điện thoại cụ thể nhé!\n\n" +
			"Ví dụ: \"So sánh iPhone và Samsung\" hoặc \"So sánh Galaxy S25 và iPhone 16\""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "⚖️ **So sánh giữa %s**:\n\n", strings.Join(brands, " và "))

	for _, brand := range brands {
		brandPhones := filterPhones(phones, priceRange, []string{brand})
		if len(brandPhones) == 0 {
			continue
		}
		representative := brandPhones[0]
		fmt.Fprintf(&sb, "🏷️ **%s** (VD: %s)\n", brand, representative.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(representative.Price))
		fmt.Fprintf(&sb, "   📱 Chip: %s\n", representative.Description.Chipset())
		fmt.Fprintf(&sb, "   📷 Camera: %s\n\n", representative.Description.RearCamera())
	}

	sb.WriteString("🎯 **Kết luận**: Mỗi hãng có ưu điểm riêng. Bạn ưu tiên tính năng nào nhất để tôi tư vấn cụ thể?")
	return sb.String()
}

func (e *HeuristicEngine) premiumResponse(phones []*catalog.Phone) string {
	candidates := filterPhones(phones, &PriceRange{20_000_000, math.MaxFloat64}, nil)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price > candidates[j].Price
	})
	if len(candidates) > answerLimit {
		candidates = candidates[:answerLimit]
	}

	var sb strings.Builder
	sb.WriteString("💎 **Điện thoại cao cấp flagship** đáng mua:\n\n")
	for i, phone := range candidates {
		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, phone.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "   🧠 Chip: %s\n", phone.Description.Chipset())
		fmt.Fprintf(&sb, "   💾 RAM: %s\n\n", phone.Description.RAM())
	}
	sb.WriteString("✨ **Flagship features**: Camera pro, chip mạnh nhất, build quality cao cấp.\n\n")
	sb.WriteString("🤔 Bạn có yêu cầu đặc biệt nào cho chiếc flagship này không?")
	return sb.String()
}

func (e *HeuristicEngine) networkResponse(phones []*catalog.Phone, priceRange *PriceRange) string {
	candidates := filterPhones(phones, priceRange, nil)

	with5G := candidates[:0:0]
	for _, phone := range candidates {
		if strings.Contains(phone.Description.NetworkSupport(), "5G") {
			with5G = append(with5G, phone)
		}
	}
	sort.SliceStable(with5G, func(i, j int) bool {
		return with5G[i].Price < with5G[j].Price
	})
	if len(with5G) > answerLimit {
		with5G = with5G[:answerLimit]
	}

	if len(with5G) == 0 {
		return "🔍 Không tìm thấy điện thoại 5G trong tầm giá này.\n\n" +
			"💡 Hầu hết điện thoại từ 8 triệu trở lên đều hỗ trợ 5G.\n" +
			"Bạn có thể cho tôi biết ngân sách cụ thể?"
	}

	var sb strings.Builder
	sb.WriteString("📶 **Điện thoại hỗ trợ 5G** tốt nhất:\n\n")
	for i, phone := range with5G {
		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, phone.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "   📶 Mạng: %s\n", phone.Description.NetworkSupport())
		fmt.Fprintf(&sb, "   🧠 Chip: %s\n\n", phone.Description.Chipset())
	}
	sb.WriteString("🚀 **Lợi ích 5G**: Tốc độ nhanh, độ trễ thấp, streaming 4K mượt.\n\n")
	sb.WriteString("📍 Bạn có dùng 5G thường xuyên không?")
	return sb.String()
}

func (e *HeuristicEngine) recommendResponse(phones []*catalog.Phone, priceRange *PriceRange, brands, _ []string) string {
	candidates := filterPhones(phones, priceRange, brands)

	if len(candidates) == 0 {
		return "🔍 Không tìm thấy điện thoại phù hợp với tiêu chí.\n\n" +
			"💡 Gợi ý:\n" +
			"• Mở rộng ngân sách\n" +
			"• Thử thương hiệu khác\n" +
			"• Giảm yêu cầu tính năng\n\n" +
			"🤔 Bạn có thể linh hoạt tiêu chí nào?"
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return overallScore(candidates[i]) > overallScore(candidates[j])
	})
	if len(candidates) > answerLimit {
		candidates = candidates[:answerLimit]
	}

	var sb strings.Builder
	sb.WriteString("🎯 **Điện thoại được đề xuất** cho bạn:\n\n")
	for i, phone := range candidates {
		fmt.Fprintf(&sb, "**%d. %s** ⭐\n", i+1, phone.Name)
		fmt.Fprintf(&sb, "   💰 Giá: %s VNĐ\n", formatPrice(phone.Price))
		fmt.Fprintf(&sb, "   🧠 Chip: %s\n", phone.Description.Chipset())
		fmt.Fprintf(&sb, "   💾 RAM: %s\n", phone.Description.RAM())
		fmt.Fprintf(&sb, "   📷 Camera: %s\n", phone.Description.RearCamera())
		fmt.Fprintf(&sb, "   🔋 Pin: %s\n\n", phone.Description.Battery())
	}
	sb.WriteString("💡 **Lý do đề xuất**: Cân bằng tốt giữa hiệu năng, giá cả và tính năng.\n\n")
	sb.WriteString("❓ Bạn muốn tìm hiểu chi tiết về điện thoại nào?")
	return sb.String()
}

func (e *HeuristicEngine) generalResponse(phones []*catalog.Phone) string {
	return fmt.Sprintf("🤖 Tôi hiểu bạn đang tìm hiểu về điện thoại.\n\n"+
		"💡 Để tư vấn chính xác nhất, bạn có thể cho tôi biết:\n"+
		"• 💰 Ngân sách dự kiến (VD: dưới 15 triệu)\n"+
		"• 🎯 Mục đích chính (gaming, camera, công việc...)\n"+
		"• 🏷️ Thương hiệu yêu thích (nếu có)\n"+
		"• ⭐ Tính năng quan trọng (pin, camera, màn hình...)\n\n"+
		"📱 Hiện tôi có thông tin về %d điện thoại để tư vấn cho bạn!\n\n"+
		"❓ Bạn muốn tôi tư vấn về điều gì cụ thể?", len(phones))
}
