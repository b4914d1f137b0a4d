package filter

import (
	"log/slog"
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// CameraFeature is a camera capability matched against the combined camera
// attribute text by keyword lists.
type CameraFeature int

const (
	Portrait CameraFeature = iota
	WideAngle
	Video4K
	Stabilization
	Zoom
	NightMode
	Macro
	AICamera
	MotionPhoto
)

var cameraFeatures = map[CameraFeature]struct {
	description string
	keywords    []string
}{
	Portrait:      {"Chụp xóa phông", []string{"xoa phong", "bokeh", "portrait", "xóa phông", "blur", "portrait mode"}},
	WideAngle:     {"Chụp góc rộng", []string{"goc rong", "ultrawide", "wide", "góc rộng", "ultra wide", "wide angle"}},
	Video4K:       {"Quay video 4K", []string{"4K", "4k", "ultra hd"}},
	Stabilization: {"Chống rung", []string{"chong rung", "OIS", "chống rung", "optical stabilization", "image stabilization"}},
	Zoom:          {"Chụp zoom xa", []string{"zoom", "telephoto", "tele", "zoom xa"}},
	NightMode:     {"Chụp đêm", []string{"chup dem", "night mode", "chụp đêm", "night", "low light", "ban dem"}},
	Macro:         {"Chụp macro", []string{"macro", "close up"}},
	AICamera:      {"Camera AI", []string{"AI", "ai camera", "trí tuệ nhân tạo", "artificial intelligence"}},
	MotionPhoto:   {"Chụp ảnh chuyển động", []string{"chuyen dong", "motion", "chuyển động", "motion photo", "live photo"}},
}

// FeatureDescription returns the Vietnamese display name of the feature.
func (f CameraFeature) FeatureDescription() string {
	return cameraFeatures[f].description
}

// Keywords returns the keyword variants that identify the feature.
func (f CameraFeature) Keywords() []string {
	return cameraFeatures[f].keywords
}

// cameraFeatureFilter keeps phones whose combined camera text contains ALL
// requested features. Matching is diacritic-folded and case-insensitive on
// both haystack and keywords.
type cameraFeatureFilter struct {
	features []CameraFeature
	logger   *slog.Logger
}

// CameraOption configures a camera feature filter.
type CameraOption func(*cameraFeatureFilter)

// WithCameraLogger sets a logger for per-phone match tracing.
// Default is slog.Default(); traces are emitted at debug level.
func WithCameraLogger(logger *slog.Logger) CameraOption {
	return func(f *cameraFeatureFilter) {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
	}
}

// NewCameraFeatureFilter creates a filter requiring all of the given camera
// features. With no features it matches every phone that has any camera text.
func NewCameraFeatureFilter(features ...CameraFeature) Filter {
	return NewCameraFeatureFilterWithOptions(features)
}

// NewCameraFeatureFilterWithOptions is NewCameraFeatureFilter with options.
func NewCameraFeatureFilterWithOptions(features []CameraFeature, opts ...CameraOption) Filter {
	f := &cameraFeatureFilter{
		features: features,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *cameraFeatureFilter) ID() string { return "camera_features" }

func (f *cameraFeatureFilter) Description() string {
	if len(f.features) == 0 {
		return "Lọc theo tính năng camera"
	}
	names := make([]string, len(f.features))
	for i, feat := range f.features {
		names[i] = feat.FeatureDescription()
	}
	return "Tính năng camera: " + strings.Join(names, ", ")
}

func (f *cameraFeatureFilter) Apply(phones []*catalog.Phone) []*catalog.Phone {
	result := make([]*catalog.Phone, 0, len(phones))
	for _, phone := range phones {
		if f.matches(phone) {
			result = append(result, phone)
		}
	}
	return result
}

func (f *cameraFeatureFilter) matches(phone *catalog.Phone) bool {
	haystack := f.cameraText(phone)

	for _, feature := range f.features {
		if !hasKeyword(haystack, feature.Keywords()) {
			f.logger.Debug("camera feature missing",
				"phone", phone.Name, "feature", feature.FeatureDescription())
			return false
		}
	}
	return true
}

// cameraText concatenates every attribute that may mention a camera
// capability and normalizes the result once for all keyword checks.
func (f *cameraFeatureFilter) cameraText(phone *catalog.Phone) string {
	var sb strings.Builder
	for _, field := range []string{
		phone.Description.RearCamera(),
		phone.Description.CameraFeatures(),
		phone.Description.Attribute(catalog.AttrVideoRecording),
		phone.Description.FrontCamera(),
		phone.Description.SpecialFeatures(),
	} {
		if strings.TrimSpace(field) != "" {
			sb.WriteString(field)
			sb.WriteString(" ")
		}
	}
	return Normalize(sb.String())
}

// hasKeyword reports whether any keyword variant occurs in the
// pre-normalized haystack.
func hasKeyword(normalizedHaystack string, keywords []string) bool {
	for _, kw := range keywords {
		if containsNormalized(normalizedHaystack, kw) {
			return true
		}
	}
	return false
}
