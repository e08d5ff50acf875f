package dto

import "github.com/freshfest/gateway-api/internal/proto"

// BaanSize is the dormitory capacity class. The backend sends it as a
// small integer; anything outside the known range renders as Unknown
// rather than failing the whole response.
type BaanSize int32

const (
	BaanSizeUnknown BaanSize = 0
	BaanSizeS       BaanSize = 1
	BaanSizeM       BaanSize = 2
	BaanSizeL       BaanSize = 3
	BaanSizeXL      BaanSize = 4
	BaanSizeXXL     BaanSize = 5
)

// BaanSizeFromInt32 renormalizes a backend size integer. Out-of-range
// values collapse to BaanSizeUnknown.
func BaanSizeFromInt32(v int32) BaanSize {
	switch v {
	case 1, 2, 3, 4, 5:
		return BaanSize(v)
	default:
		return BaanSizeUnknown
	}
}

// Baan is the full dormitory shape for listing and detail responses.
type Baan struct {
	ID            string   `json:"id"`
	NameTH        string   `json:"name_th"`
	DescriptionTH string   `json:"description_th"`
	NameEN        string   `json:"name_en"`
	DescriptionEN string   `json:"description_en"`
	Size          BaanSize `json:"size"`
	Facebook      string   `json:"facebook"`
	FacebookURL   string   `json:"facebook_url"`
	Instagram     string   `json:"instagram"`
	InstagramURL  string   `json:"instagram_url"`
	Line          string   `json:"line"`
	LineURL       string   `json:"line_url"`
	ImageURL      string   `json:"image_url"`
}

// BaanInfo is the compact dormitory shape embedded in group responses.
type BaanInfo struct {
	ID       string   `json:"id"`
	NameTH   string   `json:"name_th"`
	NameEN   string   `json:"name_en"`
	ImageURL string   `json:"image_url"`
	BaanSize BaanSize `json:"baan_size"`
}

// BaanFromProto maps a backend baan onto the wire shape.
func BaanFromProto(b *proto.Baan) Baan {
	if b == nil {
		return Baan{}
	}
	return Baan{
		ID:            b.Id,
		NameTH:        b.NameTh,
		DescriptionTH: b.DescriptionTh,
		NameEN:        b.NameEn,
		DescriptionEN: b.DescriptionEn,
		Size:          BaanSizeFromInt32(b.Size),
		Facebook:      b.Facebook,
		FacebookURL:   b.FacebookUrl,
		Instagram:     b.Instagram,
		InstagramURL:  b.InstagramUrl,
		Line:          b.Line,
		LineURL:       b.LineUrl,
		ImageURL:      b.ImageUrl,
	}
}

// BaansFromProto maps a backend baan list element-wise, preserving order.
func BaansFromProto(bs []*proto.Baan) []Baan {
	out := make([]Baan, 0, len(bs))
	for _, b := range bs {
		out = append(out, BaanFromProto(b))
	}
	return out
}

// BaanInfoFromProto maps a compact backend baan onto the wire shape.
func BaanInfoFromProto(b *proto.BaanInfo) BaanInfo {
	if b == nil {
		return BaanInfo{}
	}
	return BaanInfo{
		ID:       b.Id,
		NameTH:   b.NameTh,
		NameEN:   b.NameEn,
		ImageURL: b.ImageUrl,
		BaanSize: BaanSizeFromInt32(b.Size),
	}
}
