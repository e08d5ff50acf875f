// Messages for the backend baan domain (baan.BaanService).

package proto

import (
	proto "github.com/golang/protobuf/proto"
)

type Baan struct {
	Id            string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NameTh        string `protobuf:"bytes,2,opt,name=name_th,json=nameTh,proto3" json:"name_th,omitempty"`
	DescriptionTh string `protobuf:"bytes,3,opt,name=description_th,json=descriptionTh,proto3" json:"description_th,omitempty"`
	NameEn        string `protobuf:"bytes,4,opt,name=name_en,json=nameEn,proto3" json:"name_en,omitempty"`
	DescriptionEn string `protobuf:"bytes,5,opt,name=description_en,json=descriptionEn,proto3" json:"description_en,omitempty"`
	Size          int32  `protobuf:"varint,6,opt,name=size,proto3" json:"size,omitempty"`
	Facebook      string `protobuf:"bytes,7,opt,name=facebook,proto3" json:"facebook,omitempty"`
	FacebookUrl   string `protobuf:"bytes,8,opt,name=facebook_url,json=facebookUrl,proto3" json:"facebook_url,omitempty"`
	Instagram     string `protobuf:"bytes,9,opt,name=instagram,proto3" json:"instagram,omitempty"`
	InstagramUrl  string `protobuf:"bytes,10,opt,name=instagram_url,json=instagramUrl,proto3" json:"instagram_url,omitempty"`
	Line          string `protobuf:"bytes,11,opt,name=line,proto3" json:"line,omitempty"`
	LineUrl       string `protobuf:"bytes,12,opt,name=line_url,json=lineUrl,proto3" json:"line_url,omitempty"`
	ImageUrl      string `protobuf:"bytes,13,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
}

func (m *Baan) Reset()         { *m = Baan{} }
func (m *Baan) String() string { return proto.CompactTextString(m) }
func (*Baan) ProtoMessage()    {}

func (m *Baan) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type FindAllBaanRequest struct{}

func (m *FindAllBaanRequest) Reset()         { *m = FindAllBaanRequest{} }
func (m *FindAllBaanRequest) String() string { return proto.CompactTextString(m) }
func (*FindAllBaanRequest) ProtoMessage()    {}

type FindAllBaanResponse struct {
	Baans []*Baan `protobuf:"bytes,1,rep,name=baans,proto3" json:"baans,omitempty"`
}

func (m *FindAllBaanResponse) Reset()         { *m = FindAllBaanResponse{} }
func (m *FindAllBaanResponse) String() string { return proto.CompactTextString(m) }
func (*FindAllBaanResponse) ProtoMessage()    {}

func (m *FindAllBaanResponse) GetBaans() []*Baan {
	if m != nil {
		return m.Baans
	}
	return nil
}

type FindOneBaanRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *FindOneBaanRequest) Reset()         { *m = FindOneBaanRequest{} }
func (m *FindOneBaanRequest) String() string { return proto.CompactTextString(m) }
func (*FindOneBaanRequest) ProtoMessage()    {}

type FindOneBaanResponse struct {
	Baan *Baan `protobuf:"bytes,1,opt,name=baan,proto3" json:"baan,omitempty"`
}

func (m *FindOneBaanResponse) Reset()         { *m = FindOneBaanResponse{} }
func (m *FindOneBaanResponse) String() string { return proto.CompactTextString(m) }
func (*FindOneBaanResponse) ProtoMessage()    {}

func (m *FindOneBaanResponse) GetBaan() *Baan {
	if m != nil {
		return m.Baan
	}
	return nil
}
