package dto

import "github.com/freshfest/gateway-api/internal/proto"

// UserInfo is the compact member shape embedded in group responses.
type UserInfo struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	ImageURL  string `json:"image_url"`
}

// Group is the full group shape returned to group members.
type Group struct {
	ID       string     `json:"id"`
	LeaderID string     `json:"leader_id"`
	Token    string     `json:"token"`
	Members  []UserInfo `json:"members"`
	Baans    []BaanInfo `json:"baans"`
}

// GroupOverview is the restricted shape returned when looking a group up
// by its invite token; it exposes only enough for a join decision.
type GroupOverview struct {
	ID     string   `json:"id"`
	Token  string   `json:"token"`
	Leader UserInfo `json:"leader"`
}

// SelectBaan is the request body for submitting a group's ranked
// dormitory preferences.
type SelectBaan struct {
	Baans []string `json:"baans" validate:"required,min=1"`
}

// UserInfoFromProto maps a compact backend member onto the wire shape.
func UserInfoFromProto(u *proto.UserInfo) UserInfo {
	if u == nil {
		return UserInfo{}
	}
	return UserInfo{
		ID:        u.Id,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		ImageURL:  u.ImageUrl,
	}
}

// GroupFromProto maps a backend group onto the wire shape. Member and baan
// lists map element-wise, preserving backend order.
func GroupFromProto(g *proto.Group) Group {
	if g == nil {
		return Group{}
	}
	members := make([]UserInfo, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, UserInfoFromProto(m))
	}
	baans := make([]BaanInfo, 0, len(g.Baans))
	for _, b := range g.Baans {
		baans = append(baans, BaanInfoFromProto(b))
	}
	return Group{
		ID:       g.Id,
		LeaderID: g.LeaderId,
		Token:    g.Token,
		Members:  members,
		Baans:    baans,
	}
}

// GroupOverviewFromProto maps a find-by-token reply onto the wire shape.
// A missing leader message renders as a zero UserInfo.
func GroupOverviewFromProto(r *proto.FindByTokenGroupResponse) GroupOverview {
	if r == nil {
		return GroupOverview{}
	}
	return GroupOverview{
		ID:     r.Id,
		Token:  r.Token,
		Leader: UserInfoFromProto(r.Leader),
	}
}
