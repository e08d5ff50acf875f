package dto

import "github.com/freshfest/gateway-api/internal/proto"

// User is the full profile shape returned to the profile owner.
type User struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Nickname        string `json:"nickname"`
	StudentID       string `json:"student_id"`
	Faculty         string `json:"faculty"`
	Year            string `json:"year"`
	Phone           string `json:"phone"`
	LineID          string `json:"line_id"`
	Email           string `json:"email"`
	AllergyFood     string `json:"allergy_food"`
	FoodRestriction string `json:"food_restriction"`
	AllergyMedicine string `json:"allergy_medicine"`
	Disease         string `json:"disease"`
	EmerPhone       string `json:"emer_phone"`
	EmerRelation    string `json:"emer_relation"`
	WantBottle      bool   `json:"want_bottle"`
	ImageURL        string `json:"image_url"`
	CanSelectBaan   bool   `json:"can_select_baan"`
	IsVerify        bool   `json:"is_verify"`
	BaanID          string `json:"baan_id"`
	IsGotTicket     bool   `json:"is_got_ticket"`
}

// UpdateUser is the request body for profile updates. It deliberately has
// no id field the backend will trust: the resolved credential's user id is
// stamped in by ToProto.
type UpdateUser struct {
	Title           string `json:"title"`
	Firstname       string `json:"firstname" validate:"required"`
	Lastname        string `json:"lastname" validate:"required"`
	Nickname        string `json:"nickname" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	LineID          string `json:"line_id"`
	Email           string `json:"email" validate:"omitempty,email"`
	AllergyFood     string `json:"allergy_food"`
	FoodRestriction string `json:"food_restriction"`
	AllergyMedicine string `json:"allergy_medicine"`
	Disease         string `json:"disease"`
	EmerPhone       string `json:"emer_phone"`
	EmerRelation    string `json:"emer_relation"`
	WantBottle      bool   `json:"want_bottle"`
}

// UserFromProto maps a backend user onto the wire shape.
func UserFromProto(u *proto.User) User {
	if u == nil {
		return User{}
	}
	return User{
		ID:              u.Id,
		Title:           u.Title,
		Firstname:       u.Firstname,
		Lastname:        u.Lastname,
		Nickname:        u.Nickname,
		StudentID:       u.StudentId,
		Faculty:         u.Faculty,
		Year:            u.Year,
		Phone:           u.Phone,
		LineID:          u.LineId,
		Email:           u.Email,
		AllergyFood:     u.AllergyFood,
		FoodRestriction: u.FoodRestriction,
		AllergyMedicine: u.AllergyMedicine,
		Disease:         u.Disease,
		EmerPhone:       u.EmerPhone,
		EmerRelation:    u.EmerRelation,
		WantBottle:      u.WantBottle,
		ImageURL:        u.ImageUrl,
		CanSelectBaan:   u.CanSelectBaan,
		IsVerify:        u.IsVerify,
		BaanID:          u.BaanId,
		IsGotTicket:     u.IsGotTicket,
	}
}

// ToProto builds the backend update request. The id always comes from the
// resolved credential, never from the client body.
func (u UpdateUser) ToProto(userID string) *proto.UpdateUserRequest {
	return &proto.UpdateUserRequest{
		Id:              userID,
		Title:           u.Title,
		Firstname:       u.Firstname,
		Lastname:        u.Lastname,
		Nickname:        u.Nickname,
		Phone:           u.Phone,
		LineId:          u.LineID,
		Email:           u.Email,
		AllergyFood:     u.AllergyFood,
		FoodRestriction: u.FoodRestriction,
		AllergyMedicine: u.AllergyMedicine,
		Disease:         u.Disease,
		EmerPhone:       u.EmerPhone,
		EmerRelation:    u.EmerRelation,
		WantBottle:      u.WantBottle,
	}
}
