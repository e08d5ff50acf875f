package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freshfest/gateway-api/internal/dto"
	"github.com/freshfest/gateway-api/internal/proto"
)

func TestBaanSizeFromInt32(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input int32
		want  dto.BaanSize
	}{
		{0, dto.BaanSizeUnknown},
		{1, dto.BaanSizeS},
		{2, dto.BaanSizeM},
		{3, dto.BaanSizeL},
		{4, dto.BaanSizeXL},
		{5, dto.BaanSizeXXL},
		{6, dto.BaanSizeUnknown},
		{-1, dto.BaanSizeUnknown},
		{99, dto.BaanSizeUnknown},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, dto.BaanSizeFromInt32(tc.input), "size %d", tc.input)
	}
}

func TestUserFromProto_AllFields(t *testing.T) {
	t.Parallel()

	in := &proto.User{
		Id:              "u-1",
		Title:           "Mr",
		Firstname:       "Somchai",
		Lastname:        "Jaidee",
		Nickname:        "Chai",
		StudentId:       "6538000021",
		Faculty:         "Engineering",
		Year:            "1",
		Phone:           "0812345678",
		LineId:          "chai.line",
		Email:           "somchai@example.com",
		AllergyFood:     "peanut",
		FoodRestriction: "halal",
		AllergyMedicine: "penicillin",
		Disease:         "asthma",
		EmerPhone:       "0898765432",
		EmerRelation:    "mother",
		WantBottle:      true,
		ImageUrl:        "https://cdn.example.com/u-1.png",
		CanSelectBaan:   true,
		IsVerify:        true,
		BaanId:          "b-9",
		IsGotTicket:     true,
	}

	got := dto.UserFromProto(in)

	assert.Equal(t, dto.User{
		ID:              "u-1",
		Title:           "Mr",
		Firstname:       "Somchai",
		Lastname:        "Jaidee",
		Nickname:        "Chai",
		StudentID:       "6538000021",
		Faculty:         "Engineering",
		Year:            "1",
		Phone:           "0812345678",
		LineID:          "chai.line",
		Email:           "somchai@example.com",
		AllergyFood:     "peanut",
		FoodRestriction: "halal",
		AllergyMedicine: "penicillin",
		Disease:         "asthma",
		EmerPhone:       "0898765432",
		EmerRelation:    "mother",
		WantBottle:      true,
		ImageURL:        "https://cdn.example.com/u-1.png",
		CanSelectBaan:   true,
		IsVerify:        true,
		BaanID:          "b-9",
		IsGotTicket:     true,
	}, got)
}

func TestUserFromProto_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, dto.User{}, dto.UserFromProto(nil))
}

func TestUpdateUserToProto_OverwritesIdentity(t *testing.T) {
	t.Parallel()

	body := dto.UpdateUser{
		Title:           "Ms",
		Firstname:       "Suda",
		Lastname:        "Rakdee",
		Nickname:        "Su",
		Phone:           "0811111111",
		LineID:          "su.line",
		Email:           "suda@example.com",
		AllergyFood:     "shrimp",
		FoodRestriction: "vegetarian",
		AllergyMedicine: "aspirin",
		Disease:         "",
		EmerPhone:       "0822222222",
		EmerRelation:    "father",
		WantBottle:      false,
	}

	got := body.ToProto("credential-user-id")

	// Identity always comes from the credential, never from the body.
	assert.Equal(t, "credential-user-id", got.Id)
	// Every other field carries over unchanged.
	assert.Equal(t, "Ms", got.Title)
	assert.Equal(t, "Suda", got.Firstname)
	assert.Equal(t, "Rakdee", got.Lastname)
	assert.Equal(t, "Su", got.Nickname)
	assert.Equal(t, "0811111111", got.Phone)
	assert.Equal(t, "su.line", got.LineId)
	assert.Equal(t, "suda@example.com", got.Email)
	assert.Equal(t, "shrimp", got.AllergyFood)
	assert.Equal(t, "vegetarian", got.FoodRestriction)
	assert.Equal(t, "aspirin", got.AllergyMedicine)
	assert.Equal(t, "", got.Disease)
	assert.Equal(t, "0822222222", got.EmerPhone)
	assert.Equal(t, "father", got.EmerRelation)
	assert.False(t, got.WantBottle)
}

func TestBaanFromProto_SizeRenormalized(t *testing.T) {
	t.Parallel()

	got := dto.BaanFromProto(&proto.Baan{Id: "b-1", NameTh: "บ้านโดม", NameEn: "Dome", Size: 42})

	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, "บ้านโดม", got.NameTH)
	assert.Equal(t, "Dome", got.NameEN)
	assert.Equal(t, dto.BaanSizeUnknown, got.Size)
}

func TestBaansFromProto_PreservesOrder(t *testing.T) {
	t.Parallel()

	in := []*proto.Baan{
		{Id: "b-3", Size: 3},
		{Id: "b-1", Size: 1},
		{Id: "b-2", Size: 2},
	}

	got := dto.BaansFromProto(in)

	assert.Equal(t, []string{"b-3", "b-1", "b-2"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGroupFromProto(t *testing.T) {
	t.Parallel()

	in := &proto.Group{
		Id:       "g-1",
		LeaderId: "u-1",
		Token:    "join-token",
		Members: []*proto.UserInfo{
			{Id: "u-1", Firstname: "Somchai", Lastname: "Jaidee", ImageUrl: "img-1"},
			{Id: "u-2", Firstname: "Suda", Lastname: "Rakdee", ImageUrl: "img-2"},
		},
		Baans: []*proto.BaanInfo{
			{Id: "b-1", NameTh: "บ้านหนึ่ง", NameEn: "One", ImageUrl: "bimg-1", Size: 2},
		},
	}

	got := dto.GroupFromProto(in)

	assert.Equal(t, "g-1", got.ID)
	assert.Equal(t, "u-1", got.LeaderID)
	assert.Equal(t, "join-token", got.Token)
	assert.Len(t, got.Members, 2)
	assert.Equal(t, "u-1", got.Members[0].ID)
	assert.Equal(t, "u-2", got.Members[1].ID)
	assert.Len(t, got.Baans, 1)
	assert.Equal(t, dto.BaanSizeM, got.Baans[0].BaanSize)
}

func TestGroupFromProto_EmptyLists(t *testing.T) {
	t.Parallel()

	got := dto.GroupFromProto(&proto.Group{Id: "g-1"})

	// Empty slices, not nil, so clients always see JSON arrays.
	assert.NotNil(t, got.Members)
	assert.NotNil(t, got.Baans)
	assert.Empty(t, got.Members)
	assert.Empty(t, got.Baans)
}

func TestGroupOverviewFromProto_MissingLeader(t *testing.T) {
	t.Parallel()

	got := dto.GroupOverviewFromProto(&proto.FindByTokenGroupResponse{Id: "g-1", Token: "tok"})

	assert.Equal(t, "g-1", got.ID)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, dto.UserInfo{}, got.Leader)
}

func TestCredentialFromProto(t *testing.T) {
	t.Parallel()

	got := dto.CredentialFromProto(&proto.Credential{
		AccessToken:  "acc",
		RefreshToken: "ref",
		ExpiresIn:    3600,
	})

	assert.Equal(t, dto.Credential{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 3600}, got)
	assert.Equal(t, dto.Credential{}, dto.CredentialFromProto(nil))
}

func TestEstampEventsFromProto_PreservesOrder(t *testing.T) {
	t.Parallel()

	in := []*proto.Event{
		{EventId: "e-2", EventName: "Workshop", AdditionalInfo: "hall B"},
		{EventId: "e-1", EventName: "Booth", AdditionalInfo: "hall A"},
	}

	got := dto.EstampEventsFromProto(in)

	assert.Equal(t, "e-2", got[0].ID)
	assert.Equal(t, "e-1", got[1].ID)
	assert.Equal(t, "hall A", got[1].AdditionalInfo)
}

func TestUserEstampEventFromProto_MissingEvent(t *testing.T) {
	t.Parallel()

	got := dto.UserEstampEventFromProto(&proto.UserEvent{IsTaken: true, TakenAt: 1700000000})

	assert.True(t, got.IsTaken)
	assert.Equal(t, int64(1700000000), got.TakenAt)
	assert.Equal(t, dto.EstampEvent{}, got.Event)
}
