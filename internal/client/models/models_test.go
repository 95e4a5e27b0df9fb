package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMediaRef_Resolve(t *testing.T) {
	base := "https://media.ludoan72.vn"

	tests := []struct {
		ref  MediaRef
		want string
	}{
		{"", ""},
		{"uploads/avatar.png", "https://media.ludoan72.vn/uploads/avatar.png"},
		{"/uploads/avatar.png", "https://media.ludoan72.vn/uploads/avatar.png"},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"http://cdn.example.com/a.png", "http://cdn.example.com/a.png"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.ref.Resolve(base), string(tc.ref))
	}

	// A trailing slash on the base must not double up.
	require.Equal(t,
		"https://media.ludoan72.vn/a.png",
		MediaRef("a.png").Resolve(base+"/"))
}

func TestFilter_Variants(t *testing.T) {
	all := AllFilter()
	require.True(t, all.IsAll())
	require.Equal(t, "", all.Value())

	label := LabelFilter("active")
	require.False(t, label.IsAll())
	require.Equal(t, "active", label.Value())
	require.Equal(t, "active", label.Display())

	cat := CategoryFilter(CategoryRef{ID: "c1", Name: "Huấn luyện", ColorCode: "#2d6a4f"})
	require.False(t, cat.IsAll())
	require.Equal(t, "c1", cat.Value())
	require.Equal(t, "Huấn luyện", cat.Display())
}

func TestWarrior_NullFieldsDecodeToEmpty(t *testing.T) {
	// Backend nulls must never leak into bound form fields.
	raw := `{"id":"w1","name":"Nguyễn Văn A","rank":null,"unit":null,
		"status":"active","joinDate":null,"avatarUrl":null,"familyMembers":null}`

	var w Warrior
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	require.Equal(t, "", w.Rank)
	require.Equal(t, "", w.Unit)
	require.Equal(t, "", w.JoinDate.Display())
	require.Equal(t, MediaRef(""), w.Avatar)
	require.Empty(t, w.Family)
}

func TestPage_Bounds(t *testing.T) {
	p := &Page[Warrior]{PageIndex: 0, TotalPages: 3}
	require.False(t, p.HasPrev())
	require.True(t, p.HasNext())

	p.PageIndex = 2
	require.True(t, p.HasPrev())
	require.False(t, p.HasNext())
}
